package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Title     lipgloss.Style
	Price     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Frame     lipgloss.Style
	Footer    lipgloss.Style
}

func defaultStyles() styles {
	accent := lipgloss.Color("#d9467a")
	muted := lipgloss.Color("#8a8a8a")

	return styles{
		Header: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(accent).
			Underline(true).
			Bold(true).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			PaddingLeft(1),
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginBottom(1),
		Price: lipgloss.NewStyle().
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Footer: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
	}
}
