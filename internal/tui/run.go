package tui

import tea "github.com/charmbracelet/bubbletea"

// Run blocks until the user quits the storefront.
func Run(api Catalog) error {
	_, err := tea.NewProgram(New(api), tea.WithAltScreen()).Run()
	return err
}
