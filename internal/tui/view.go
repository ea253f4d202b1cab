package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	title := m.siteName
	if title == "" {
		title = "Boutique"
	}
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n\n")

	if m.screen == screenDetail && m.selected != nil {
		b.WriteString(m.viewDetail())
	} else {
		b.WriteString(m.viewList())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.status))
	}
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(m.categories)+1)
	names := append([]string{"All"}, categoryNames(m)...)
	for i, name := range names {
		if i == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func categoryNames(m Model) []string {
	out := make([]string, len(m.categories))
	for i, c := range m.categories {
		out[i] = c.Name
	}
	return out
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.products) == 0 {
		b.WriteString(m.styles.Muted.Render("No products found."))
		b.WriteString("\n")
	}
	for i, p := range m.products {
		line := fmt.Sprintf("%s  %s", p.Name, m.styles.Price.Render(p.Price.StringFixed(2)))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render("tab/←→ category • / filter • ↑↓ select • enter open • r reload • q quit"))
	return b.String()
}

func (m Model) viewDetail() string {
	p := m.selected
	n := m.gallery

	image := n.Current(p.Images)
	counter := fmt.Sprintf("[%d/%d]", n.Index()+1, n.Len())
	if !n.Available() {
		image, counter = "no images", "[0/0]"
	}

	if n.Fullscreen() {
		frame := m.styles.Frame
		if m.width > 4 {
			frame = frame.Width(m.width - 4)
		}
		return frame.Render(counter+"  "+image) + "\n" +
			m.styles.Footer.Render("←→ image • 1-9 jump • f/esc leave fullscreen")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Price.Render(p.Price.StringFixed(2)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render(counter) + " " + image)
	b.WriteString("\n\n")

	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n\n")
	}

	keys := make([]string, 0, len(p.Specifications))
	for k := range p.Specifications {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(m.styles.Muted.Render(k+":") + " " + p.Specifications[k] + "\n")
	}

	if m.chatLink != "" {
		b.WriteString("\nAsk about this item: ")
		b.WriteString(m.chatLink)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render("←→ image • 1-9 jump • f fullscreen • esc back • q quit"))
	return b.String()
}
