package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case settingsMsg:
		if msg != nil {
			m.siteName = msg.SiteName
		}
		return m, nil

	case categoriesMsg:
		selected := m.CategoryID()
		m.categories = msg
		m.tab = 0
		for i, c := range m.categories {
			if c.ID == selected {
				m.tab = i + 1
			}
		}
		m.status = ""
		return m, nil

	case productsMsg:
		m.products = msg
		if m.cursor >= len(m.products) {
			m.cursor = max(len(m.products)-1, 0)
		}
		m.status = ""
		return m, nil

	case chatLinkMsg:
		if m.selected != nil && m.selected.ID == msg.productID {
			m.chatLink = msg.url
		}
		return m, nil

	case errMsg:
		m.status = msg.op + " failed: " + msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterFocused {
		switch msg.String() {
		case "enter", "esc":
			m.filterFocused = false
			m.filter.Blur()
			return m, nil
		}
		before := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.cursor = 0
			return m, tea.Batch(cmd, m.fetchProducts())
		}
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.filterFocused = true
		cmd := m.filter.Focus()
		return m, cmd
	case "tab", "right":
		m.tab = (m.tab + 1) % (len(m.categories) + 1)
		m.cursor = 0
		return m, m.fetchProducts()
	case "shift+tab", "left":
		n := len(m.categories) + 1
		m.tab = (m.tab - 1 + n) % n
		m.cursor = 0
		return m, m.fetchProducts()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "r":
		return m, tea.Batch(m.fetchCategories(), m.fetchProducts())
	case "enter":
		if len(m.products) == 0 {
			return m, nil
		}
		return m.open(m.products[m.cursor])
	}
	return m, nil
}

func (m Model) open(p models.Product) (tea.Model, tea.Cmd) {
	m.selected = &p
	m.gallery.Reset(len(p.Images))
	m.chatLink = ""
	m.screen = screenDetail
	return m, m.fetchChatLink(p.ID)
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.gallery.HandleKey(key) {
		return m, nil
	}

	switch key {
	case "esc", "backspace":
		m.screen = screenList
		m.selected = nil
		m.chatLink = ""
		m.gallery.Reset(0)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}
