// Package tui is a terminal storefront over the public catalog API.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Skotchmaster/boutiquechat/internal/gallery"
	"github.com/Skotchmaster/boutiquechat/internal/models"
	"github.com/Skotchmaster/boutiquechat/internal/catalogclient"
)

const fetchTimeout = 5 * time.Second

// Catalog is the subset of the API client the storefront needs.
type Catalog interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context, q catalogclient.ProductQuery) (*catalogclient.ProductPage, error)
	Settings(ctx context.Context) (*models.Settings, error)
	ChatLink(ctx context.Context, productID uuid.UUID) (string, error)
}

type screen int

const (
	screenList screen = iota
	screenDetail
)

type (
	categoriesMsg []models.Category
	productsMsg   []models.Product
	settingsMsg   *models.Settings
	chatLinkMsg   struct {
		productID uuid.UUID
		url       string
	}
	// errMsg reports a failed fetch. Prior state is kept.
	errMsg struct {
		op  string
		err error
	}
)

type Model struct {
	api    Catalog
	styles styles

	width  int
	height int
	screen screen

	siteName   string
	categories []models.Category
	tab        int // 0 is "All", i+1 is categories[i]

	filter        textinput.Model
	filterFocused bool

	products []models.Product
	cursor   int

	selected *models.Product
	gallery  *gallery.Navigator
	chatLink string

	status string
}

func New(api Catalog) Model {
	fi := textinput.New()
	fi.Placeholder = "filter by name or description"
	fi.Prompt = "/ "
	fi.CharLimit = 100
	fi.Width = 40

	return Model{
		api:     api,
		styles:  defaultStyles(),
		filter:  fi,
		gallery: gallery.New(0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchSettings(), m.fetchCategories(), m.fetchProducts())
}

// CategoryID returns the selected tab's category, or uuid.Nil for "All".
func (m Model) CategoryID() uuid.UUID {
	if m.tab == 0 || m.tab > len(m.categories) {
		return uuid.Nil
	}
	return m.categories[m.tab-1].ID
}

func (m Model) fetchSettings() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		st, err := api.Settings(ctx)
		if err != nil {
			return errMsg{op: "load settings", err: err}
		}
		return settingsMsg(st)
	}
}

func (m Model) fetchCategories() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		items, err := api.Categories(ctx)
		if err != nil {
			return errMsg{op: "load categories", err: err}
		}
		return categoriesMsg(items)
	}
}

func (m Model) fetchProducts() tea.Cmd {
	api := m.api
	q := catalogclient.ProductQuery{
		CategoryID: m.CategoryID(),
		Query:      m.filter.Value(),
		Size:       100,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		page, err := api.Products(ctx, q)
		if err != nil {
			return errMsg{op: "load products", err: err}
		}
		return productsMsg(page.Data)
	}
}

func (m Model) fetchChatLink(id uuid.UUID) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		url, err := api.ChatLink(ctx, id)
		if err != nil {
			return errMsg{op: "build chat link", err: err}
		}
		return chatLinkMsg{productID: id, url: url}
	}
}
