package catalogclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestCategories(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalog/categories", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []models.Category{{Name: "Bags"}, {Name: "Hats"}},
		})
	})

	got, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bags", got[0].Name)
}

func TestProductsSendsFilter(t *testing.T) {
	cat := uuid.New()
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalog/products", r.URL.Path)
		assert.Equal(t, cat.String(), r.URL.Query().Get("category_id"))
		assert.Equal(t, "red dress", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Empty(t, r.URL.Query().Get("size"))

		writeJSON(w, http.StatusOK, map[string]any{
			"data": []models.Product{{Name: "Red Dress", Price: decimal.RequireFromString("10.5")}},
			"meta": map[string]any{"page": 2, "size": 50, "total": 51, "total_pages": 2, "has_prev": true},
		})
	})

	page, err := c.Products(context.Background(), ProductQuery{CategoryID: cat, Query: "red dress", Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "10.5", page.Data[0].Price.String())
	assert.EqualValues(t, 51, page.Meta.Total)
	assert.True(t, page.Meta.HasPrev)
}

func TestChatLink(t *testing.T) {
	id := uuid.New()
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalog/products/"+id.String()+"/chat-link", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]string{"url": "https://wa.me/1?text=hi"})
	})

	link, err := c.ChatLink(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/1?text=hi", link)
}

func TestStatusError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "not configured"})
	})

	_, err := c.Settings(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "not configured", se.Message)
}
