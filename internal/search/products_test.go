package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

func newFakeES(t *testing.T, handle func(w http.ResponseWriter, r recordedRequest)) (*ProductIndex, *[]recordedRequest) {
	t.Helper()

	var (
		mu   sync.Mutex
		seen []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)}
		mu.Lock()
		seen = append(seen, rec)
		mu.Unlock()

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handle(w, rec)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewProductIndex(es, ""), &seen
}

func TestProductIndex_Search(t *testing.T) {
	id := uuid.New()
	idx, seen := newFakeES(t, func(w http.ResponseWriter, r recordedRequest) {
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_source":{"id":"`+id.String()+`","name":"Silk scarf","price":"1490.5","images":["a"]}}]}}`)
	})

	total, prods, err := idx.Search(context.Background(), "scarf", 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, prods, 1)
	assert.Equal(t, id, prods[0].ID)
	assert.Equal(t, "Silk scarf", prods[0].Name)
	assert.True(t, decimal.RequireFromString("1490.5").Equal(prods[0].Price))

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, "/products/_search", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &body))
	mm := body["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "scarf", mm["query"])
	assert.Equal(t, "AUTO", mm["fuzziness"])
	assert.EqualValues(t, 20, body["size"])
}

func TestProductIndex_SearchBeyondResultWindow(t *testing.T) {
	idx, seen := newFakeES(t, func(w http.ResponseWriter, r recordedRequest) {
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":3},"hits":[]}}`)
	})

	total, prods, err := idx.Search(context.Background(), "scarf", 9223372036854775700, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Empty(t, prods)

	require.Len(t, *seen, 1)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte((*seen)[0].Body), &body))
	assert.EqualValues(t, MaxResultWindow, body["from"])
	assert.EqualValues(t, 0, body["size"])
}

func TestProductIndex_IndexAndDelete(t *testing.T) {
	idx, seen := newFakeES(t, func(w http.ResponseWriter, r recordedRequest) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"result":"not_found"}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	})

	p := &models.Product{ID: uuid.New(), Name: "Linen dress", Price: decimal.NewFromInt(5000)}
	require.NoError(t, idx.IndexProduct(context.Background(), p))
	require.NoError(t, idx.DeleteProduct(context.Background(), p.ID.String()))

	require.Len(t, *seen, 2)
	assert.Equal(t, http.MethodPut, (*seen)[0].Method)
	assert.Equal(t, "/products/_doc/"+p.ID.String(), (*seen)[0].Path)
	assert.True(t, strings.Contains((*seen)[0].Body, `"Linen dress"`))
	assert.Equal(t, http.MethodDelete, (*seen)[1].Method)
}

func TestProductIndex_ErrorsAndDisabled(t *testing.T) {
	idx, _ := newFakeES(t, func(w http.ResponseWriter, r recordedRequest) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"boom"}`)
	})

	_, _, err := idx.Search(context.Background(), "x", 0, 10)
	assert.Error(t, err)
	assert.Error(t, idx.IndexProduct(context.Background(), &models.Product{ID: uuid.New()}))

	var disabled *ProductIndex
	assert.False(t, disabled.Enabled())
	_, _, err = disabled.Search(context.Background(), "x", 0, 10)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, disabled.DeleteProduct(context.Background(), "id"), ErrDisabled)
}
