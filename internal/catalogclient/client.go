// Package catalogclient talks to the public catalog API.
package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog api: status %d", e.Code)
	}
	return fmt.Sprintf("catalog api: status %d: %s", e.Code, e.Message)
}

type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

type ProductPage struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type ProductQuery struct {
	CategoryID uuid.UUID
	Query      string
	Page       int
	Size       int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.CategoryID != uuid.Nil {
		v.Set("category_id", q.CategoryID.String())
	}
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	return v
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Data []models.Category `json:"data"`
	}
	if err := c.get(ctx, "/catalog/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) Products(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	var out ProductPage
	if err := c.get(ctx, "/catalog/products", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Product(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var out models.Product
	if err := c.get(ctx, "/catalog/products/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Settings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := c.get(ctx, "/catalog/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChatLink(ctx context.Context, productID uuid.UUID) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.get(ctx, "/catalog/products/"+productID.String()+"/chat-link", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &StatusError{Code: resp.StatusCode, Message: body.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
