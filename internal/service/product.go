package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/boutiquechat/internal/events"
	"github.com/Skotchmaster/boutiquechat/internal/models"
	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
)

func (s *CatalogService) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(items, f), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err, "product")
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	p := &models.Product{
		CategoryID:     req.CategoryID,
		Name:           strings.TrimSpace(req.Name),
		Price:          req.Price,
		Images:         cleanImages(req.Images),
		Description:    strings.TrimSpace(req.Description),
		Specifications: CleanSpecifications(req.Specifications),
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	s.afterProductWrite(ctx, events.ProductCreated, p)
	return p, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, id uuid.UUID, req transport.PatchProductRequest) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err, "product")
	}

	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Images != nil {
		p.Images = cleanImages(*req.Images)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Specifications != nil {
		p.Specifications = CleanSpecifications(*req.Specifications)
	}

	if err := validateProduct(p); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateProduct(ctx, p); err != nil {
		return nil, notFound(err, "product")
	}

	s.afterProductWrite(ctx, events.ProductUpdated, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return notFound(err, "product")
	}

	if s.searchEnabled() {
		if err := s.Search.DeleteProduct(ctx, id.String()); err != nil {
			logging.FromContext(ctx).Error("search_delete_failed", "product_id", id, "error", err)
		}
	}
	s.publish(ctx, events.New(events.ProductDeleted, id.String(), ""))
	return nil
}

// SearchProducts runs a fuzzy full-text query against the search index.
func (s *CatalogService) SearchProducts(ctx context.Context, query string, offset, limit int) (int64, []models.Product, error) {
	if !s.searchEnabled() {
		return 0, nil, fmt.Errorf("search: %w", ErrNotConfigured)
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, nil, fmt.Errorf("query is required: %w", ErrValidation)
	}
	return s.Search.Search(ctx, query, offset, limit)
}

func (s *CatalogService) afterProductWrite(ctx context.Context, typ string, p *models.Product) {
	if s.searchEnabled() {
		if err := s.Search.IndexProduct(ctx, p); err != nil {
			logging.FromContext(ctx).Error("search_index_failed", "product_id", p.ID, "error", err)
		}
	}
	s.publish(ctx, events.New(typ, p.ID.String(), p.Name))
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if p.Price.LessThan(decimal.Zero) {
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("at least one image is required: %w", ErrValidation)
	}
	return nil
}

func cleanImages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, img := range in {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}

// CleanSpecifications trims labels and values and drops pairs where either
// side is blank.
func CleanSpecifications(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}
