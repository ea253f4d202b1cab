package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/Skotchmaster/boutiquechat/internal/events"
	"github.com/Skotchmaster/boutiquechat/internal/models"
	"github.com/Skotchmaster/boutiquechat/internal/repo"
	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
)

const (
	MoveUp   = "up"
	MoveDown = "down"
)

// ProductSearcher is the optional full-text index kept in sync with writes.
type ProductSearcher interface {
	Enabled() bool
	IndexProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type CatalogService struct {
	Repo   repo.Repository
	Events events.Publisher
	Search ProductSearcher
}

func (s *CatalogService) publish(ctx context.Context, e events.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, e); err != nil {
		logging.FromContext(ctx).Error("publish_event_failed", "type", e.Type, "entity_id", e.EntityID, "error", err)
	}
}

func (s *CatalogService) searchEnabled() bool {
	return s.Search != nil && s.Search.Enabled()
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, notFound(err, "category")
	}
	return c, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrValidation)
	}

	c := &models.Category{
		Name:         name,
		Slug:         slug.Make(name),
		Description:  strings.TrimSpace(req.Description),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.Repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.CategoryCreated, c.ID.String(), c.Name))
	return c, nil
}

func (s *CatalogService) PatchCategory(ctx context.Context, id uuid.UUID, req transport.PatchCategoryRequest) (*models.Category, error) {
	c, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, notFound(err, "category")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("category name is required: %w", ErrValidation)
		}
		c.Name = name
		c.Slug = slug.Make(name)
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		c.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.DisplayOrder != nil {
		c.DisplayOrder = *req.DisplayOrder
	}

	if err := s.Repo.UpdateCategory(ctx, c); err != nil {
		return nil, notFound(err, "category")
	}

	s.publish(ctx, events.New(events.CategoryUpdated, c.ID.String(), c.Name))
	return c, nil
}

// DeleteCategory leaves the category's products in place; the reference is weak.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		return notFound(err, "category")
	}
	s.publish(ctx, events.New(events.CategoryDeleted, id.String(), ""))
	return nil
}

// MoveCategory swaps a category's rank with its neighbour in display order
// and returns the reordered list. Moving past either end is a no-op.
func (s *CatalogService) MoveCategory(ctx context.Context, id uuid.UUID, direction string) ([]models.Category, error) {
	if direction != MoveUp && direction != MoveDown {
		return nil, fmt.Errorf("direction must be %q or %q: %w", MoveUp, MoveDown, ErrValidation)
	}

	list, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list {
		if list[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("category: %w", ErrNotFound)
	}

	other := idx - 1
	if direction == MoveDown {
		other = idx + 1
	}
	if other < 0 || other >= len(list) {
		return list, nil
	}

	// Equal ranks would make the swap a no-op, so spread them out first.
	if list[idx].DisplayOrder == list[other].DisplayOrder {
		if err := s.renumberCategories(ctx, list); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.SwapCategoryOrder(ctx, list[idx].ID, list[other].ID); err != nil {
		return nil, notFound(err, "category")
	}

	s.publish(ctx, events.New(events.CategoryUpdated, id.String(), list[idx].Name))
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) renumberCategories(ctx context.Context, list []models.Category) error {
	for i := range list {
		if list[i].DisplayOrder == i {
			continue
		}
		list[i].DisplayOrder = i
		if err := s.Repo.UpdateCategory(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}
