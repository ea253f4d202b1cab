package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

// ProductFilter selects the visible products. A nil CategoryID and an empty
// Query both match everything.
type ProductFilter struct {
	CategoryID uuid.UUID
	Query      string
}

func (f ProductFilter) Match(p models.Product) bool {
	if f.CategoryID != uuid.Nil && p.CategoryID != f.CategoryID {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// FilterProducts keeps the input order.
func FilterProducts(products []models.Product, f ProductFilter) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
