package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	items := []models.Category{}
	if err := r.DB.WithContext(ctx).Order("display_order ASC").Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var c models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, c *models.Category) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) UpdateCategory(ctx context.Context, c *models.Category) error {
	res := r.DB.WithContext(ctx).Model(&models.Category{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":          c.Name,
		"slug":          c.Slug,
		"description":   c.Description,
		"image_url":     c.ImageURL,
		"display_order": c.DisplayOrder,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return r.DB.WithContext(ctx).Where("id = ?", c.ID).First(c).Error
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SwapCategoryOrder exchanges the display_order of two categories atomically.
func (r *GormRepo) SwapCategoryOrder(ctx context.Context, a, b uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var first, second models.Category
		if err := tx.Where("id = ?", a).First(&first).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", b).First(&second).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Category{}).Where("id = ?", a).Update("display_order", second.DisplayOrder).Error; err != nil {
			return err
		}
		return tx.Model(&models.Category{}).Where("id = ?", b).Update("display_order", first.DisplayOrder).Error
	})
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := []models.Product{}
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormRepo) UpdateProduct(ctx context.Context, p *models.Product) error {
	var existing models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", p.ID).First(&existing).Error; err != nil {
		return err
	}
	p.CreatedAt = existing.CreatedAt
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
