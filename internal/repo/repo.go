package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

// Repository is the storage contract the services depend on. Missing rows
// are reported as gorm.ErrRecordNotFound.
type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	SwapCategoryOrder(ctx context.Context, a, b uuid.UUID) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	GetSettings(ctx context.Context) (*models.Settings, error)
	UpsertSettings(ctx context.Context, s *models.Settings) error

	GetAdmin(ctx context.Context, username string) (*models.Admin, error)
	CreateAdminIfNotExists(ctx context.Context, a *models.Admin) (bool, error)
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type GormRepo struct {
	DB *gorm.DB
}

var _ Repository = (*GormRepo)(nil)

func (r *GormRepo) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(models.All()...)
}
