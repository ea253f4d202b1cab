package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

func (r *GormRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	if err := r.DB.WithContext(ctx).Where("id = ?", models.SettingsID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSettings writes the singleton row, creating it on first save.
func (r *GormRepo) UpsertSettings(ctx context.Context, s *models.Settings) error {
	s.ID = models.SettingsID
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"site_name", "whatsapp_number", "privacy_policy", "imgbb_api_key", "updated_at"}),
	}).Create(s).Error
}

func (r *GormRepo) GetAdmin(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdminIfNotExists reports whether a new row was inserted.
func (r *GormRepo) CreateAdminIfNotExists(ctx context.Context, a *models.Admin) (bool, error) {
	if _, err := r.GetAdmin(ctx, a.Username); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := r.DB.WithContext(ctx).Create(a).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *GormRepo) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

func (r *GormRepo) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
