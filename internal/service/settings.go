package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/boutiquechat/internal/events"
	"github.com/Skotchmaster/boutiquechat/internal/models"
	"github.com/Skotchmaster/boutiquechat/internal/repo"
	"github.com/Skotchmaster/boutiquechat/internal/transport"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
)

type SettingsService struct {
	Repo   repo.Repository
	Events events.Publisher
}

// Get returns the stored settings, or an empty record if none were saved yet.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	st, err := s.Repo.GetSettings(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Settings{ID: models.SettingsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Save upserts the singleton. A nil ImgBBAPIKey keeps the stored key.
func (s *SettingsService) Save(ctx context.Context, req transport.SettingsRequest) (*models.Settings, error) {
	siteName := strings.TrimSpace(req.SiteName)
	if siteName == "" {
		return nil, fmt.Errorf("site name is required: %w", ErrValidation)
	}
	phone := PhoneDigits(req.WhatsAppNumber)
	if phone == "" {
		return nil, fmt.Errorf("whatsapp number must contain digits: %w", ErrValidation)
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	st := &models.Settings{
		SiteName:       siteName,
		WhatsAppNumber: phone,
		PrivacyPolicy:  strings.TrimSpace(req.PrivacyPolicy),
		ImgBBAPIKey:    current.ImgBBAPIKey,
	}
	if req.ImgBBAPIKey != nil {
		st.ImgBBAPIKey = strings.TrimSpace(*req.ImgBBAPIKey)
	}

	if err := s.Repo.UpsertSettings(ctx, st); err != nil {
		return nil, err
	}

	if s.Events != nil {
		if err := s.Events.Publish(ctx, events.New(events.SettingsUpdated, "settings", st.SiteName)); err != nil {
			logging.FromContext(ctx).Error("publish_event_failed", "type", events.SettingsUpdated, "error", err)
		}
	}
	return st, nil
}

// ImgBBAPIKey lets the upload client read the credential from settings.
func (s *SettingsService) ImgBBAPIKey(ctx context.Context) (string, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	return st.ImgBBAPIKey, nil
}
