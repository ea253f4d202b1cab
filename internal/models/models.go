package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SettingsID is the primary key of the single settings row.
const SettingsID uint = 1

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	Name         string    `gorm:"not null"                      json:"name"`
	Slug         string    `gorm:"index"                         json:"slug"`
	Description  string    `gorm:"type:text"                     json:"description,omitempty"`
	ImageURL     string    `                                     json:"image_url"`
	DisplayOrder int       `gorm:"not null;default:0;index"      json:"display_order"`
	CreatedAt    time.Time `                                     json:"created_at"`
	UpdatedAt    time.Time `                                     json:"updated_at"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"          json:"id"`
	CategoryID     uuid.UUID         `gorm:"type:uuid;index"               json:"category_id"`
	Name           string            `gorm:"not null"                      json:"name"`
	Price          decimal.Decimal   `gorm:"type:numeric(12,2);not null"   json:"price"`
	Images         []string          `gorm:"serializer:json;type:text"     json:"images"`
	Description    string            `gorm:"type:text"                     json:"description"`
	Specifications map[string]string `gorm:"serializer:json;type:text"     json:"specifications"`
	CreatedAt      time.Time         `                                     json:"created_at"`
	UpdatedAt      time.Time         `                                     json:"updated_at"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Settings struct {
	ID             uint      `gorm:"primaryKey"             json:"-"`
	SiteName       string    `gorm:"not null"               json:"site_name"`
	WhatsAppNumber string    `gorm:"column:whatsapp_number" json:"whatsapp_number"`
	PrivacyPolicy  string    `gorm:"type:text"              json:"privacy_policy"`
	ImgBBAPIKey    string    `gorm:"column:imgbb_api_key"   json:"imgbb_api_key,omitempty"`
	UpdatedAt      time.Time `                              json:"updated_at"`
}

// Public strips the upload credential.
func (s Settings) Public() Settings {
	s.ImgBBAPIKey = ""
	return s
}

type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type RevokedToken struct {
	JTI       string    `gorm:"primaryKey"  json:"jti"`
	ExpiresAt time.Time `gorm:"index"       json:"expires_at"`
}

func All() []any {
	return []any{&Category{}, &Product{}, &Settings{}, &Admin{}, &RevokedToken{}}
}
