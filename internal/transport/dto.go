package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCategoryRequest struct {
	Name         string `json:"name"          validate:"required,max=200"`
	Description  string `json:"description"   validate:"max=2000"`
	ImageURL     string `json:"image_url"     validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order"`
}

type PatchCategoryRequest struct {
	Name         *string `json:"name"          validate:"omitempty,max=200"`
	Description  *string `json:"description"   validate:"omitempty,max=2000"`
	ImageURL     *string `json:"image_url"     validate:"omitempty"`
	DisplayOrder *int    `json:"display_order"`
}

type MoveCategoryRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type CreateProductRequest struct {
	CategoryID     uuid.UUID         `json:"category_id"`
	Name           string            `json:"name"           validate:"required,max=200"`
	Price          decimal.Decimal   `json:"price"`
	Images         []string          `json:"images"         validate:"required,min=1,dive,required"`
	Description    string            `json:"description"`
	Specifications map[string]string `json:"specifications"`
}

type PatchProductRequest struct {
	CategoryID     *uuid.UUID         `json:"category_id"`
	Name           *string            `json:"name"           validate:"omitempty,max=200"`
	Price          *decimal.Decimal   `json:"price"`
	Images         *[]string          `json:"images"`
	Description    *string            `json:"description"`
	Specifications *map[string]string `json:"specifications"`
}

type SettingsRequest struct {
	SiteName       string  `json:"site_name"       validate:"required,max=200"`
	WhatsAppNumber string  `json:"whatsapp_number" validate:"required"`
	PrivacyPolicy  string  `json:"privacy_policy"`
	ImgBBAPIKey    *string `json:"imgbb_api_key"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type URLResponse struct {
	URL string `json:"url"`
}
