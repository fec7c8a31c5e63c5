package structs

import (
	"time"

	"github.com/google/uuid"
)

type CreateCampaignRequest struct {
	Name            string      `json:"name" validate:"required,min=2,max=200"`
	BannerText      string      `json:"banner_text" validate:"omitempty,max=500"`
	DiscountPercent int         `json:"discount_percent" validate:"gte=0,lte=90"`
	TargetProducts  []uuid.UUID `json:"target_products" validate:"omitempty,max=100"`
	StartsAt        *time.Time  `json:"starts_at"`
	EndsAt          *time.Time  `json:"ends_at"`
	Status          string      `json:"status" validate:"omitempty,oneof=draft active ended"`
}

type UpdateCampaignRequest struct {
	Name            *string     `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	BannerText      *string     `json:"banner_text,omitempty" validate:"omitempty,max=500"`
	DiscountPercent *int        `json:"discount_percent,omitempty" validate:"omitempty,gte=0,lte=90"`
	TargetProducts  []uuid.UUID `json:"target_products,omitempty" validate:"omitempty,max=100"`
	StartsAt        *time.Time  `json:"starts_at,omitempty"`
	EndsAt          *time.Time  `json:"ends_at,omitempty"`
	Status          *string     `json:"status,omitempty" validate:"omitempty,oneof=draft active ended"`
}
