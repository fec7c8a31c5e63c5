package structs

import "github.com/google/uuid"

type CreateProductRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=200"`
	Brand         string     `json:"brand" validate:"omitempty,max=100"`
	Description   string     `json:"description" validate:"required,min=2,max=5000"`
	Price         uint64     `json:"price" validate:"required,gt=0"` // cents
	StockQuantity int        `json:"stock_quantity" validate:"gte=0"`
	CategoryId    *uuid.UUID `json:"category_id" validate:"omitempty"`
	Status        string     `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Brand         *string    `json:"brand,omitempty" validate:"omitempty,max=100"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,min=2,max=5000"`
	Price         *uint64    `json:"price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity *int       `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	CategoryId    *uuid.UUID `json:"category_id,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	IsActive      *bool      `json:"is_active,omitempty"`
}
