package structs

import "github.com/google/uuid"

type OrderItemRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type OrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`

	ShippingName       string `json:"shipping_name" validate:"required,min=2,max=100"`
	ShippingStreet     string `json:"shipping_street" validate:"required,min=2,max=200"`
	ShippingCity       string `json:"shipping_city" validate:"required,min=1,max=100"`
	ShippingPostalCode string `json:"shipping_postal_code" validate:"required,min=3,max=16"`
	ShippingCountry    string `json:"shipping_country" validate:"omitempty,len=2"`
}

type FulfillmentUpdateRequest struct {
	Status         string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
	TrackingNumber string `json:"tracking_number" validate:"omitempty,max=64"`
}
