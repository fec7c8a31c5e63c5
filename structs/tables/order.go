package tables

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

type FulfillmentStatus string

const (
	FulfillmentPending    FulfillmentStatus = "pending"
	FulfillmentProcessing FulfillmentStatus = "processing"
	FulfillmentShipped    FulfillmentStatus = "shipped"
	FulfillmentDelivered  FulfillmentStatus = "delivered"
	FulfillmentCancelled  FulfillmentStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type Order struct {
	tableName   struct{}  `bun:"table:orders,alias:o"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderNumber string    `bun:"order_number,notnull,unique" json:"order_number"`
	UserId      uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`

	// Totals in cents; snapshotted at placement
	TotalAmount uint64 `bun:"total_amount,notnull" json:"total_amount"`

	// Shipping address
	ShippingName       string `bun:"shipping_name,notnull" json:"shipping_name"`
	ShippingStreet     string `bun:"shipping_street,notnull" json:"shipping_street"`
	ShippingCity       string `bun:"shipping_city,notnull" json:"shipping_city"`
	ShippingPostalCode string `bun:"shipping_postal_code,notnull" json:"shipping_postal_code"`
	ShippingCountry    string `bun:"shipping_country,notnull" json:"shipping_country"`

	// Payment
	PaymentIntentId string        `bun:"payment_intent_id" json:"payment_intent_id,omitempty"`
	PaymentStatus   PaymentStatus `bun:"payment_status,notnull,default:'unpaid'" json:"payment_status"`

	Status    OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time   `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	DeletedAt *time.Time  `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

// OrderItem captures the snapshot of one product line within an order.
// Price, quantity and the commission split are immutable once placed; only
// fulfillment_status moves afterwards.
type OrderItem struct {
	tableName  struct{}  `bun:"table:order_items,alias:oi"`
	Id         uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	OrderId    uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId  uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	SupplierId uuid.UUID `bun:"supplier_id,notnull,type:uuid" json:"supplier_id"` // denormalized for supplier scoping

	Quantity    int    `bun:"quantity,notnull" json:"quantity"`
	UnitPrice   uint64 `bun:"unit_price,notnull" json:"unit_price"` // cents, at time of order
	LineTotal   uint64 `bun:"line_total,notnull" json:"line_total"` // quantity * unit_price
	ProductName string `bun:"product_name,notnull" json:"product_name"`

	// Derived once via lib.SplitAmount; never recomputed inline
	SupplierAmount   uint64 `bun:"supplier_amount,notnull" json:"supplier_amount"`
	CommissionAmount uint64 `bun:"commission_amount,notnull" json:"commission_amount"`

	FulfillmentStatus FulfillmentStatus `bun:"fulfillment_status,notnull,default:'pending'" json:"fulfillment_status"`
	PaymentStatus     PaymentStatus     `bun:"payment_status,notnull,default:'unpaid'" json:"payment_status"`
	TrackingNumber    string            `bun:"tracking_number" json:"tracking_number,omitempty"`
	CreatedAt         time.Time         `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt         time.Time         `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
