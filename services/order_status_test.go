package services

import (
	"testing"

	"brandia_server/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFulfillmentTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    tables.FulfillmentStatus
		to      tables.FulfillmentStatus
		allowed bool
	}{
		{"pending to processing", tables.FulfillmentPending, tables.FulfillmentProcessing, true},
		{"pending straight to shipped", tables.FulfillmentPending, tables.FulfillmentShipped, true},
		{"pending to cancelled", tables.FulfillmentPending, tables.FulfillmentCancelled, true},
		{"pending to delivered skips shipping", tables.FulfillmentPending, tables.FulfillmentDelivered, false},
		{"processing to shipped", tables.FulfillmentProcessing, tables.FulfillmentShipped, true},
		{"processing to cancelled", tables.FulfillmentProcessing, tables.FulfillmentCancelled, true},
		{"processing back to pending", tables.FulfillmentProcessing, tables.FulfillmentPending, false},
		{"shipped to delivered", tables.FulfillmentShipped, tables.FulfillmentDelivered, true},
		{"shipped cannot cancel", tables.FulfillmentShipped, tables.FulfillmentCancelled, false},
		{"delivered is terminal", tables.FulfillmentDelivered, tables.FulfillmentShipped, false},
		{"cancelled is terminal", tables.FulfillmentCancelled, tables.FulfillmentPending, false},
		{"same state is not a transition", tables.FulfillmentPending, tables.FulfillmentPending, false},
		{"unknown source state", tables.FulfillmentStatus("lost"), tables.FulfillmentShipped, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, IsValidFulfillmentTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidOrderStatusTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    tables.OrderStatus
		to      tables.OrderStatus
		allowed bool
	}{
		{"pending to paid", tables.OrderStatusPending, tables.OrderStatusPaid, true},
		{"pending to cancelled", tables.OrderStatusPending, tables.OrderStatusCancelled, true},
		{"pending cannot ship unpaid", tables.OrderStatusPending, tables.OrderStatusShipped, false},
		{"paid to shipped", tables.OrderStatusPaid, tables.OrderStatusShipped, true},
		{"paid to refunded", tables.OrderStatusPaid, tables.OrderStatusRefunded, true},
		{"shipped to delivered", tables.OrderStatusShipped, tables.OrderStatusDelivered, true},
		{"delivered to refunded", tables.OrderStatusDelivered, tables.OrderStatusRefunded, true},
		{"cancelled is terminal", tables.OrderStatusCancelled, tables.OrderStatusPending, false},
		{"refunded is terminal", tables.OrderStatusRefunded, tables.OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, IsValidOrderStatusTransition(tt.from, tt.to))
		})
	}
}
