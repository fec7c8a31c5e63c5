package supplier

import (
	"net/http"
	"strings"

	"brandia_server/api/middleware"
	"brandia_server/handling"
	"brandia_server/lib"
	"brandia_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetOrderItems handles GET /supplier/orders, listing the caller's order
// items with status filter and product search
func (srm *SupplierRoutesManager) GetOrderItems(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.GetSupplierFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return
	}

	opts, err := handling.ParseOrderListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.Send(),
		)
		return
	}

	result, err := srm.orderService.GetSupplierOrderItems(r.Context(), sup.Id, opts)
	if err != nil {
		if strings.HasPrefix(err.Error(), "invalid fulfillment status") {
			gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
			return
		}
		handling.HandleServiceError(err, "Failed to fetch order items", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items":      result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// UpdateFulfillmentStatus handles PATCH /supplier/orders/items/{id}/status
func (srm *SupplierRoutesManager) UpdateFulfillmentStatus(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.GetSupplierFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return
	}

	itemIdStr := chi.URLParam(r, "id")
	itemId, err := uuid.Parse(itemIdStr)
	if err != nil {
		srm.logger.Warn("Invalid order item ID format", gecho.Field("item_id", itemIdStr))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order item ID"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.FulfillmentUpdateRequest](r)
	if err != nil {
		handling.HandleServiceError(err, "Invalid fulfillment update body", srm.logger, w)
		return
	}

	item, err := srm.orderService.UpdateFulfillmentStatus(r.Context(), sup.Id, itemId, body)
	if err != nil {
		if strings.HasPrefix(err.Error(), "invalid fulfillment transition") {
			gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
			return
		}
		handling.HandleServiceError(err, "Failed to update fulfillment status", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Fulfillment status updated"),
		gecho.WithData(map[string]any{
			"item": item,
		}),
		gecho.Send(),
	)
}
