package orders

import (
	"net/http"
	"strings"

	"brandia_server/api/middleware"
	"brandia_server/handling"
	"brandia_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PayMyOrder handles POST /orders/me/{id}/pay. Payment is simulated: the
// order gets a generated payment intent id and moves to paid. A real
// provider integration would replace this with a webhook.
func (orm *OrderRoutesManager) PayMyOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return
	}

	orderIdStr := chi.URLParam(r, "id")
	orderId, err := uuid.Parse(orderIdStr)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order ID"),
			gecho.Send(),
		)
		return
	}

	// Ownership check first so a foreign order id stays a plain 404
	if _, err := orm.orderService.GetUserOrderById(r.Context(), claims.Sub, orderId); err != nil {
		handling.HandleServiceError(err, "Failed to fetch order", orm.logger, w)
		return
	}

	token, err := lib.GenerateRandomToken()
	if err != nil {
		handling.HandleServiceError(err, "Failed to generate payment reference", orm.logger, w)
		return
	}

	paymentIntentId := "pi_" + token
	if err := orm.orderService.MarkOrderAsPaid(r.Context(), orderId, paymentIntentId); err != nil {
		if strings.HasPrefix(err.Error(), "invalid status transition") {
			gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
			return
		}
		handling.HandleServiceError(err, "Failed to mark order as paid", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order paid"),
		gecho.WithData(map[string]any{
			"order_id":          orderId,
			"payment_intent_id": paymentIntentId,
		}),
		gecho.Send(),
	)
}
