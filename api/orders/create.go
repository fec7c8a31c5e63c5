package orders

import (
	"net/http"
	"strings"

	"brandia_server/api/middleware"
	"brandia_server/handling"
	"brandia_server/lib"
	"brandia_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		handling.HandleServiceError(err, "Invalid order request body", orm.logger, w)
		return
	}

	// The confirmation email needs the buyer's name, which the token does
	// not carry
	user, err := orm.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleServiceError(err, "Failed to resolve buyer account", orm.logger, w)
		return
	}

	order, err := orm.orderService.CreateOrderFromRequest(r.Context(), body, claims.Sub, user.Email, user.FullName())
	if err != nil {
		// Stock and availability problems are the buyer's to fix
		if strings.HasPrefix(err.Error(), "insufficient stock") ||
			strings.HasPrefix(err.Error(), "product") ||
			strings.HasPrefix(err.Error(), "duplicate product") {
			gecho.BadRequest(w,
				gecho.WithMessage(err.Error()),
				gecho.Send(),
			)
			return
		}

		handling.HandleServiceError(err, "Failed to create order", orm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order created"),
		gecho.WithData(map[string]any{
			"order_id":     order.Id,
			"order_number": order.OrderNumber,
			"status":       order.Status,
			"total_amount": order.TotalAmount,
		}),
		gecho.Send(),
	)
}
