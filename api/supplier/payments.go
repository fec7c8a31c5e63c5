package supplier

import (
	"net/http"

	"brandia_server/api/middleware"
	"brandia_server/handling"

	"github.com/MonkyMars/gecho"
)

// GetPayments handles GET /supplier/payments, returning the ledger rows and
// the balance summary in one payload
func (srm *SupplierRoutesManager) GetPayments(w http.ResponseWriter, r *http.Request) {
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

	payments, err := srm.paymentService.GetSupplierPayments(r.Context(), sup.Id, opts.Status, opts.Page, opts.PageSize)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch payments", srm.logger, w)
		return
	}

	balance, err := srm.paymentService.GetSupplierBalance(r.Context(), sup.Id)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch balance", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"payments":   payments.Data,
			"pagination": payments.Pagination,
			"balance":    balance,
		}),
		gecho.Send(),
	)
}
