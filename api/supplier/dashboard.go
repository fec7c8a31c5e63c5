package supplier

import (
	"net/http"

	"brandia_server/api/middleware"
	"brandia_server/handling"

	"github.com/MonkyMars/gecho"
)

// GetDashboardStats handles GET /supplier/dashboard/stats
func (srm *SupplierRoutesManager) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.GetSupplierFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return
	}

	stats, err := srm.dashboardService.GetSupplierStats(r.Context(), sup.Id)
	if err != nil {
		handling.HandleServiceError(err, "Failed to build dashboard stats", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(stats),
		gecho.Send(),
	)
}
