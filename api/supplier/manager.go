package supplier

import (
	"brandia_server/api/middleware"
	"brandia_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SupplierRoutesManager struct {
	logger           *gecho.Logger
	mw               *middleware.Middleware
	productService   *services.ProductService
	orderService     *services.OrderService
	paymentService   *services.PaymentService
	dashboardService *services.DashboardService
	campaignService  *services.CampaignService
}

func NewSupplierRoutesManager(
	logger *gecho.Logger,
	mw *middleware.Middleware,
	productService *services.ProductService,
	orderService *services.OrderService,
	paymentService *services.PaymentService,
	dashboardService *services.DashboardService,
	campaignService *services.CampaignService,
) *SupplierRoutesManager {
	return &SupplierRoutesManager{
		logger:           logger,
		mw:               mw,
		productService:   productService,
		orderService:     orderService,
		paymentService:   paymentService,
		dashboardService: dashboardService,
		campaignService:  campaignService,
	}
}

func (srm *SupplierRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/supplier", func(r chi.Router) {
		r.Use(srm.mw.SupplierAuthMiddleware)

		r.Get("/dashboard/stats", srm.GetDashboardStats)

		r.Get("/orders", srm.GetOrderItems)
		r.Patch("/orders/items/{id}/status", srm.UpdateFulfillmentStatus)

		r.Get("/products", srm.GetProducts)
		r.Post("/products", srm.CreateProduct)
		r.Get("/products/{id}", srm.GetProduct)
		r.Patch("/products/{id}", srm.UpdateProduct)
		r.Delete("/products/{id}", srm.DeleteProduct)

		r.Get("/payments", srm.GetPayments)

		r.Get("/campaigns", srm.GetCampaigns)
		r.Post("/campaigns", srm.CreateCampaign)
		r.Get("/campaigns/{id}", srm.GetCampaign)
		r.Patch("/campaigns/{id}", srm.UpdateCampaign)
		r.Delete("/campaigns/{id}", srm.DeleteCampaign)
	})
}
