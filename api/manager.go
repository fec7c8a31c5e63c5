package api

import (
	"brandia_server/api/auth"
	"brandia_server/api/campaigns"
	"brandia_server/api/health"
	"brandia_server/api/middleware"
	"brandia_server/api/orders"
	"brandia_server/api/products"
	"brandia_server/api/supplier"
	"brandia_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes  *products.ProductRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	supplierRoutes *supplier.SupplierRoutesManager
	campaignRoutes *campaigns.CampaignRoutesManager
	authRoutes     *auth.AuthRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.ProductService),
		orderRoutes:   orders.NewOrderRoutesManager(logger, mw, sm.AuthService, sm.OrderService),
		supplierRoutes: supplier.NewSupplierRoutesManager(
			logger, mw,
			sm.ProductService,
			sm.OrderService,
			sm.PaymentService,
			sm.DashboardService,
			sm.CampaignService,
		),
		campaignRoutes: campaigns.NewCampaignRoutesManager(logger, sm.CampaignService),
		authRoutes:     auth.NewAuthRoutesManager(logger, mw, sm.AuthService),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.supplierRoutes.RegisterRoutes(r)
	rm.campaignRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
