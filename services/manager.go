package services

import (
	"brandia_server/database"
	"brandia_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService      *AuthService
	CacheService     *CacheService
	EmailService     *EmailService
	HealthService    *HealthService
	ProductService   *ProductService
	OrderService     *OrderService
	PaymentService   *PaymentService
	DashboardService *DashboardService
	CampaignService  *CampaignService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	authService := NewAuthService(logger, cfg, db, cacheService)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	paymentService := NewPaymentService(logger, db)
	orderService := NewOrderService(logger, cfg, db, productService, emailService, paymentService)
	dashboardService := NewDashboardService(logger, db, paymentService)
	campaignService := NewCampaignService(logger, db)

	return &ServiceManager{
		AuthService:      authService,
		CacheService:     cacheService,
		EmailService:     emailService,
		HealthService:    healthService,
		ProductService:   productService,
		OrderService:     orderService,
		PaymentService:   paymentService,
		DashboardService: dashboardService,
		CampaignService:  campaignService,
	}
}
