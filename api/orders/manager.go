package orders

import (
	"brandia_server/api/middleware"
	"brandia_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	mw           *middleware.Middleware
	authService  *services.AuthService
	orderService *services.OrderService
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	mw *middleware.Middleware,
	authService *services.AuthService,
	orderService *services.OrderService,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		mw:           mw,
		authService:  authService,
		orderService: orderService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(orm.mw.UserAuthMiddleware)
		r.Post("/", orm.CreateOrder)
		r.Get("/me", orm.GetMyOrders)
		r.Get("/me/{id}", orm.GetMyOrderById)
		r.Post("/me/{id}/pay", orm.PayMyOrder)
	})
}
