package auth

import (
	"brandia_server/api/middleware"
	"brandia_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AuthRoutesManager exposes the identity surface: who am I, and log out.
// Registration and login are handled by the identity provider deployment,
// which sets the access cookie this service verifies.
type AuthRoutesManager struct {
	logger      *gecho.Logger
	mw          *middleware.Middleware
	authService *services.AuthService
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	mw *middleware.Middleware,
	authService *services.AuthService,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		mw:          mw,
		authService: authService,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.With(arm.mw.UserAuthMiddleware).Get("/me", arm.GetMe)
		r.Post("/logout", arm.Logout)
	})
}
