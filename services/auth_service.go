package services

import (
	"context"
	"net/http"

	"brandia_server/database"
	"brandia_server/lib"
	"brandia_server/structs"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// AuthService verifies request identity and resolves the caller's user and
// supplier records. Registration and login flows live elsewhere; this
// service only answers "who is calling".
type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, cacheService *CacheService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
	}
}

// VerifyRequest extracts and validates the caller's access token
func (as *AuthService) VerifyRequest(r *http.Request) (*structs.AuthClaims, error) {
	claims, err := lib.ExtractClaims(r, as.cfg.Auth.AccessTokenSecret)
	if err != nil {
		return nil, lib.ErrInvalidToken
	}

	return claims, nil
}

// GetUserByID resolves a user, cache first. Inactive accounts resolve to
// invalid credentials so a disabled user cannot keep using a live token.
func (as *AuthService) GetUserByID(ctx context.Context, userId uuid.UUID) (*tables.User, error) {
	if cached, err := as.cacheService.GetUserFromCache(userId); err == nil && cached != nil {
		if !cached.IsActive {
			return nil, lib.ErrInvalidCredentials
		}
		return cached, nil
	}

	user, err := database.Query[tables.User](as.db).
		Where("id", userId).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}
	if !user.IsActive {
		return nil, lib.ErrInvalidCredentials
	}

	if err := as.cacheService.SetUserInCache(user); err != nil {
		as.logger.Warn("Failed to cache user",
			gecho.Field("user_id", userId),
			gecho.Field("error", err))
	}

	return user, nil
}

// GetSupplierByUserID resolves the supplier profile behind a user account,
// cache first. Users without a supplier row, or with a deactivated one,
// resolve to not found.
func (as *AuthService) GetSupplierByUserID(ctx context.Context, userId uuid.UUID) (*tables.Supplier, error) {
	if cached, err := as.cacheService.GetSupplierFromCache(userId); err == nil && cached != nil {
		if !cached.IsActive {
			return nil, lib.ErrNotFound
		}
		return cached, nil
	}

	supplier, err := database.Query[tables.Supplier](as.db).
		Where("user_id", userId).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if supplier == nil || !supplier.IsActive {
		return nil, lib.ErrNotFound
	}

	if err := as.cacheService.SetSupplierInCache(supplier); err != nil {
		as.logger.Warn("Failed to cache supplier",
			gecho.Field("user_id", userId),
			gecho.Field("error", err))
	}

	return supplier, nil
}
