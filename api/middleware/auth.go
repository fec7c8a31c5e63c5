package middleware

import (
	"context"
	"net/http"

	"brandia_server/structs"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing caller identity in request context
type contextKey string

const (
	ClaimsContextKey   contextKey = "claims"
	SupplierContextKey contextKey = "supplier"
)

// UserAuthMiddleware protects routes to only logged-in users
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := mw.authService.VerifyRequest(r)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SupplierAuthMiddleware protects routes to users with the supplier role and
// resolves their supplier profile into the request context. Every supplier
// handler scopes its queries by the id stored here.
func (mw *Middleware) SupplierAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := mw.authService.VerifyRequest(r)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		if claims.Role != string(tables.RoleSupplier) && claims.Role != string(tables.RoleAdmin) {
			mw.logger.Warn("Non-supplier user attempted to access supplier route",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("role", claims.Role))
			gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
			return
		}

		supplier, err := mw.authService.GetSupplierByUserID(r.Context(), claims.Sub)
		if err != nil {
			mw.logger.Warn("No active supplier profile for user",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("error", err))
			gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		ctx = context.WithValue(ctx, SupplierContextKey, supplier)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts the caller's claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}

// GetSupplierFromContext extracts the resolved supplier from request context
func GetSupplierFromContext(ctx context.Context) (*tables.Supplier, bool) {
	supplier, ok := ctx.Value(SupplierContextKey).(*tables.Supplier)
	return supplier, ok
}
