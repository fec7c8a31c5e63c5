package auth

import (
	"net/http"

	"brandia_server/api/middleware"
	"brandia_server/handling"
	"brandia_server/lib"

	"github.com/MonkyMars/gecho"
)

// GetMe returns the authenticated caller's account
func (arm *AuthRoutesManager) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return
	}

	user, err := arm.authService.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleServiceError(err, "Failed to resolve account", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"user": user,
		}),
		gecho.Send(),
	)
}

// Logout clears the access cookie. Always succeeds; an anonymous caller
// simply has nothing to clear.
func (arm *AuthRoutesManager) Logout(w http.ResponseWriter, r *http.Request) {
	lib.ClearCookie(lib.AccessCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out"),
		gecho.Send(),
	)
}
