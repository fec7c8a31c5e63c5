package structs

import (
	"time"

	"github.com/google/uuid"
)

// AuthClaims is the request-scoped caller identity extracted from the access
// token by the auth middleware and consumed by every handler.
type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}
