package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestIssueAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, err := IssueToken(userID, "buyer@example.com", "client", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.Sub, "Subject should round-trip")
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
	assert.NotEqual(t, uuid.Nil, claims.Jti, "Each token carries a unique id")
	assert.True(t, claims.Exp.After(time.Now()), "Expiry should be in the future")
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(uuid.New(), "buyer@example.com", "client", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "a-different-secret")
	assert.Error(t, err, "Token signed with another secret must be rejected")
}

func TestParseTokenExpired(t *testing.T) {
	token, err := IssueToken(uuid.New(), "buyer@example.com", "client", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err, "Expired token must be rejected")
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt", testSecret)
	assert.Error(t, err)
}

func TestExtractClaimsFromCookie(t *testing.T) {
	userID := uuid.New()
	token, err := IssueToken(userID, "supplier@example.com", "supplier", testSecret, time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/supplier/products", nil)
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: token})

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Sub)
	assert.Equal(t, "supplier", claims.Role)
}

func TestExtractClaimsFromBearerHeader(t *testing.T) {
	userID := uuid.New()
	token, err := IssueToken(userID, "buyer@example.com", "client", testSecret, time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/orders/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Sub)
}

func TestExtractClaimsMissingToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/orders/me", nil)

	_, err := ExtractClaims(r, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
