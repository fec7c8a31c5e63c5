package handling

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"brandia_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	logger := newTestLogger()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", lib.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("fetch product: %w", lib.ErrNotFound), http.StatusNotFound},
		{"conflict", lib.ErrConflict, http.StatusBadRequest},
		{"invalid token", lib.ErrInvalidToken, http.StatusUnauthorized},
		{"invalid credentials", lib.ErrInvalidCredentials, http.StatusUnauthorized},
		{"validation", &lib.ValidationError{Errors: []lib.FieldError{{Field: "name", Message: "is required"}}}, http.StatusBadRequest},
		{"unknown", errors.New("connection reset by peer"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleServiceError(tt.err, "test", logger, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleServiceErrorHidesDriverDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleServiceError(errors.New("pq: relation \"orders\" does not exist"), "test", newTestLogger(), rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}
