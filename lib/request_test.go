package lib

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBody struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func bodyRequest(payload string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
}

func TestExtractAndValidateBodyValid(t *testing.T) {
	body, err := ExtractAndValidateBody[testBody](bodyRequest(`{"name":"Noor","email":"noor@example.com"}`))
	require.NoError(t, err)

	assert.Equal(t, "Noor", body.Name)
	assert.Equal(t, "noor@example.com", body.Email)
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"truncated", `{"name":"Noor"`},
		{"not json", `name=Noor`},
		{"empty", ``},
		{"unknown field", `{"name":"Noor","email":"noor@example.com","admin":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractAndValidateBody[testBody](bodyRequest(tt.payload))
			require.Error(t, err)

			// Decode failures surface as validation errors so handlers
			// answer 400, never 500
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, "body", ve.Errors[0].Field)
		})
	}
}

func TestExtractAndValidateBodyFailedTags(t *testing.T) {
	_, err := ExtractAndValidateBody[testBody](bodyRequest(`{"name":"","email":"not-an-email"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
}
