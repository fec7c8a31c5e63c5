package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	number := GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(number, "BR-"), "Order number should carry the BR prefix")
	assert.Len(t, number, 11, "Prefix plus eight characters")

	for _, c := range number[3:] {
		isUpper := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'
		assert.True(t, isUpper || isDigit, "Suffix characters should be uppercase alphanumeric, got %q", c)
	}
}

func TestGenerateOrderNumberVariety(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		seen[GenerateOrderNumber()] = true
	}

	// Collisions are possible in principle but a hundred draws from a
	// 36^8 space should not repeat
	assert.Greater(t, len(seen), 95, "Generated order numbers should be effectively unique")
}
