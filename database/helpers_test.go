package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		pageSize       int
		expectedPage   int
		expectedSize   int
		expectedOffset int
	}{
		{"defaults applied", 0, 0, 1, 10, 0},
		{"negative values defaulted", -3, -20, 1, 10, 0},
		{"first page explicit", 1, 10, 1, 10, 0},
		{"second page offset", 2, 10, 2, 10, 10},
		{"large page size clamped", 1, 5000, 1, 100, 0},
		{"max page size allowed", 1, 100, 1, 100, 0},
		{"deep page offset math", 7, 25, 7, 25, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize, offset := NormalizePage(tt.page, tt.pageSize)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedSize, pageSize)
			assert.Equal(t, tt.expectedOffset, offset)
		})
	}
}

func TestNormalizePageNeverExceedsMax(t *testing.T) {
	for size := -10; size < 500; size += 7 {
		_, pageSize, _ := NormalizePage(1, size)
		assert.LessOrEqual(t, pageSize, 100, "Page size must stay clamped for input %d", size)
		assert.GreaterOrEqual(t, pageSize, 1)
	}
}
