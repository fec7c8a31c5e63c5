package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name               string
		total              uint64
		expectedSupplier   uint64
		expectedCommission uint64
	}{
		{"even split", 10000, 8500, 1500},
		{"commission floors down", 101, 86, 15},
		{"single cent", 1, 1, 0},
		{"six cents", 6, 6, 0},
		{"seven cents carries commission", 7, 6, 1},
		{"zero total", 0, 0, 0},
		{"large order", 12345678, 10493827, 1851851},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supplier, commission := SplitAmount(tt.total)
			assert.Equal(t, tt.expectedSupplier, supplier, "Supplier amount should match")
			assert.Equal(t, tt.expectedCommission, commission, "Commission amount should match")
		})
	}
}

func TestSplitAmountAlwaysSumsToTotal(t *testing.T) {
	for total := uint64(0); total < 10000; total++ {
		supplier, commission := SplitAmount(total)
		assert.Equal(t, total, supplier+commission, "Parts must sum to the total for %d", total)
	}
}

func TestSplitAmountCommissionNeverExceedsRate(t *testing.T) {
	for total := uint64(1); total < 10000; total++ {
		_, commission := SplitAmount(total)
		assert.LessOrEqual(t, commission*100, total*CommissionPercent,
			"Commission may never exceed the nominal rate for %d", total)
	}
}
