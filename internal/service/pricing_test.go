package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/szoz/northwind-api/internal/service"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		discount  float64
		want      float64
	}{
		{"reference order line", 23.56, 24, 0, 565.44},
		{"with discount", 18.0, 20, 0.05, 342.0},
		{"zero quantity", 9.99, 0, 0, 0},
		{"rounds to two decimals", 1.0, 3, 1.0 / 3.0, 2.0},
		{"full discount", 44.0, 2, 1.0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, service.TotalPrice(tc.unitPrice, tc.quantity, tc.discount), 1e-9)
		})
	}
}

func TestTotalPriceDoesNotClampDiscount(t *testing.T) {
	// Out-of-range discounts pass through uncorrected.
	assert.InDelta(t, -10.0, service.TotalPrice(10, 1, 2), 1e-9)
}
