package service

import "math"

// TotalPrice computes a line-item total: unit price times quantity with the
// discount fraction applied, rounded to 2 decimal places (half away from
// zero). Discount is expected in [0, 1) but is applied as-is; out-of-range
// upstream data produces an uncorrected total.
func TotalPrice(unitPrice float64, quantity int, discount float64) float64 {
	total := unitPrice * float64(quantity) * (1 - discount)
	return math.Round(total*100) / 100
}
