package utils

import (
	"math"
)

// POW computes x^pp, unrolled for small powers and by repeated squaring otherwise.
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = FastPow(mul, x, p)
	}
	if flipped {
		y = 1. / y
	}
	return
}

func mul(a, b float64) float64 { return a * b }

// IsFinite reports whether every value in data is neither NaN nor infinite.
func IsFinite(data []float64) bool {
	for _, val := range data {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}
