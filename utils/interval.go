package utils

// Remap maps x affinely from the interval [a,b] onto [c,d].
// The endpoints map exactly: Remap(a,a,b,c,d) == c and Remap(b,a,b,c,d) == d.
func Remap(x, a, b, c, d float64) float64 {
	return c + (x-a)/(b-a)*(d-c)
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func ClampInt(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
