package utils

import "fmt"

// Iterate applies f to x n times. For n <= 0 x is returned unchanged.
func Iterate[T any](f func(T) T, x T, n int) T {
	for i := 0; i < n; i++ {
		x = f(x)
	}
	return x
}

// Repeat combines n copies of x with op, left to right: x op x op ... op x.
func Repeat[T any](op func(T, T) T, x T, n int) (y T) {
	if n < 1 {
		panic(fmt.Errorf("repeat count must be positive, have %d", n))
	}
	y = x
	for i := 1; i < n; i++ {
		y = op(y, x)
	}
	return
}

// FastPow computes the same value as Repeat for an associative op using
// binary exponentiation, so op is applied O(log n) times.
func FastPow[T any](op func(T, T) T, x T, n int) (y T) {
	if n < 1 {
		panic(fmt.Errorf("exponent must be positive, have %d", n))
	}
	var (
		have bool
		base = x
	)
	for {
		if n&1 == 1 {
			if have {
				y = op(y, base)
			} else {
				y, have = base, true
			}
		}
		n >>= 1
		if n == 0 {
			return
		}
		base = op(base, base)
	}
}
