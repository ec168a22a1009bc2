package Hat1D

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Concat joins f on [a, b] and g on [b, c] into one function on [a, c]. The
// sample spacings must agree and both functions must have the same value at b,
// which is stored once.
func Concat(f, g Hat) (fg Hat, err error) {
	if f.B != g.A {
		err = fmt.Errorf("%w: %v does not end where %v begins", ErrDomainMismatch, f.Domain, g.Domain)
		return
	}
	if !scalar.EqualWithinRel(f.H(), g.H(), 1.e-9) {
		err = fmt.Errorf("%w: spacing %v differs from %v", ErrDomainMismatch, f.H(), g.H())
		return
	}
	var (
		fc, gc = f.C.Data(), g.C.Data()
	)
	if fc[f.N-1] != gc[0] {
		err = fmt.Errorf("%w: %v at the end of the first function, %v at the start of the second",
			ErrValueMismatch, fc[f.N-1], gc[0])
		return
	}
	coeffs := make([]float64, 0, f.N+g.N-1)
	coeffs = append(coeffs, fc...)
	coeffs = append(coeffs, gc[1:]...)
	return NewHat(f.A, g.B, f.N+g.N-1, coeffs)
}
