package Hat1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gohat/utils"
)

// Quad integrates f over its whole domain with the composite trapezoid rule,
// which is exact for a piecewise linear function.
func (f Hat) Quad() float64 {
	return f.trapezoid(0, f.N-1)
}

// trapezoid integrates over the whole bins between samples lo and hi
func (f Hat) trapezoid(lo, hi int) float64 {
	if hi <= lo {
		return 0
	}
	c := f.C.Data()
	return f.H() * (0.5*(c[lo]+c[hi]) + floats.Sum(c[lo+1:hi]))
}

// QuadInterval integrates f exactly from x1 to x2, both of which must lie in
// [A, B]. Reversed bounds give the negated integral.
func (f Hat) QuadInterval(x1, x2 float64) (q float64, err error) {
	for _, x := range []float64{x1, x2} {
		if !f.Contains(x) {
			err = fmt.Errorf("%w: integration bound %v is outside [%v, %v]", ErrOutOfDomain, x, f.A, f.B)
			return
		}
	}
	if x1 > x2 {
		q, err = f.QuadInterval(x2, x1)
		return -q, err
	}
	var (
		nMax = float64(f.N - 1)
		c    = f.C.Data()
		// Whole samples inside [x1, x2]
		s1 = int(math.Ceil(utils.Clamp(f.Index(x1), 0, nMax)))
		s2 = int(math.Floor(utils.Clamp(f.Index(x2), 0, nMax)))
	)
	v1, _ := f.Eval(x1)
	v2, _ := f.Eval(x2)
	if s1 > s2 {
		// Both bounds inside one bin
		return 0.5 * (x2 - x1) * (v1 + v2), nil
	}
	if s1 > 0 {
		q += 0.5 * (f.X(s1) - x1) * (v1 + c[s1])
	}
	q += f.trapezoid(s1, s2)
	if s2 < f.N-1 {
		q += 0.5 * (x2 - f.X(s2)) * (c[s2] + v2)
	}
	return
}
