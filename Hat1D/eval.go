package Hat1D

import (
	"fmt"
)

// Eval interpolates f linearly between the two samples bracketing x
func (f Hat) Eval(x float64) (val float64, err error) {
	if !f.Contains(x) {
		err = fmt.Errorf("%w: x = %v is outside [%v, %v]", ErrOutOfDomain, x, f.A, f.B)
		return
	}
	var (
		c    = f.C.Data()
		k, t = f.locate(x)
	)
	if t == 0 {
		return c[k], nil
	}
	val = (1-t)*c[k] + t*c[k+1]
	return
}

func (f Hat) EvalAll(X []float64) (vals []float64, err error) {
	vals = make([]float64, len(X))
	for i, x := range X {
		if vals[i], err = f.Eval(x); err != nil {
			return nil, err
		}
	}
	return
}
