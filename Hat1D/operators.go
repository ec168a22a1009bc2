package Hat1D

import (
	"sync"

	"github.com/notargets/gohat/utils"
)

type operators struct {
	Dx, Dxx utils.CSR
}

// Operators depend only on the domain, they are assembled once per domain
var operatorCache sync.Map

func operatorsFor(d Domain) *operators {
	if op, ok := operatorCache.Load(d); ok {
		return op.(*operators)
	}
	op, _ := operatorCache.LoadOrStore(d, newOperators(d))
	return op.(*operators)
}

func newOperators(d Domain) *operators {
	var (
		n   = d.N
		h   = d.H()
		Dx  = utils.NewDOK(n, n, "Dx")
		Dxx = utils.NewDOK(n, n, "Dxx")
	)
	// One sided differences at the ends, central differences inside
	Dx.Set(0, 0, -1/h).Set(0, 1, 1/h)
	Dx.Set(n-1, n-2, -1/h).Set(n-1, n-1, 1/h)
	for i := 1; i < n-1; i++ {
		Dx.Set(i, i-1, -0.5/h).Set(i, i+1, 0.5/h)
	}
	// Two samples carry no curvature, Dxx stays zero
	if n >= 3 {
		h2 := h * h
		stencil := func(row, center int) {
			Dxx.Set(row, center-1, 1/h2).Set(row, center, -2/h2).Set(row, center+1, 1/h2)
		}
		for i := 1; i < n-1; i++ {
			stencil(i, i)
		}
		// The end rows copy their interior neighbor, so the first two and the
		// last two samples move together and the end slopes are held
		stencil(0, 1)
		stencil(n-1, n-2)
	}
	return &operators{
		Dx:  Dx.ToCSR(),
		Dxx: Dxx.ToCSR(),
	}
}

// DerivOperator is the sparse matrix applied by Deriv
func DerivOperator(d Domain) utils.CSR { return operatorsFor(d).Dx }

// Deriv2Operator is the sparse matrix applied by Deriv2
func Deriv2Operator(d Domain) utils.CSR { return operatorsFor(d).Dxx }

// Deriv approximates the derivative at each sample with central differences,
// one sided at the two ends.
// The derivative of a piecewise linear function is piecewise constant and
// undefined at the samples, this is a smoothed stand in for it.
func (f Hat) Deriv() Hat {
	return Hat{Domain: f.Domain, C: DerivOperator(f.Domain).MulVec(f.C)}
}

// Deriv2 applies the three point second difference. At each end the stencil
// of the nearest interior sample is reused.
func (f Hat) Deriv2() Hat {
	return Hat{Domain: f.Domain, C: Deriv2Operator(f.Domain).MulVec(f.C)}
}
