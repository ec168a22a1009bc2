package Hat1D

import (
	"fmt"

	"github.com/notargets/gohat/utils"
)

// Hat is a continuous piecewise linear function sampled at the N uniform
// points of its Domain. C[i] is the value at X(i), which is also the
// coefficient of the i-th hat basis function.
//
// The domain of a Hat never changes once constructed. Operations return new
// functions, except boundary enforcement which writes the end coefficients of
// a function the caller owns.
type Hat struct {
	Domain
	C utils.Vector
}

func NewHat(a, b float64, n int, coeffs []float64) (f Hat, err error) {
	var d Domain
	if d, err = NewDomain(a, b, n); err != nil {
		return
	}
	return NewHatOnDomain(d, coeffs)
}

func NewHatOnDomain(d Domain, coeffs []float64) (f Hat, err error) {
	if err = d.validate(); err != nil {
		return
	}
	if len(coeffs) != d.N {
		err = fmt.Errorf("%w: have %d coefficients for %d samples", ErrDomainMismatch, len(coeffs), d.N)
		return
	}
	f = Hat{
		Domain: d,
		C:      utils.NewVector(d.N, coeffs),
	}
	return
}

// Project samples fn at each point of the domain
func Project(a, b float64, n int, fn func(x float64) float64) (f Hat, err error) {
	var d Domain
	if d, err = NewDomain(a, b, n); err != nil {
		return
	}
	return ProjectOnDomain(d, fn)
}

func ProjectOnDomain(d Domain, fn func(x float64) float64) (f Hat, err error) {
	if err = d.validate(); err != nil {
		return
	}
	f = Hat{
		Domain: d,
		C:      utils.NewVector(d.N),
	}
	c := f.C.Data()
	for i := range c {
		c[i] = fn(d.X(i))
	}
	return
}

// Zero returns the additive identity on the domain
func Zero(a, b float64, n int) (f Hat, err error) {
	var d Domain
	if d, err = NewDomain(a, b, n); err != nil {
		return
	}
	return ZeroOnDomain(d)
}

func ZeroOnDomain(d Domain) (f Hat, err error) {
	if err = d.validate(); err != nil {
		return
	}
	return Hat{Domain: d, C: utils.NewVector(d.N)}, nil
}

func (f Hat) Copy() Hat {
	return Hat{Domain: f.Domain, C: f.C.Copy()}
}

// Coeffs returns a copy of the sample values
func (f Hat) Coeffs() []float64 {
	return f.C.Copy().Data()
}

func (f Hat) At(i int) float64 { return f.C.AtVec(i) }

func (f Hat) Len() int { return f.C.Len() }

// Equal is true for identical domains and identical coefficients
func (f Hat) Equal(g Hat) bool {
	return f.Domain == g.Domain && f.C.Equal(g.C)
}

// Map applies fn to every sample value, returning a new function
func (f Hat) Map(fn func(float64) float64) Hat {
	return Hat{Domain: f.Domain, C: f.C.Copy().Apply(fn)}
}

// IsFinite is false when any coefficient is NaN or infinite
func (f Hat) IsFinite() bool {
	return utils.IsFinite(f.C.Data())
}

func (f Hat) String() string {
	return fmt.Sprintf("Hat%v %v", f.Domain, f.C.Data())
}
