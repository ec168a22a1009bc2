package Hat1D

import (
	"fmt"
)

func CheckDomain(f, g Hat) error {
	if f.Domain != g.Domain {
		return fmt.Errorf("%w: %v and %v", ErrDomainMismatch, f.Domain, g.Domain)
	}
	return nil
}

// Combine returns alpha*f + beta*g
func Combine(f, g Hat, alpha, beta float64) (h Hat, err error) {
	if err = CheckDomain(f, g); err != nil {
		return
	}
	h = Hat{
		Domain: f.Domain,
		C:      f.C.Copy().Scale(alpha).AddScaled(beta, g.C),
	}
	return
}

func mustCombine(f, g Hat, alpha, beta float64) (h Hat) {
	var err error
	if h, err = Combine(f, g, alpha, beta); err != nil {
		panic(err)
	}
	return
}

// Add, Sub, Neg and Scale make Hat a vector space for the time integrators.
// Add and Sub panic with ErrDomainMismatch on incompatible operands, use
// Combine for a checked form.
func (f Hat) Add(g Hat) Hat { return mustCombine(f, g, 1, 1) }
func (f Hat) Sub(g Hat) Hat { return mustCombine(f, g, 1, -1) }
func (f Hat) Neg() Hat      { return f.Scale(-1) }

func (f Hat) Scale(s float64) Hat {
	return Hat{Domain: f.Domain, C: f.C.Copy().Scale(s)}
}
