package PDE1D

import (
	"errors"
	"fmt"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/utils"
)

var ErrUnsupportedBC = errors.New("unsupported boundary condition")

// BoundaryCondition overwrites the end coefficients of a function the caller owns
type BoundaryCondition interface {
	Type() utils.BCType
	Enforce(f *Hat1D.Hat)
}

// Neumann holds the slope df/dx at x = a (A) and at x = b (B). Both slopes are
// taken along +x, not along the outward normal: A = B = s keeps f = s*x as is,
// and a zero flux wall is zero at either end.
type Neumann struct {
	A, B float64
}

func (bc Neumann) Type() utils.BCType { return utils.BCNeumann }

func (bc Neumann) Enforce(f *Hat1D.Hat) {
	var (
		c = f.C.Data()
		n = f.N
		h = f.H()
	)
	c[0] = c[1] - bc.A*h
	c[n-1] = c[n-2] + bc.B*h
}

// Dirichlet holds the value at x = a (A) and at x = b (B)
type Dirichlet struct {
	A, B float64
}

func (bc Dirichlet) Type() utils.BCType { return utils.BCDirichlet }

func (bc Dirichlet) Enforce(f *Hat1D.Hat) {
	var (
		c = f.C.Data()
	)
	c[0] = bc.A
	c[f.N-1] = bc.B
}

// Free leaves the end coefficients as the integrator produced them
type Free struct{}

func (bc Free) Type() utils.BCType   { return utils.BCNone }
func (bc Free) Enforce(f *Hat1D.Hat) {}

func NewBoundaryCondition(bcType utils.BCType, a, b float64) (bc BoundaryCondition, err error) {
	switch bcType {
	case utils.BCNeumann:
		bc = Neumann{A: a, B: b}
	case utils.BCDirichlet:
		bc = Dirichlet{A: a, B: b}
	case utils.BCNone:
		bc = Free{}
	default:
		err = fmt.Errorf("%w: %v", ErrUnsupportedBC, bcType)
	}
	return
}
