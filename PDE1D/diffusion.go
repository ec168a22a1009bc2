package PDE1D

import (
	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/ODE"
)

// Diffusion advances f by one step of df/dt = d2f/dx2 and enforces bc on the
// result. The input is never modified, even by a stepper that returns it.
func Diffusion(stepper ODE.Stepper[Hat1D.Hat], bc BoundaryCondition, f Hat1D.Hat, h float64) Hat1D.Hat {
	g := stepper(Hat1D.Hat.Deriv2, f, h).Copy()
	bc.Enforce(&g)
	return g
}

// DiffusionN holds the end slopes. Deriv2 already moves each end sample with
// its neighbor, so only the end values need to be rewritten here.
func DiffusionN(stepper ODE.Stepper[Hat1D.Hat], bc Neumann, f Hat1D.Hat, h float64) Hat1D.Hat {
	return Diffusion(stepper, bc, f, h)
}

// DiffusionD pins the end values
func DiffusionD(stepper ODE.Stepper[Hat1D.Hat], bc Dirichlet, f Hat1D.Hat, h float64) Hat1D.Hat {
	return Diffusion(stepper, bc, f, h)
}

// Heat is the integral of f, conserved by diffusion with zero end slopes
func Heat(f Hat1D.Hat) float64 {
	return f.Quad()
}
