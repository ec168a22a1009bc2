package ODE

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notargets/gohat/utils"
)

// Vector is any state that can be summed and scaled: a single function, a
// pair of functions, a plain float.
type Vector[S any] interface {
	Add(S) S
	Scale(float64) S
}

// RHS maps a state of an autonomous system to its time derivative
type RHS[S any] func(S) S

// Stepper advances y by one step of size h. Steppers are pure, y is not modified.
type Stepper[S Vector[S]] func(rhs RHS[S], y S, h float64) S

var ErrUnknownStepper = errors.New("unknown stepper")

// RK2Step is the explicit midpoint method:
// k0 = f(y0), y1 = y0 + h/2*k0, k1 = f(y1), y0 + h*k1
func RK2Step[S Vector[S]](rhs RHS[S], y0 S, h float64) S {
	k0 := rhs(y0)
	y1 := y0.Add(k0.Scale(h / 2))
	k1 := rhs(y1)
	return y0.Add(k1.Scale(h))
}

func EulerStep[S Vector[S]](rhs RHS[S], y0 S, h float64) S {
	return y0.Add(rhs(y0).Scale(h))
}

// RK4Step is the classical four stage Runge-Kutta method
func RK4Step[S Vector[S]](rhs RHS[S], y0 S, h float64) S {
	k1 := rhs(y0)
	k2 := rhs(y0.Add(k1.Scale(h / 2)))
	k3 := rhs(y0.Add(k2.Scale(h / 2)))
	k4 := rhs(y0.Add(k3.Scale(h)))
	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return y0.Add(sum.Scale(h / 6))
}

// Low storage five stage fourth order Runge-Kutta coefficients (Carpenter and Kennedy)
var (
	RK4a = [5]float64{
		0.0,
		-567301805773.0 / 1357537059087.0,
		-2404267990393.0 / 2016746695238.0,
		-3550918686646.0 / 2091501179385.0,
		-1275806237668.0 / 842570457699.0,
	}
	RK4b = [5]float64{
		1432997174477.0 / 9575080441755.0,
		5161836677717.0 / 13612068292357.0,
		1720146321549.0 / 2090206949498.0,
		3134564353537.0 / 4481467310338.0,
		2277821191437.0 / 14882151754819.0,
	}
	RK4c = [5]float64{
		0.0,
		1432997174477.0 / 9575080441755.0,
		2526269341429.0 / 6820363183890.0,
		2006345519317.0 / 3224310063776.0,
		2802321613138.0 / 2924317926251.0,
	}
)

// LSRK4Step is the low storage Runge-Kutta scheme:
// resid = rk4a(i) * resid + dt * rhs(y); y += rk4b(i) * resid
func LSRK4Step[S Vector[S]](rhs RHS[S], y0 S, h float64) S {
	var (
		resid S
		y     = y0
	)
	for INTRK := 0; INTRK < 5; INTRK++ {
		k := rhs(y).Scale(h)
		if INTRK == 0 {
			resid = k // RK4a[0] is zero
		} else {
			resid = resid.Scale(RK4a[INTRK]).Add(k)
		}
		y = y.Add(resid.Scale(RK4b[INTRK]))
	}
	return y
}

// StepperByName selects an integrator: "rk2", "euler", "rk4" or "lsrk4"
func StepperByName[S Vector[S]](name string) (stepper Stepper[S], err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rk2", "midpoint", "":
		stepper = RK2Step[S]
	case "euler":
		stepper = EulerStep[S]
	case "rk4":
		stepper = RK4Step[S]
	case "lsrk4":
		stepper = LSRK4Step[S]
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownStepper, name)
	}
	return
}

// Integrate takes nsteps fixed steps of size h from y0
func Integrate[S Vector[S]](stepper Stepper[S], rhs RHS[S], y0 S, h float64, nsteps int) S {
	return utils.Iterate(func(y S) S { return stepper(rhs, y, h) }, y0, nsteps)
}
