package PDE1D

import (
	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/ODE"
)

// WaveState is the pair [u_t, u_x] for the solution u of u_tt = u_xx. Both
// components share one domain.
type WaveState struct {
	Ut, Ux Hat1D.Hat
}

func NewWaveState(ut, ux Hat1D.Hat) (s WaveState, err error) {
	if err = Hat1D.CheckDomain(ut, ux); err != nil {
		return
	}
	s = WaveState{Ut: ut, Ux: ux}
	return
}

func (s WaveState) Add(o WaveState) WaveState {
	return WaveState{Ut: s.Ut.Add(o.Ut), Ux: s.Ux.Add(o.Ux)}
}

func (s WaveState) Scale(a float64) WaveState {
	return WaveState{Ut: s.Ut.Scale(a), Ux: s.Ux.Scale(a)}
}

func (s WaveState) Copy() WaveState {
	return WaveState{Ut: s.Ut.Copy(), Ux: s.Ux.Copy()}
}

func (s WaveState) Domain() Hat1D.Domain { return s.Ut.Domain }

func (s WaveState) IsFinite() bool { return s.Ut.IsFinite() && s.Ux.IsFinite() }

// WaveRHS writes u_tt = u_xx as the first order system
// d/dt u_t = d/dx u_x, d/dt u_x = d/dx u_t
func WaveRHS(s WaveState) WaveState {
	return WaveState{Ut: s.Ux.Deriv(), Ux: s.Ut.Deriv()}
}

func Wave(stepper ODE.Stepper[WaveState], s WaveState, h float64) WaveState {
	return stepper(WaveRHS, s, h)
}

// WaveD0 steps the wave equation with fixed ends: u_t is zeroed at both walls,
// so the solution value there never moves.
func WaveD0(stepper ODE.Stepper[WaveState], s WaveState, h float64) WaveState {
	next := Wave(stepper, s, h)
	ut := next.Ut.Copy()
	c := ut.C.Data()
	c[0], c[len(c)-1] = 0, 0
	return WaveState{Ut: ut, Ux: next.Ux}
}

// Energy is 0.5 * integral(u_t^2 + u_x^2)
func Energy(s WaveState) float64 {
	sq := func(x float64) float64 { return x * x }
	return 0.5 * (s.Ut.Map(sq).Quad() + s.Ux.Map(sq).Quad())
}
