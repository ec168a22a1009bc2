package Wave1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/InputParameters"
	"github.com/notargets/gohat/PDE1D"
)

// StandingWave is the state of u = sin(k(x-a)) cos(k t), k = mode*pi/(b-a), at
// t = 0. It satisfies fixed ends for any integer mode.
func StandingWave(dom Hat1D.Domain, mode int) (S PDE1D.WaveState, err error) {
	var (
		k      = float64(mode) * math.Pi / (dom.B - dom.A)
		ut, ux Hat1D.Hat
	)
	if ut, err = Hat1D.ZeroOnDomain(dom); err != nil {
		return
	}
	ux, _ = Hat1D.ProjectOnDomain(dom, func(x float64) float64 {
		return k * math.Cos(k*(x-dom.A))
	})
	return PDE1D.NewWaveState(ut, ux)
}

// Pluck releases a Gaussian displacement centered in the domain from rest
func Pluck(dom Hat1D.Domain, width float64) (S PDE1D.WaveState, err error) {
	var (
		center = 0.5 * (dom.A + dom.B)
		ut, ux Hat1D.Hat
	)
	if ut, err = Hat1D.ZeroOnDomain(dom); err != nil {
		return
	}
	ux, _ = Hat1D.ProjectOnDomain(dom, func(x float64) float64 {
		s := (x - center) / width
		return -2 * s / width * math.Exp(-s*s)
	})
	return PDE1D.NewWaveState(ut, ux)
}

func InitialCondition(dom Hat1D.Domain, initType string, mode int) (S PDE1D.WaveState, err error) {
	switch strings.ToLower(strings.TrimSpace(initType)) {
	case "standing", "":
		return StandingWave(dom, mode)
	case "pluck", "gaussian":
		return Pluck(dom, 0.1*(dom.B-dom.A))
	}
	err = fmt.Errorf("%w: unknown wave InitType %q", InputParameters.ErrInvalidParameter, initType)
	return
}
