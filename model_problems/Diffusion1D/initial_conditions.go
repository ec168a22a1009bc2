package Diffusion1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/InputParameters"
	"github.com/notargets/gohat/utils"
)

// InitialCondition builds u(x, 0):
//
//	sine:     sin(mode*pi*s), s = (x-a)/(b-a)
//	gaussian: exp(-((s-0.5)/0.1)^2)
//	step:     1 on the middle third, 0 elsewhere
func InitialCondition(dom Hat1D.Domain, initType string, mode int) (U Hat1D.Hat, err error) {
	var (
		L  = dom.B - dom.A
		fn func(x float64) float64
	)
	switch strings.ToLower(strings.TrimSpace(initType)) {
	case "sine", "":
		fn = func(x float64) float64 {
			return math.Sin(float64(mode) * math.Pi * (x - dom.A) / L)
		}
	case "gaussian":
		fn = func(x float64) float64 {
			return math.Exp(-utils.POW(((x-dom.A)/L-0.5)/0.1, 2))
		}
	case "step":
		fn = func(x float64) float64 {
			s := (x - dom.A) / L
			if s >= 1./3. && s <= 2./3. {
				return 1
			}
			return 0
		}
	default:
		err = fmt.Errorf("%w: unknown diffusion InitType %q", InputParameters.ErrInvalidParameter, initType)
		return
	}
	return Hat1D.ProjectOnDomain(dom, fn)
}
