package Hat1D

import (
	"fmt"
	"math"

	"github.com/notargets/gohat/utils"
)

// Domain is the uniform sampling of [A, B] with N points. It is compared with
// ==, two functions are compatible only when their domains are identical.
type Domain struct {
	A, B float64
	N    int
}

func NewDomain(a, b float64, n int) (d Domain, err error) {
	d = Domain{A: a, B: b, N: n}
	if err = d.validate(); err != nil {
		d = Domain{}
	}
	return
}

func (d Domain) validate() error {
	if !(d.A < d.B) || math.IsInf(d.A, 0) || math.IsInf(d.B, 0) {
		return fmt.Errorf("%w: need finite a < b, have a = %v, b = %v", ErrInvalidDomain, d.A, d.B)
	}
	if d.N < 2 {
		return fmt.Errorf("%w: need at least 2 samples, have %d", ErrInvalidDomain, d.N)
	}
	return nil
}

// H is the sample spacing
func (d Domain) H() float64 { return (d.B - d.A) / float64(d.N-1) }

// X returns sample point i. The end points are returned exactly.
func (d Domain) X(i int) float64 {
	switch i {
	case 0:
		return d.A
	case d.N - 1:
		return d.B
	}
	return d.A + float64(i)*d.H()
}

func (d Domain) Points() (X []float64) {
	X = make([]float64, d.N)
	for i := range X {
		X[i] = d.X(i)
	}
	return
}

// Index maps x onto continuous sample index coordinates, A -> 0 and B -> N-1
func (d Domain) Index(x float64) float64 {
	return utils.Remap(x, d.A, d.B, 0, float64(d.N-1))
}

func (d Domain) Contains(x float64) bool { return x >= d.A && x <= d.B }

// locate finds the bin [k, k+1] holding x and the fractional position t
// within it. Coordinates within NODETOL of a sample snap to it with t = 0.
func (d Domain) locate(x float64) (k int, t float64) {
	var (
		nMax = float64(d.N - 1)
		idx  = utils.Clamp(d.Index(x), 0, nMax)
		r    = math.Round(idx)
	)
	if math.Abs(idx-r) <= utils.NODETOL*nMax {
		return int(r), 0
	}
	k = utils.ClampInt(int(math.Floor(idx)), 0, d.N-2)
	t = utils.Clamp(idx-float64(k), 0, 1)
	return
}

// Basis evaluates the hat basis function of sample i at x, it is 1 at X(i)
// and falls linearly to 0 at the neighboring samples.
func (d Domain) Basis(i int, x float64) (val float64, err error) {
	if i < 0 || i >= d.N {
		err = fmt.Errorf("%w: basis index %d not in [0, %d)", ErrOutOfDomain, i, d.N)
		return
	}
	if !d.Contains(x) {
		err = fmt.Errorf("%w: x = %v is outside [%v, %v]", ErrOutOfDomain, x, d.A, d.B)
		return
	}
	k, t := d.locate(x)
	switch i {
	case k:
		val = 1 - t
	case k + 1:
		val = t
	}
	return
}

func (d Domain) String() string {
	return fmt.Sprintf("[%v, %v] n = %d", d.A, d.B, d.N)
}
