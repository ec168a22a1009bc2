package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// DOK is the assembly form of a sparse operator
type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int, name ...string) (R DOK) {
	R = DOK{
		M:    sparse.NewDOK(nr, nc),
		name: "unnamed",
	}
	if len(name) != 0 {
		R.name = name[0]
	}
	return
}

func (m DOK) Set(i, j int, val float64) DOK {
	m.M.Set(i, j, val)
	return m
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

// CSR is the application form of a sparse operator, it is read only
type CSR struct {
	M    *sparse.CSR
	name string
}

func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) Name() string        { return m.name }

// MulVec returns a new vector holding m*x
func (m CSR) MulVec(x Vector) (R Vector) {
	var (
		nr, nc = m.Dims()
		raw    = m.M.RawMatrix()
		xD     = x.Data()
	)
	if nc != len(xD) {
		err := fmt.Errorf("dimension mismatch applying operator %q: %d columns, vector length %d", m.name, nc, len(xD))
		panic(err)
	}
	R = NewVector(nr)
	if len(raw.Indptr) == 0 {
		// No stored entries
		return
	}
	rD := R.Data()
	for i := 0; i < nr; i++ {
		var sum float64
		for k := raw.Indptr[i]; k < raw.Indptr[i+1]; k++ {
			sum += raw.Data[k] * xD[raw.Ind[k]]
		}
		rD[i] = sum
	}
	return
}
