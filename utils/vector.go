package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

// NewVector allocates a zero vector of length N, or wraps a copy of dataO[0]
func NewVector(N int, dataO ...[]float64) Vector {
	var (
		data = make([]float64, N)
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0]))
			panic(err)
		}
		copy(data, dataO[0])
	}
	return Vector{mat.NewVecDense(N, data)}
}

func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) Data() []float64     { return v.V.RawVector().Data }

func (v Vector) Copy() Vector { // Does not change receiver
	return NewVector(v.Len(), v.Data())
}

// Chainable (extended) methods, these change the receiver
func (v Vector) Set(val float64) Vector {
	data := v.Data()
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	v.V.ScaleVec(a, v.V)
	return v
}

// AddScaled sets v = v + alpha*a
func (v Vector) AddScaled(alpha float64, a Vector) Vector {
	v.V.AddScaledVec(v.V, alpha, a.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.Data()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() float64 { return floats.Min(v.Data()) }
func (v Vector) Max() float64 { return floats.Max(v.Data()) }

// Equal is true when both vectors hold exactly the same values
func (v Vector) Equal(a Vector) bool {
	return floats.Equal(v.Data(), a.Data())
}
