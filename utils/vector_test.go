package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.Data()[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.Data()[N-1])
	assert.Equal(t, N, v1.Len())

	// Construction copies the caller's data
	{
		data := []float64{1, 2, 3}
		v := NewVector(3, data)
		data[0] = 100
		assert.Equal(t, 1., v.AtVec(0))
		assert.Panics(t, func() { NewVector(2, data) })
	}
	// Copy does not alias, the chainable methods change the receiver
	{
		v := NewVector(3, []float64{1, 2, 3})
		vc := v.Copy()
		vc.Scale(2)
		assert.Equal(t, []float64{1, 2, 3}, v.Data())
		assert.Equal(t, []float64{2, 4, 6}, vc.Data())
		vc.AddScaled(-1, v)
		assert.Equal(t, []float64{1, 2, 3}, vc.Data())
		assert.True(t, vc.Equal(v))
		vc.Apply(func(x float64) float64 { return x * x })
		assert.Equal(t, []float64{1, 4, 9}, vc.Data())
		assert.False(t, vc.Equal(v))
		assert.Equal(t, 1., vc.Min())
		assert.Equal(t, 9., vc.Max())
	}
}

func TestSparse(t *testing.T) {
	// [2 -1 0; -1 2 -1; 0 -1 2]
	N := 3
	dok := NewDOK(N, N, "laplacian")
	for i := 0; i < N; i++ {
		dok.Set(i, i, 2)
		if i > 0 {
			dok.Set(i, i-1, -1)
		}
		if i < N-1 {
			dok.Set(i, i+1, -1)
		}
	}
	A := dok.ToCSR()
	assert.Equal(t, -1., A.At(1, 0))
	assert.Equal(t, "laplacian", A.Name())
	nr, nc := A.Dims()
	assert.Equal(t, N, nr)
	assert.Equal(t, N, nc)
	assert.Equal(t, 2., A.At(2, 2))
	assert.Equal(t, 0., A.At(0, 2))

	x := NewVector(N, []float64{1, 2, 3})
	y := A.MulVec(x)
	assert.InDeltaSlice(t, []float64{0, 0, 4}, y.Data(), 1.e-14)
	// The input is untouched
	assert.Equal(t, []float64{1, 2, 3}, x.Data())

	assert.Panics(t, func() { A.MulVec(NewVector(N + 1)) })

	// No stored entries
	empty := NewDOK(2, 2).ToCSR()
	assert.Equal(t, "unnamed", empty.Name())
	assert.Equal(t, []float64{0, 0}, empty.MulVec(NewVector(2, []float64{1, 1})).Data())
}
