package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	for p := -6; p <= 12; p++ {
		assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1.e-12*math.Pow(1.3, math.Abs(float64(p))))
	}
	assert.Equal(t, 1., POW(7, 0))
	assert.Equal(t, 0.25, POW(2, -2))
}

func TestIterate(t *testing.T) {
	inc := func(i int) int { return i + 1 }
	assert.Equal(t, 10, Iterate(inc, 0, 10))
	assert.Equal(t, 5, Iterate(inc, 5, 0))
	assert.Equal(t, 5, Iterate(inc, 5, -3))
	half := func(x float64) float64 { return 0.5 * x }
	assert.Equal(t, 1./1024, Iterate(half, 1., 10))
}

func TestRepeatFastPow(t *testing.T) {
	// String concatenation is associative but not commutative, a good check on
	// the order in which FastPow combines its partial products
	cat := func(a, b string) string { return a + b }
	add := func(a, b int) int { return a + b }
	for n := 1; n <= 40; n++ {
		assert.Equal(t, Repeat(cat, "ab", n), FastPow(cat, "ab", n))
		assert.Equal(t, strings.Repeat("ab", n), FastPow(cat, "ab", n))
		assert.Equal(t, 3*n, FastPow(add, 3, n))
		assert.Equal(t, Repeat(add, 3, n), FastPow(add, 3, n))
	}
	assert.Panics(t, func() { Repeat(cat, "a", 0) })
	assert.Panics(t, func() { FastPow(add, 1, -1) })
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(nil))
	assert.True(t, IsFinite([]float64{2, 2, 2, 2}))
	assert.False(t, IsFinite([]float64{1, math.NaN()}))
	assert.False(t, IsFinite([]float64{math.Inf(-1), 1}))
}

func TestInterval(t *testing.T) {
	// End points map exactly
	assert.Equal(t, 0., Remap(-1.7, -1.7, 3.1, 0, 40))
	assert.Equal(t, 40., Remap(3.1, -1.7, 3.1, 0, 40))
	assert.InDelta(t, 20., Remap(0.7, -1.7, 3.1, 0, 40), 1.e-12)
	assert.Equal(t, 0.5, Remap(1, 0, 2, 0, 1))

	assert.Equal(t, 0., Clamp(-1, 0, 1))
	assert.Equal(t, 1., Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 3, ClampInt(7, 0, 3))
	assert.Equal(t, 0, ClampInt(-2, 0, 3))
	assert.Equal(t, 2, ClampInt(2, 0, 3))
}

func TestBCNames(t *testing.T) {
	for name, want := range map[string]BCType{
		"Dirichlet": BCDirichlet,
		" neumann ": BCNeumann,
		"INSULATED": BCNeumann,
		"none":      BCNone,
		"fixed":     BCDirichlet,
		"periodic":  BCPeriodic,
	} {
		bc, err := ParseBCName(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, bc, name)
	}
	_, err := ParseBCName("robin")
	assert.Error(t, err)
	assert.Equal(t, "Neumann", BCNeumann.String())
	assert.Equal(t, "Unknown", BCType(99).String())
}
