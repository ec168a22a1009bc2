package Wave1D

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/InputParameters"
)

func TestStandingWavePeriod(t *testing.T) {
	// u = sin(pi x) cos(pi t) returns to its initial state at t = 2
	ip := InputParameters.Defaults(InputParameters.M_Wave)
	ip.N = 161
	ip.FinalTime = 2
	c, err := NewWave(ip)
	require.NoError(t, err)
	c.Out = io.Discard
	S0, err := c.InitialCondition()
	require.NoError(t, err)
	r, err := c.Run(S0)
	require.NoError(t, err)
	for i := 0; i < r.S.Ux.N; i++ {
		assert.InDelta(t, S0.Ux.At(i), r.S.Ux.At(i), 0.05)
		assert.InDelta(t, 0., r.S.Ut.At(i), 0.05)
	}
	assert.Equal(t, 0., r.S.Ut.At(0))
	assert.Equal(t, 0., r.S.Ut.At(ip.N-1))
	assert.Equal(t, r.Nsteps+1, len(r.Energy))
	assert.InDelta(t, math.Pi*math.Pi/4, r.Energy[0], 1.e-3)
	assert.Less(t, r.Drift()/r.Energy[0], 1.e-2)
}

func TestConvergenceStudy(t *testing.T) {
	var buf bytes.Buffer
	cfg := StudyConfig{
		XMin:        0,
		XMax:        1,
		Ns:          []int{10, 20, 40, 80},
		CFL:         0.5,
		FinalTime:   2,
		Mode:        1,
		StepperName: "rk2",
		Out:         &buf,
	}
	rows, err := ConvergenceStudy(cfg)
	require.NoError(t, err)
	require.Equal(t, len(cfg.Ns), len(rows))
	for i, row := range rows {
		fmt.Printf("n = %4d, dt = %8.5f, drift = %12.6g, relative = %12.6g\n", row.N, row.Dt, row.Drift, row.RelativeDrift)
		assert.Equal(t, cfg.Ns[i], row.N)
		assert.Greater(t, row.Drift, 0.)
		assert.LessOrEqual(t, row.EMin, row.E0)
		assert.GreaterOrEqual(t, row.EMax, row.E0)
		assert.InDelta(t, row.EMax-row.EMin, row.Drift, 1.e-15)
	}
	assert.True(t, DriftDecreasing(rows))
	// Close to second order
	for i := 1; i < len(rows); i++ {
		order := math.Log2(rows[i-1].Drift / rows[i].Drift)
		assert.Greater(t, order, 1.5)
	}
	assert.Contains(t, buf.String(), "Convergence n = 80")

	_, err = ConvergenceStudy(StudyConfig{XMin: 0, XMax: 1, Ns: []int{10}, CFL: 0.5, FinalTime: 1, StepperName: "bogus"})
	assert.Error(t, err)
	_, err = ConvergenceStudy(StudyConfig{XMin: 0, XMax: 1, Ns: []int{1}, CFL: 0.5, FinalTime: 1})
	assert.True(t, errors.Is(err, Hat1D.ErrInvalidDomain))
}

func TestConvergenceStudyLongTime(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping long time study in short mode")
	}
	// RK2 grows the energy on every step, over t = 100 the default CFL has to
	// keep that below the spatial error for the drift to keep falling
	def := InputParameters.Defaults(InputParameters.M_Wave)
	cfg := StudyConfig{
		XMin:        def.XMin,
		XMax:        def.XMax,
		Ns:          DefaultSampleCounts[:5],
		CFL:         def.CFL,
		FinalTime:   def.FinalTime,
		Mode:        def.Mode,
		StepperName: def.Stepper,
	}
	require.Equal(t, 100., cfg.FinalTime)
	require.Equal(t, "rk2", cfg.StepperName)
	rows, err := ConvergenceStudy(cfg)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, 160, rows[4].N)
	for i, row := range rows {
		fmt.Printf("n = %4d, nsteps = %7d, drift = %12.6g, relative = %12.6g\n", row.N, row.Nsteps, row.Drift, row.RelativeDrift)
		assert.Less(t, row.RelativeDrift, 0.5)
		if i > 0 {
			assert.Greater(t, rows[i-1].Drift/row.Drift, 3.5)
		}
	}
	assert.True(t, DriftDecreasing(rows))
	assert.Less(t, rows[len(rows)-1].RelativeDrift, 1.e-3)
}

func TestDefaultRunBounded(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping long time run in short mode")
	}
	ip := InputParameters.Defaults(InputParameters.M_Wave)
	c, err := NewWave(ip)
	require.NoError(t, err)
	c.Out = io.Discard
	S0, err := c.InitialCondition()
	require.NoError(t, err)
	r, err := c.Run(S0)
	require.NoError(t, err)
	assert.Equal(t, 200000, r.Nsteps)
	assert.InDelta(t, ip.FinalTime, r.Time[len(r.Time)-1], 1.e-6)
	assert.True(t, r.S.IsFinite())
	assert.Less(t, r.Drift()/r.Energy[0], 2.e-2)
}

func TestDriftDecreasing(t *testing.T) {
	assert.True(t, DriftDecreasing(nil))
	assert.True(t, DriftDecreasing([]ConvergenceRow{{Drift: 1}, {Drift: 0.5}}))
	assert.False(t, DriftDecreasing([]ConvergenceRow{{Drift: 1}, {Drift: 0.5}, {Drift: 0.5}}))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []ConvergenceRow{
		{N: 10, Dt: 0.05, Nsteps: 40, E0: 2, EMin: 2, EMax: 2.5, Drift: 0.5, RelativeDrift: 0.25},
		{N: 20, Dt: 0.025, Nsteps: 80, E0: 2, EMin: 2, EMax: 2.125, Drift: 0.125, RelativeDrift: 0.0625},
	}
	require.NoError(t, WriteCSV(&buf, rows))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, 3, len(records))
	assert.Equal(t, []string{"n", "dt", "nsteps", "e0", "emin", "emax", "drift", "relative_drift"}, records[0])
	assert.Equal(t, []string{"20", "0.025", "80", "2", "2", "2.125", "0.125", "0.0625"}, records[2])
}

func TestWaveInitialConditions(t *testing.T) {
	dom, err := Hat1D.NewDomain(0, 2, 21)
	require.NoError(t, err)
	S, err := InitialCondition(dom, "", 2)
	require.NoError(t, err)
	assert.Equal(t, 0., S.Ut.C.Max())
	assert.InDelta(t, math.Pi, S.Ux.At(0), 1.e-12)

	S, err = InitialCondition(dom, "pluck", 0)
	require.NoError(t, err)
	// The slope of a centered bump is odd about the center and integrates to zero
	assert.InDelta(t, 0., S.Ux.At(10), 1.e-12)
	assert.InDelta(t, -S.Ux.At(5), S.Ux.At(15), 1.e-12)
	assert.InDelta(t, 0., S.Ux.Quad(), 1.e-6)

	_, err = InitialCondition(dom, "sawtooth", 1)
	assert.True(t, errors.Is(err, InputParameters.ErrInvalidParameter))
}

func TestWaveErrors(t *testing.T) {
	ip := InputParameters.Defaults(InputParameters.M_Wave)
	ip.CFL = 0
	_, err := NewWave(ip)
	assert.True(t, errors.Is(err, InputParameters.ErrInvalidParameter))

	ip = InputParameters.Defaults(InputParameters.M_Wave)
	c, err := NewWave(ip)
	require.NoError(t, err)
	other, err := Hat1D.NewDomain(0, 1, ip.N+2)
	require.NoError(t, err)
	S, err := StandingWave(other, 1)
	require.NoError(t, err)
	_, err = c.Run(S)
	assert.True(t, errors.Is(err, Hat1D.ErrDomainMismatch))
}
