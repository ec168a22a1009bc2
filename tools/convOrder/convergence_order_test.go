package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gohat/model_problems/Wave1D"
)

func TestOrders(t *testing.T) {
	cs := &ConvergenceStudy{}
	cs.Add(10, 0.05, 1)
	cs.Add(20, 0.025, 0.25)
	cs.Add(40, 0.0125, 0.125)
	orders := cs.Orders()
	require.Equal(t, 2, len(orders))
	assert.InDelta(t, 2., orders[0], 1.e-12)
	assert.InDelta(t, 1., orders[1], 1.e-12)
}

func TestReadCSV(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "drift.csv")
	f, err := os.Create(fileName)
	require.NoError(t, err)
	rows := []Wave1D.ConvergenceRow{
		{N: 10, Dt: 0.05, Nsteps: 40, E0: 2, Drift: 0.4},
		{N: 20, Dt: 0.025, Nsteps: 80, E0: 2, Drift: 0.1},
	}
	require.NoError(t, Wave1D.WriteCSV(f, rows))
	require.NoError(t, f.Close())

	cs, err := readCSV(fileName)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, cs.numPTS)
	assert.Equal(t, []float64{0.05, 0.025}, cs.dt)
	assert.Equal(t, []float64{0.4, 0.1}, cs.drift)
	assert.InDelta(t, 2., cs.Orders()[0], 1.e-12)

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("n,dt\n10,abc\n"), 0644))
	_, err = readCSV(bad)
	assert.Error(t, err)
	_, err = readCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
