package Wave1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/ODE"
	"github.com/notargets/gohat/PDE1D"
)

// DefaultSampleCounts doubles from 10 to 1280
var DefaultSampleCounts = []int{10, 20, 40, 80, 160, 320, 640, 1280}

type StudyConfig struct {
	XMin, XMax     float64
	Ns             []int
	CFL, FinalTime float64
	Mode           int
	StepperName    string
	Out            io.Writer
}

type ConvergenceRow struct {
	N              int
	Dt             float64
	Nsteps         int
	E0, EMin, EMax float64
	Drift          float64
	RelativeDrift  float64
}

// ConvergenceStudy runs the fixed end standing wave over the same physical
// time at each sample count, with the time step shrinking in proportion to the
// spacing, and records how much the energy wanders.
func ConvergenceStudy(cfg StudyConfig) (rows []ConvergenceRow, err error) {
	var (
		stepper ODE.Stepper[PDE1D.WaveState]
	)
	if stepper, err = ODE.StepperByName[PDE1D.WaveState](cfg.StepperName); err != nil {
		return
	}
	for _, n := range cfg.Ns {
		var (
			dom Hat1D.Domain
			S0  PDE1D.WaveState
			r   Result
		)
		if dom, err = Hat1D.NewDomain(cfg.XMin, cfg.XMax, n); err != nil {
			return
		}
		if S0, err = StandingWave(dom, cfg.Mode); err != nil {
			return
		}
		c := &Wave{
			Title:       fmt.Sprintf("Convergence n = %d", n),
			CFL:         cfg.CFL,
			FinalTime:   cfg.FinalTime,
			Dom:         dom,
			FixedEnds:   true,
			Stepper:     stepper,
			StepperName: cfg.StepperName,
			Out:         cfg.Out,
		}
		if r, err = c.Run(S0); err != nil {
			return
		}
		row := ConvergenceRow{
			N:      n,
			Dt:     r.Dt,
			Nsteps: r.Nsteps,
			E0:     r.Energy[0],
			EMin:   r.Energy[0],
			EMax:   r.Energy[0],
			Drift:  r.Drift(),
		}
		for _, e := range r.Energy {
			row.EMin = min(row.EMin, e)
			row.EMax = max(row.EMax, e)
		}
		if row.E0 != 0 {
			row.RelativeDrift = row.Drift / row.E0
		}
		rows = append(rows, row)
	}
	return
}

// DriftDecreasing is true when each refinement wanders less than the one before
func DriftDecreasing(rows []ConvergenceRow) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i].Drift >= rows[i-1].Drift {
			return false
		}
	}
	return true
}

var csvHeader = []string{"n", "dt", "nsteps", "e0", "emin", "emax", "drift", "relative_drift"}

func WriteCSV(w io.Writer, rows []ConvergenceRow) (err error) {
	var (
		cw = csv.NewWriter(w)
		g  = func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	)
	if err = cw.Write(csvHeader); err != nil {
		return
	}
	for _, row := range rows {
		rec := []string{
			strconv.Itoa(row.N), g(row.Dt), strconv.Itoa(row.Nsteps),
			g(row.E0), g(row.EMin), g(row.EMax), g(row.Drift), g(row.RelativeDrift),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
