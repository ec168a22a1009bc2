package Wave1D

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/InputParameters"
	"github.com/notargets/gohat/ODE"
	"github.com/notargets/gohat/PDE1D"
)

var ErrUnstable = errors.New("solution is no longer finite")

type Wave struct {
	// Input parameters
	Title          string
	CFL, FinalTime float64
	Dom            Hat1D.Domain
	FixedEnds      bool
	Stepper        ODE.Stepper[PDE1D.WaveState]
	StepperName    string
	InitType       string
	Mode           int
	LogFrequency   int
	Out            io.Writer
}

type Result struct {
	S      PDE1D.WaveState
	Nsteps int
	Dt     float64
	Time   []float64
	Energy []float64
}

// Drift is the spread of the energy over the run, zero for an exact solution
func (r Result) Drift() float64 {
	return floats.Max(r.Energy) - floats.Min(r.Energy)
}

func NewWave(ip *InputParameters.InputParameters1D) (c *Wave, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Wave{
		Title:        ip.Title,
		CFL:          ip.CFL,
		FinalTime:    ip.FinalTime,
		FixedEnds:    ip.FixedEnds,
		StepperName:  ip.Stepper,
		InitType:     ip.InitType,
		Mode:         ip.Mode,
		LogFrequency: ip.LogFrequency,
		Out:          os.Stdout,
	}
	if c.Dom, err = Hat1D.NewDomain(ip.XMin, ip.XMax, ip.N); err != nil {
		return nil, err
	}
	if c.Stepper, err = ODE.StepperByName[PDE1D.WaveState](ip.Stepper); err != nil {
		return nil, err
	}
	return
}

// TimeStep is CFL * h, the unit wave speed crosses CFL samples per step
func (c *Wave) TimeStep() float64 {
	return c.CFL * c.Dom.H()
}

func (c *Wave) InitialCondition() (PDE1D.WaveState, error) {
	return InitialCondition(c.Dom, c.InitType, c.Mode)
}

func (c *Wave) Run(S0 PDE1D.WaveState) (r Result, err error) {
	if err = Hat1D.CheckDomain(S0.Ut, Hat1D.Hat{Domain: c.Dom}); err != nil {
		return
	}
	if err = Hat1D.CheckDomain(S0.Ut, S0.Ux); err != nil {
		return
	}
	var (
		out          = c.Out
		logFrequency = c.LogFrequency
		S            = S0
		Time         float64
		step         = PDE1D.Wave
	)
	if out == nil {
		out = io.Discard
	}
	if c.FixedEnds {
		step = PDE1D.WaveD0
	}
	dt := c.TimeStep()
	Nsteps := int(math.Ceil(c.FinalTime / dt))
	dt = c.FinalTime / float64(Nsteps)
	fmt.Fprintf(out, "%s: %v, FixedEnds = %v, Stepper = %s\n", c.Title, c.Dom, c.FixedEnds, c.StepperName)
	fmt.Fprintf(out, "FinalTime = %8.4f, Nsteps = %d, dt = %8.6g\n", c.FinalTime, Nsteps, dt)

	r = Result{
		Nsteps: Nsteps,
		Dt:     dt,
		Time:   make([]float64, 0, Nsteps+1),
		Energy: make([]float64, 0, Nsteps+1),
	}
	r.Time = append(r.Time, 0)
	r.Energy = append(r.Energy, PDE1D.Energy(S))
	for tstep := 0; tstep < Nsteps; tstep++ {
		S = step(c.Stepper, S, dt)
		Time += dt
		if !S.IsFinite() {
			err = fmt.Errorf("%w: step %d, time %v, reduce the CFL", ErrUnstable, tstep, Time)
			return
		}
		energy := PDE1D.Energy(S)
		r.Time = append(r.Time, Time)
		r.Energy = append(r.Energy, energy)
		if logFrequency > 0 && tstep%logFrequency == 0 {
			fmt.Fprintf(out, "Time = %8.4f, step = %d, energy = %12.8f\n", Time, tstep, energy)
		}
	}
	r.S = S
	fmt.Fprintf(out, "Final: Time = %8.4f, energy = %12.8f, drift = %8.4g\n", Time, r.Energy[len(r.Energy)-1], r.Drift())
	return
}
