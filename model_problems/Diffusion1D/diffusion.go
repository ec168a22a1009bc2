package Diffusion1D

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/InputParameters"
	"github.com/notargets/gohat/ODE"
	"github.com/notargets/gohat/PDE1D"
)

var ErrUnstable = errors.New("solution is no longer finite")

type Diffusion struct {
	// Input parameters
	Title          string
	CFL, FinalTime float64
	Dom            Hat1D.Domain
	BC             PDE1D.BoundaryCondition
	Stepper        ODE.Stepper[Hat1D.Hat]
	StepperName    string
	InitType       string
	Mode           int
	LogFrequency   int
	Out            io.Writer
}

type Result struct {
	U      Hat1D.Hat
	Nsteps int
	Dt     float64
	Time   []float64
	Heat   []float64
}

func NewDiffusion(ip *InputParameters.InputParameters1D) (c *Diffusion, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Diffusion{
		Title:        ip.Title,
		CFL:          ip.CFL,
		FinalTime:    ip.FinalTime,
		StepperName:  ip.Stepper,
		InitType:     ip.InitType,
		Mode:         ip.Mode,
		LogFrequency: ip.LogFrequency,
		Out:          os.Stdout,
	}
	if c.Dom, err = Hat1D.NewDomain(ip.XMin, ip.XMax, ip.N); err != nil {
		return nil, err
	}
	bcType, _ := ip.BCType()
	if c.BC, err = PDE1D.NewBoundaryCondition(bcType, ip.BC.A, ip.BC.B); err != nil {
		return nil, err
	}
	if c.Stepper, err = ODE.StepperByName[Hat1D.Hat](ip.Stepper); err != nil {
		return nil, err
	}
	return
}

// TimeStep is the explicit stability limited step, CFL * h^2. Explicit
// midpoint stepping of the second difference is stable up to CFL = 0.5.
func (c *Diffusion) TimeStep() float64 {
	h := c.Dom.H()
	return c.CFL * h * h
}

func (c *Diffusion) InitialCondition() (Hat1D.Hat, error) {
	return InitialCondition(c.Dom, c.InitType, c.Mode)
}

func (c *Diffusion) Run(U0 Hat1D.Hat) (r Result, err error) {
	if err = Hat1D.CheckDomain(U0, Hat1D.Hat{Domain: c.Dom}); err != nil {
		return
	}
	var (
		out          = c.Out
		logFrequency = c.LogFrequency
		U            = U0
		Time         float64
	)
	if out == nil {
		out = io.Discard
	}
	dt := c.TimeStep()
	Nsteps := int(math.Ceil(c.FinalTime / dt))
	dt = c.FinalTime / float64(Nsteps)
	fmt.Fprintf(out, "%s: %v, BC = %v, Stepper = %s\n", c.Title, c.Dom, c.BC.Type(), c.StepperName)
	fmt.Fprintf(out, "FinalTime = %8.4f, Nsteps = %d, dt = %8.6g\n", c.FinalTime, Nsteps, dt)

	r = Result{
		Nsteps: Nsteps,
		Dt:     dt,
		Time:   make([]float64, 0, Nsteps+1),
		Heat:   make([]float64, 0, Nsteps+1),
	}
	r.Time = append(r.Time, 0)
	r.Heat = append(r.Heat, PDE1D.Heat(U))
	for tstep := 0; tstep < Nsteps; tstep++ {
		U = PDE1D.Diffusion(c.Stepper, c.BC, U, dt)
		Time += dt
		if !U.IsFinite() {
			err = fmt.Errorf("%w: step %d, time %v, reduce the CFL", ErrUnstable, tstep, Time)
			return
		}
		heat := PDE1D.Heat(U)
		r.Time = append(r.Time, Time)
		r.Heat = append(r.Heat, heat)
		if logFrequency > 0 && tstep%logFrequency == 0 {
			fmt.Fprintf(out, "Time = %8.4f, step = %d, heat = %12.8f, umin = %8.4f, umax = %8.4f\n",
				Time, tstep, heat, U.C.Min(), U.C.Max())
		}
	}
	r.U = U
	fmt.Fprintf(out, "Final: Time = %8.4f, heat = %12.8f\n", Time, r.Heat[len(r.Heat)-1])
	return
}
