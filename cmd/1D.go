/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohat/Hat1D"
	"github.com/notargets/gohat/InputParameters"
	"github.com/notargets/gohat/PDE1D"
	"github.com/notargets/gohat/model_problems/Diffusion1D"
	"github.com/notargets/gohat/model_problems/Wave1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Model Problem Solutions",
	Long: `
Time steps the diffusion or wave equation on a hat function space.
Parameters come from the defaults for the model, then the input file, then
any flag, environment variable or config file entry that is set.

gohat 1D -m diffusion -n 81 --bc neumann
gohat 1D -I wave.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters1D
		)
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return
		}
		if ip, err = processInput1D(); err != nil {
			return
		}
		ip.CFL = LimitCFL(cmd.OutOrStdout(), ip)
		return Run1D(ip, cmd.OutOrStdout(), viper.GetString("output"))
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	def := InputParameters.Defaults(InputParameters.M_Diffusion)
	OneDCmd.Flags().StringP("model", "m", def.Model, "model to run: diffusion or wave")
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of input parameters, see InputParameters1D")
	OneDCmd.Flags().IntP("n", "n", def.N, "number of samples")
	OneDCmd.Flags().Float64("CFL", def.CFL, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("finalTime", def.FinalTime, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().Float64("xMin", def.XMin, "left end of the domain")
	OneDCmd.Flags().Float64("xMax", def.XMax, "right end of the domain")
	OneDCmd.Flags().StringP("stepper", "s", def.Stepper, "time integrator: rk2, euler, rk4 or lsrk4")
	OneDCmd.Flags().String("bc", def.BC.Type, "diffusion boundary condition: dirichlet, neumann or none")
	OneDCmd.Flags().Float64("bcA", 0, "boundary value (dirichlet) or slope (neumann) at xMin")
	OneDCmd.Flags().Float64("bcB", 0, "boundary value (dirichlet) or slope (neumann) at xMax")
	OneDCmd.Flags().Bool("fixedEnds", true, "wave: hold the solution fixed at both walls")
	OneDCmd.Flags().String("init", "", "initial condition, diffusion: sine, gaussian, step; wave: standing, pluck")
	OneDCmd.Flags().Int("mode", def.Mode, "mode number of the sine and standing wave initial conditions")
	OneDCmd.Flags().Int("logFrequency", def.LogFrequency, "steps between progress lines, 0 disables them")
	OneDCmd.Flags().StringP("output", "o", "", "CSV file for the final solution samples")
}

// maxCFL is the largest CFL run for each model and stepper. RK2 and Euler grow
// the wave energy every step, so wave runs with them need a small CFL.
var maxCFL = map[InputParameters.ModelType]map[string]float64{
	InputParameters.M_Diffusion: {"rk2": 0.5, "euler": 0.5, "rk4": 0.5, "lsrk4": 0.5},
	InputParameters.M_Wave:      {"rk2": 0.03, "euler": 0.01, "rk4": 1, "lsrk4": 1},
}

func stepperKey(name string) string {
	switch key := strings.ToLower(strings.TrimSpace(name)); key {
	case "", "midpoint":
		return "rk2"
	default:
		return key
	}
}

func LimitCFL(w io.Writer, ip *InputParameters.InputParameters1D) (CFLNew float64) {
	mt, err := ip.ModelType()
	if err != nil {
		return ip.CFL
	}
	CFLMax, ok := maxCFL[mt][stepperKey(ip.Stepper)]
	if ok && ip.CFL > CFLMax {
		fmt.Fprintf(w, "Input CFL is higher than max CFL for the %s stepper\nReplacing with Max CFL: %8.2f\n", stepperKey(ip.Stepper), CFLMax)
		return CFLMax
	}
	return ip.CFL
}

func processInput1D() (ip *InputParameters.InputParameters1D, err error) {
	var (
		mt   InputParameters.ModelType
		data []byte
	)
	if mt, err = InputParameters.NewModelType(viper.GetString("model")); err != nil {
		return
	}
	ip = InputParameters.Defaults(mt)
	if fileName := viper.GetString("inputConditionsFile"); len(fileName) != 0 {
		if data, err = os.ReadFile(fileName); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		// The file may choose a different model, start again from its defaults
		if fileModel, ferr := ip.ModelType(); ferr == nil && fileModel != mt {
			ip = InputParameters.Defaults(fileModel)
			if err = ip.Parse(data); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", fileName, err)
			}
		}
	}
	overrideFromViper(ip)
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

func overrideFromViper(ip *InputParameters.InputParameters1D) {
	if viper.IsSet("n") {
		ip.N = viper.GetInt("n")
	}
	if viper.IsSet("CFL") {
		ip.CFL = viper.GetFloat64("CFL")
	}
	if viper.IsSet("finalTime") {
		ip.FinalTime = viper.GetFloat64("finalTime")
	}
	if viper.IsSet("xMin") {
		ip.XMin = viper.GetFloat64("xMin")
	}
	if viper.IsSet("xMax") {
		ip.XMax = viper.GetFloat64("xMax")
	}
	if viper.IsSet("stepper") {
		ip.Stepper = viper.GetString("stepper")
	}
	if viper.IsSet("bc") {
		ip.BC.Type = viper.GetString("bc")
	}
	if viper.IsSet("bcA") {
		ip.BC.A = viper.GetFloat64("bcA")
	}
	if viper.IsSet("bcB") {
		ip.BC.B = viper.GetFloat64("bcB")
	}
	if viper.IsSet("fixedEnds") {
		ip.FixedEnds = viper.GetBool("fixedEnds")
	}
	if viper.IsSet("init") {
		ip.InitType = viper.GetString("init")
	}
	if viper.IsSet("mode") {
		ip.Mode = viper.GetInt("mode")
	}
	if viper.IsSet("logFrequency") {
		ip.LogFrequency = viper.GetInt("logFrequency")
	}
}

func Run1D(ip *InputParameters.InputParameters1D, out io.Writer, outputFile string) (err error) {
	var (
		mt      InputParameters.ModelType
		columns map[string]Hat1D.Hat
		names   []string
	)
	if mt, err = ip.ModelType(); err != nil {
		return
	}
	ip.Print(out)
	switch mt {
	case InputParameters.M_Wave:
		var (
			c  *Wave1D.Wave
			S0 PDE1D.WaveState
			r  Wave1D.Result
		)
		if c, err = Wave1D.NewWave(ip); err != nil {
			return
		}
		c.Out = out
		if S0, err = c.InitialCondition(); err != nil {
			return
		}
		if r, err = c.Run(S0); err != nil {
			return
		}
		columns = map[string]Hat1D.Hat{"ut": r.S.Ut, "ux": r.S.Ux}
		names = []string{"ut", "ux"}
	case InputParameters.M_Diffusion:
		fallthrough
	default:
		var (
			c  *Diffusion1D.Diffusion
			U0 Hat1D.Hat
			r  Diffusion1D.Result
		)
		if c, err = Diffusion1D.NewDiffusion(ip); err != nil {
			return
		}
		c.Out = out
		if U0, err = c.InitialCondition(); err != nil {
			return
		}
		if r, err = c.Run(U0); err != nil {
			return
		}
		columns = map[string]Hat1D.Hat{"u": r.U}
		names = []string{"u"}
	}
	if len(outputFile) == 0 {
		return
	}
	var f *os.File
	if f, err = os.Create(outputFile); err != nil {
		return
	}
	defer f.Close()
	if err = WriteSamples(f, names, columns); err != nil {
		return
	}
	fmt.Fprintf(out, "Wrote %s\n", outputFile)
	return
}

// WriteSamples writes x and the named functions at every sample point
func WriteSamples(w io.Writer, names []string, columns map[string]Hat1D.Hat) (err error) {
	if len(names) == 0 {
		return
	}
	var (
		cw  = csv.NewWriter(w)
		dom = columns[names[0]].Domain
		g   = func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	)
	if err = cw.Write(append([]string{"x"}, names...)); err != nil {
		return
	}
	X := dom.Points()
	for _, x := range X {
		rec := []string{g(x)}
		for _, name := range names {
			var val float64
			if val, err = columns[name].Eval(x); err != nil {
				return
			}
			rec = append(rec, g(val))
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
