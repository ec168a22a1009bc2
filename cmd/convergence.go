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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gohat/InputParameters"
	"github.com/notargets/gohat/model_problems/Wave1D"
)

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Energy drift of the fixed end wave equation under sample refinement",
	Long: `
Runs the fixed end standing wave over the same physical time at each sample
count, with the time step proportional to the spacing, and reports the energy
drift max(E) - min(E) for each. The drift should fall as the sample count grows.

gohat convergence --ns 10,20,40,80 --finalTime 10 -o drift.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return
		}
		var ns []int
		if ns, err = cmd.Flags().GetIntSlice("ns"); err != nil {
			return
		}
		cfg := Wave1D.StudyConfig{
			XMin:        viper.GetFloat64("xMin"),
			XMax:        viper.GetFloat64("xMax"),
			Ns:          ns,
			CFL:         viper.GetFloat64("CFL"),
			FinalTime:   viper.GetFloat64("finalTime"),
			Mode:        viper.GetInt("mode"),
			StepperName: viper.GetString("stepper"),
		}
		if viper.GetBool("verbose") {
			cfg.Out = cmd.OutOrStdout()
		}
		return RunConvergence(cfg, cmd.OutOrStdout(), viper.GetString("output"))
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().IntSlice("ns", Wave1D.DefaultSampleCounts, "sample counts to run")
	def := InputParameters.Defaults(InputParameters.M_Wave)
	ConvergenceCmd.Flags().Float64("CFL", def.CFL, "time step as a fraction of the sample spacing")
	ConvergenceCmd.Flags().Float64("finalTime", def.FinalTime, "physical time simulated at every sample count")
	ConvergenceCmd.Flags().Float64("xMin", def.XMin, "left end of the domain")
	ConvergenceCmd.Flags().Float64("xMax", def.XMax, "right end of the domain")
	ConvergenceCmd.Flags().Int("mode", def.Mode, "standing wave mode number")
	ConvergenceCmd.Flags().StringP("stepper", "s", def.Stepper, "time integrator: rk2, euler, rk4 or lsrk4")
	ConvergenceCmd.Flags().StringP("output", "o", "", "CSV file for the study results")
	ConvergenceCmd.Flags().BoolP("verbose", "v", false, "print the progress of each run")
}

func RunConvergence(cfg Wave1D.StudyConfig, out io.Writer, outputFile string) (err error) {
	var (
		rows []Wave1D.ConvergenceRow
	)
	if rows, err = Wave1D.ConvergenceStudy(cfg); err != nil {
		return
	}
	fmt.Fprintf(out, "%8s %12s %10s %14s %14s %14s\n", "n", "dt", "nsteps", "E0", "drift", "drift/E0")
	for _, row := range rows {
		fmt.Fprintf(out, "%8d %12.6g %10d %14.8f %14.6g %14.6g\n",
			row.N, row.Dt, row.Nsteps, row.E0, row.Drift, row.RelativeDrift)
	}
	if Wave1D.DriftDecreasing(rows) {
		fmt.Fprintf(out, "Energy drift decreases monotonically with n\n")
	} else {
		fmt.Fprintf(out, "Energy drift does NOT decrease monotonically with n\n")
	}
	if len(outputFile) == 0 {
		return
	}
	var f *os.File
	if f, err = os.Create(outputFile); err != nil {
		return
	}
	defer f.Close()
	if err = Wave1D.WriteCSV(f, rows); err != nil {
		return
	}
	fmt.Fprintf(out, "Wrote %s\n", outputFile)
	return
}
