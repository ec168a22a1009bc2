package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
)

var (
	csvFile string
)

// Reads the CSV written by "gohat convergence -o" and prints the observed order
// of the energy drift between successive sample counts.
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	cs, err := readCSV(csvFile)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	orders := cs.Orders()
	fmt.Printf("%8s %14s %10s\n", "n", "drift", "order")
	for i := range cs.numPTS {
		if i == 0 {
			fmt.Printf("%8d %14.6g %10s\n", cs.numPTS[i], cs.drift[i], "-")
			continue
		}
		fmt.Printf("%8d %14.6g %10.3f\n", cs.numPTS[i], cs.drift[i], orders[i-1])
	}
}

type ConvergenceStudy struct {
	numPTS []int
	dt     []float64
	drift  []float64
}

func (cs *ConvergenceStudy) Add(numPTS int, dt, drift float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.dt = append(cs.dt, dt)
	cs.drift = append(cs.drift, drift)
}

// Orders returns log(drift[i-1]/drift[i]) / log(n[i]/n[i-1]) for each refinement
func (cs *ConvergenceStudy) Orders() (orders []float64) {
	for i := 1; i < len(cs.numPTS); i++ {
		ratio := cs.drift[i-1] / cs.drift[i]
		refine := float64(cs.numPTS[i]) / float64(cs.numPTS[i-1])
		orders = append(orders, math.Log(ratio)/math.Log(refine))
	}
	return
}

func readCSV(csvFile string) (cs *ConvergenceStudy, err error) {
	var (
		records [][]string
		f       *os.File
	)
	if f, err = os.Open(csvFile); err != nil {
		return
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		return
	}
	cs = &ConvergenceStudy{}
	for i, rec := range records {
		if i == 0 {
			continue // header: n,dt,nsteps,e0,emin,emax,drift,relative_drift
		}
		if len(rec) < 7 {
			return nil, fmt.Errorf("line %d: have %d fields, need 7", i+1, len(rec))
		}
		var (
			npts      int
			dt, drift float64
		)
		if npts, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if dt, err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if drift, err = strconv.ParseFloat(rec[6], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cs.Add(npts, dt, drift)
	}
	return
}
