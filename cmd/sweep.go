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
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/notargets/gospecial/utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"
)

// SweepCmd compares the Carlson based evaluations against gonum on a grid
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Measure relative error against gonum mathext over a grid",
	Long: `
Evaluates RF and RD on a cube of arguments, K and E on a range of parameters
and F and E(phi) on a phi x m grid, using all cores, and reports the mean,
standard deviation and maximum of the relative difference to gonum mathext.

gospecial sweep --args 0.01:20:24 --m 0:0.999:200 --profile`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			argRange, mRange string
			workers          int
		)
		logger := newLogger()
		defer func() { _ = logger.Sync() }()
		if doProfile, _ := cmd.Flags().GetBool("profile"); doProfile {
			dir, _ := cmd.Flags().GetString("profilePath")
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
		}
		argRange, _ = cmd.Flags().GetString("args")
		mRange, _ = cmd.Flags().GetString("m")
		workers = viper.GetInt("workers")
		if workers < 1 {
			workers = runtime.NumCPU()
		}
		cases, err := sweepCases(argRange, mRange)
		if err != nil {
			return
		}
		rows := make([][]string, len(cases))
		for i, c := range cases {
			start := time.Now()
			res := runSweep(c, workers)
			logger.Info("sweep finished",
				zap.String("function", c.name),
				zap.Int("points", res.points),
				zap.Int("pointsPerWorker", res.bucket),
				zap.Int("failures", res.failures),
				zap.Float64("maxRelErr", res.max),
				zap.Duration("elapsed", time.Since(start)))
			rows[i] = res.row()
		}
		mem := utils.GetMemUsage()
		logger.Debug("memory", zap.Stringer("usage", mem))
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			fmt.Sprintf("relative error vs gonum mathext, %d workers", workers),
			[]string{"Function", "Points", "Failures", "Mean", "StdDev", "Max", "Worst"}, rows))
		return
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().String("args", "0.01:20:16", "start:end:count grid for each Carlson argument")
	SweepCmd.Flags().String("m", "0:0.999:100", "start:end:count grid for the parameter m")
	SweepCmd.Flags().IntP("workers", "w", 0, "number of goroutines, 0 uses every core")
	SweepCmd.Flags().Bool("profile", false, "write a CPU profile")
	SweepCmd.Flags().String("profilePath", ".", "directory for the CPU profile")
	_ = viper.BindPFlag("workers", SweepCmd.Flags().Lookup("workers"))
}

type sweepCase struct {
	name      string
	points    [][]float64
	ours      realFunction
	reference func(a []float64) float64
}

type sweepResult struct {
	name              string
	points, failures  int
	bucket            int // size of the largest partition
	mean, stdDev, max float64
	worst             []float64
}

func (sr sweepResult) row() []string {
	worst := make([]string, len(sr.worst))
	for i, w := range sr.worst {
		worst[i] = fmt.Sprintf("%.6g", w)
	}
	return []string{
		sr.name,
		fmt.Sprint(sr.points),
		fmt.Sprint(sr.failures),
		fmt.Sprintf("%.3e", sr.mean),
		fmt.Sprintf("%.3e", sr.stdDev),
		fmt.Sprintf("%.3e", sr.max),
		strings.Join(worst, ", "),
	}
}

func sweepCases(argRange, mRange string) (cases []sweepCase, err error) {
	var (
		start, end float64
		n          int
	)
	if start, end, n, err = utils.ParseRange(argRange); err != nil {
		return
	}
	grid := utils.Linspace(start, end, n)
	if start, end, n, err = utils.ParseRange(mRange); err != nil {
		return
	}
	mGrid := utils.Linspace(start, end, n)
	phiGrid := utils.Linspace(0, math.Pi/2, n)

	cube := make([][]float64, 0, len(grid)*len(grid)*len(grid))
	for _, x := range grid {
		for _, y := range grid {
			for _, z := range grid {
				cube = append(cube, []float64{x, y, z})
			}
		}
	}
	line := make([][]float64, len(mGrid))
	for i, m := range mGrid {
		line[i] = []float64{m}
	}
	plane := make([][]float64, 0, len(phiGrid)*len(mGrid))
	for _, phi := range phiGrid {
		for _, m := range mGrid {
			plane = append(plane, []float64{phi, m})
		}
	}
	cases = []sweepCase{
		{"RF", cube, realFunctions["RF"], func(a []float64) float64 { return mathext.EllipticRF(a[0], a[1], a[2]) }},
		{"RD", cube, realFunctions["RD"], func(a []float64) float64 { return mathext.EllipticRD(a[0], a[1], a[2]) }},
		{"K", line, realFunctions["K"], func(a []float64) float64 { return mathext.CompleteK(a[0]) }},
		{"E", line, realFunctions["E"], func(a []float64) float64 { return mathext.CompleteE(a[0]) }},
		{"F", plane, realFunctions["F"], func(a []float64) float64 { return mathext.EllipticF(a[0], a[1]) }},
		{"EPHI", plane, realFunctions["EPHI"], func(a []float64) float64 { return mathext.EllipticE(a[0], a[1]) }},
	}
	return
}

// runSweep evaluates every point of c on its own bucket of a partition map.
// Points where either side fails or the reference is NaN count as failures.
func runSweep(c sweepCase, workers int) (sr sweepResult) {
	var (
		np       = len(c.points)
		relErr   = make([]float64, np)
		pm       = utils.NewPartitionMap(workers, np)
		failures = make([]int, pm.ParallelDegree)
	)
	pm.ParallelFor(func(bn, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			relErr[k] = math.NaN()
			value, err := c.ours(c.points[k])
			ref := c.reference(c.points[k])
			if err != nil || math.IsNaN(ref) || math.IsInf(ref, 0) {
				failures[bn]++
				continue
			}
			relErr[k] = math.Abs(value-ref) / math.Max(math.Abs(ref), math.SmallestNonzeroFloat64)
		}
	})
	// the first bucket takes the remainder
	sr = sweepResult{name: c.name, points: np, bucket: pm.GetBucketDimension(0)}
	for _, f := range failures {
		sr.failures += f
	}
	finite := make([]float64, 0, np)
	worst := -1
	for k, e := range relErr {
		if math.IsNaN(e) {
			continue
		}
		finite = append(finite, e)
		if worst == -1 || e > relErr[worst] {
			worst = k
		}
	}
	if len(finite) == 0 {
		return
	}
	sr.mean, sr.stdDev = stat.MeanStdDev(finite, nil)
	sr.max = floats.Max(finite)
	sr.worst = c.points[worst]
	return
}
