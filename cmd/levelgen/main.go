// Command levelgen produces a vector of candidate levels spanning the
// range of an input vector, either spaced by a fixed distance or split
// into a fixed number of levels.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tvseg/cmd/internal/rootcmd"
	"github.com/katalvlaran/tvseg/mmio"
)

type flags struct {
	input         string
	output        string
	levelDistance float64
	levelNumber   int
	debug         bool
}

func main() {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "levelgen",
		Short: "Generate a level vector spanning an input vector's range",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootcmd.ConfigureLogging(f.debug)

			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "path to the input Matrix-Market vector")
	cmd.Flags().StringVar(&f.output, "output", "", "path to write the level Matrix-Market vector")
	cmd.Flags().Float64Var(&f.levelDistance, "level-distance", 0, "spacing between consecutive levels")
	cmd.Flags().IntVar(&f.levelNumber, "level-number", 0, "total number of levels")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	rootcmd.Execute(cmd)
}

func run(cmd *cobra.Command, f *flags) error {
	distanceSet := cmd.Flags().Changed("level-distance")
	numberSet := cmd.Flags().Changed("level-number")
	if distanceSet == numberSet {
		return rootcmd.WrapUsage(fmt.Errorf("exactly one of --level-distance or --level-number is required"), "parsing flags")
	}

	x, err := mmio.LoadVectorFile(f.input)
	if err != nil {
		return rootcmd.WrapUsage(err, "loading input vector")
	}
	if len(x) == 0 {
		return rootcmd.WrapUsage(fmt.Errorf("input vector is empty"), "loading input vector")
	}

	min, max := x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var levels []float64
	if distanceSet {
		levels = levelsByDistance(min, max, f.levelDistance)
	} else {
		levels = levelsByCount(min, max, f.levelNumber)
	}

	if err := mmio.SaveVectorFile(f.output, levels); err != nil {
		return rootcmd.WrapUsage(err, "writing level vector")
	}

	return nil
}

func levelsByDistance(min, max, distance float64) []float64 {
	if distance <= 0 {
		return []float64{min}
	}

	var levels []float64
	for v := min; v < max; v += distance {
		levels = append(levels, v)
	}

	return append(levels, max)
}

func levelsByCount(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}

	levels := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := 0; i < n; i++ {
		levels[i] = min + float64(i)*step
	}

	return levels
}
