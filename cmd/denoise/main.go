// Command denoise applies TV1D total-variation denoising to a vector
// read from a Matrix-Market file.
package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tvseg/cmd/internal/rootcmd"
	"github.com/katalvlaran/tvseg/mmio"
	"github.com/katalvlaran/tvseg/tv1d"
)

type flags struct {
	input  string
	output string
	lambda float64
	debug  bool
}

func main() {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "denoise",
		Short: "Denoise a vector with TV1D (Condat) total-variation denoising",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootcmd.ConfigureLogging(f.debug)

			return run(f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "path to the input Matrix-Market vector")
	cmd.Flags().StringVar(&f.output, "output", "", "path to write the denoised Matrix-Market vector")
	cmd.Flags().Float64Var(&f.lambda, "lambda", 0, "total-variation penalty weight")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	rootcmd.Execute(cmd)
}

func run(f *flags) error {
	x, err := mmio.LoadVectorFile(f.input)
	if err != nil {
		return rootcmd.WrapUsage(err, "loading input vector")
	}

	log.WithField("n", len(x)).WithField("lambda", f.lambda).Debug("denoising")
	y := tv1d.Denoise(x, f.lambda)

	if err := mmio.SaveVectorFile(f.output, y); err != nil {
		return rootcmd.WrapUsage(err, "writing output vector")
	}

	return nil
}
