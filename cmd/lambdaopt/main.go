// Command lambdaopt prints either the closed-form lambda_max upper bound
// or the steepest-descent lambda_opt estimate for a vector read from a
// Matrix-Market file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tvseg/cmd/internal/rootcmd"
	"github.com/katalvlaran/tvseg/lambdaselect"
	"github.com/katalvlaran/tvseg/mmio"
)

type flags struct {
	input     string
	lambdaMax bool
	debug     bool
}

func main() {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "lambdaopt",
		Short: "Print the TV1D lambda_max bound or the lambda_opt estimate for a vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootcmd.ConfigureLogging(f.debug)

			return run(f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "path to the input Matrix-Market vector")
	cmd.Flags().BoolVar(&f.lambdaMax, "lambdamax", false, "print lambda_max instead of lambda_opt")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("input")

	rootcmd.Execute(cmd)
}

func run(f *flags) error {
	x, err := mmio.LoadVectorFile(f.input)
	if err != nil {
		return rootcmd.WrapUsage(err, "loading input vector")
	}

	lambdaMax := lambdaselect.LambdaMax(x)
	if f.lambdaMax {
		fmt.Println(lambdaMax)

		return nil
	}

	opt := lambdaselect.LambdaOpt(x, lambdaMax, lambdaselect.DefaultOptions())
	fmt.Println(opt)

	return nil
}
