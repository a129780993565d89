// Command graphproc clusters a denoised vector onto a fixed set of
// levels via alpha-expansion move-making over the Kolmogorov-Zabih
// energy graph.
package main

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tvseg/chainseg"
	"github.com/katalvlaran/tvseg/cmd/internal/rootcmd"
	"github.com/katalvlaran/tvseg/core"
	"github.com/katalvlaran/tvseg/energy"
	"github.com/katalvlaran/tvseg/flow"
	"github.com/katalvlaran/tvseg/labelengine"
	"github.com/katalvlaran/tvseg/mmio"
)

type flagSet struct {
	input            string
	levels           string
	output           string
	rhoD, rhoS, rhoP float64
	priorDistance    float64
	hasPriorDistance bool
	assignments      bool
	maxIter          int
	debug            bool
	debugGraphStruct bool
	onNonSubmodular  string
}

func main() {
	f := &flagSet{}
	cmd := &cobra.Command{
		Use:   "graphproc",
		Short: "Cluster a denoised vector onto a level set via alpha-expansion",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootcmd.ConfigureLogging(f.debug)
			f.hasPriorDistance = cmd.Flags().Changed("prior-distance")

			return run(f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "path to the denoised input Matrix-Market vector")
	cmd.Flags().StringVar(&f.levels, "levels", "", "path to the level Matrix-Market vector")
	cmd.Flags().StringVar(&f.output, "output", "", "path to write the output Matrix-Market vector or matrix")
	cmd.Flags().Float64Var(&f.rhoD, "rho-d", 100.0, "regularization parameter for the data term")
	cmd.Flags().Float64Var(&f.rhoS, "rho-s", 10.0, "regularization parameter for the smoothness term")
	cmd.Flags().Float64Var(&f.rhoP, "rho-p", 0.0, "regularization parameter for the label-prior term")
	cmd.Flags().Float64Var(&f.priorDistance, "prior-distance", 0, "jump distance the prior term should not penalize")
	cmd.Flags().BoolVar(&f.assignments, "assignments", false, "output assignments (level, weight) instead of the expanded vector")
	cmd.Flags().IntVar(&f.maxIter, "maxiter", -1, "sweep iterations; -1 uses a backtracking schedule instead")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&f.debugGraphStruct, "debug-graphstructure", false, "cross-validate the first move's min-cut against flow.Dinic, flow.FordFulkerson, and flow.EdmondsKarp")
	cmd.Flags().StringVar(&f.onNonSubmodular, "on-nonsubmodular", "heal", "reaction to a non-submodular pairwise term: heal, reject, or fail")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("levels")
	_ = cmd.MarkFlagRequired("output")

	rootcmd.Execute(cmd)
}

func run(f *flagSet) error {
	if f.rhoP != 0 && !f.hasPriorDistance {
		return rootcmd.WrapUsage(fmt.Errorf("--prior-distance is required when --rho-p is nonzero"), "parsing flags")
	}

	input, err := mmio.LoadVectorFile(f.input)
	if err != nil {
		return rootcmd.WrapUsage(err, "loading input vector")
	}
	levels, err := mmio.LoadVectorFile(f.levels)
	if err != nil {
		return rootcmd.WrapUsage(err, "loading levels vector")
	}

	segments := chainseg.Compress(input, 0)
	log.WithField("sites", len(segments.Values)).WithField("n", segments.N()).Debug("compressed input into sites")

	policy, err := parseNonSubmodularPolicy(f.onNonSubmodular)
	if err != nil {
		return rootcmd.WrapUsage(err, "parsing flags")
	}

	costs := buildCostTerms(segments, levels, f.rhoD, f.rhoS, f.rhoP, f.priorDistance)
	weights := labelengine.Weights{
		Data:   lambdaOf(f.rhoD),
		Smooth: lambdaOf(f.rhoS),
		Prior:  lambdaOf(f.rhoP),
	}

	opts := labelengine.DefaultOptions()
	opts.OnNonSubmodular = policy
	engine, err := labelengine.NewEngine(len(segments.Values), len(levels), costs, weights, opts)
	if err != nil {
		return err
	}

	if f.debugGraphStruct {
		crossValidateFirstMove(segments, levels, costs)
	}

	var finalEnergy int64
	if f.maxIter < 0 {
		finalEnergy, err = engine.Run(labelengine.Backtracking{})
	} else {
		finalEnergy, err = engine.Run(labelengine.Sweep{MaxIterations: f.maxIter})
	}
	if err != nil {
		return fmt.Errorf("alpha-expansion move aborted: %w", err)
	}
	log.WithField("energy", finalEnergy).Debug("expansion converged")

	if f.assignments {
		return writeAssignments(f.output, engine, segments, levels)
	}

	return writeExpanded(f.output, engine, segments, levels)
}

func quantizeCost(cost float64) int64 {
	return int64(cost)
}

// parseNonSubmodularPolicy maps the --on-nonsubmodular flag value onto an
// energy.NonSubmodularPolicy.
func parseNonSubmodularPolicy(s string) (energy.NonSubmodularPolicy, error) {
	switch s {
	case "heal":
		return energy.Heal, nil
	case "reject":
		return energy.Reject, nil
	case "fail":
		return energy.Fail, nil
	default:
		return energy.Heal, fmt.Errorf("--on-nonsubmodular: unknown policy %q (want heal, reject, or fail)", s)
	}
}

func lambdaOf(rho float64) float64 {
	if rho == 0 {
		return 0
	}

	return 1 / rho
}

// buildCostTerms mirrors the reference cost formulas: a data term
// weighted by (1 + run-length), a smoothness term that penalizes any
// label change between chain-adjacent sites, and an optional prior term
// that additionally penalizes jumps whose height differs from
// priorDistance by more than a small tolerance.
func buildCostTerms(segments chainseg.Segments, levels []float64, rhoD, rhoS, rhoP, priorDistance float64) labelengine.CostTerms {
	const priorEpsilon = 0.05

	costs := labelengine.CostTerms{
		DataCost: func(site, label int) float64 {
			weight := float64(segments.Weights[site])

			return (1 + weight) * math.Abs(segments.Values[site]-levels[label])
		},
	}

	if rhoS != 0 {
		costs.SmoothCost = func(i, j, labelI, labelJ int) float64 {
			wi := float64(segments.Weights[i])
			wj := float64(segments.Weights[j])
			if labelI != labelJ {
				return 1 + wi + wj
			}

			return 0
		}
	}

	if rhoP != 0 {
		costs.LabelCost = func(i, j, labelI, labelJ int) float64 {
			if labelI == labelJ {
				return 0
			}
			jumpHeight := math.Abs(levels[labelI] - levels[labelJ])
			if math.Abs(priorDistance-jumpHeight) > priorEpsilon {
				return 1
			}

			return 0
		}
	}

	return costs
}

func writeAssignments(path string, engine *labelengine.Engine, segments chainseg.Segments, levels []float64) error {
	labs := engine.Labels()
	data := make([]float64, 0, 2*len(labs))
	for i, label := range labs {
		data = append(data, levels[label], float64(segments.Weights[i]))
	}

	if err := mmio.SaveMatrixFile(path, mmio.Matrix{Rows: len(labs), Cols: 2, Data: data}); err != nil {
		return rootcmd.WrapUsage(err, "writing assignments")
	}

	return nil
}

func writeExpanded(path string, engine *labelengine.Engine, segments chainseg.Segments, levels []float64) error {
	labs := engine.Labels()
	out := chainseg.Segments{
		Values:  make([]float64, len(labs)),
		Weights: segments.Weights,
	}
	for i, label := range labs {
		out.Values[i] = levels[label]
	}

	if err := mmio.SaveVectorFile(path, chainseg.Expand(out)); err != nil {
		return rootcmd.WrapUsage(err, "writing expanded vector")
	}

	return nil
}

// crossValidateFirstMove builds the binary sub-problem the engine's first
// alpha-expansion move (alpha = the top label) would pose over the data
// term alone, solving it with a scratch energy.Graph and, as independent
// oracles, with flow.Dinic, flow.FordFulkerson, and flow.EdmondsKarp on an
// equivalent core.Graph, logging a warning on any disagreement.
func crossValidateFirstMove(segments chainseg.Segments, levels []float64, costs labelengine.CostTerms) {
	if len(levels) == 0 {
		return
	}

	n := len(segments.Values)
	alpha := len(levels) - 1
	keepCost := func(i int) float64 { return costs.DataCost(i, 0) }
	switchCost := func(i int) float64 { return costs.DataCost(i, alpha) }

	g := energy.NewGraph(energy.DefaultOptions())
	for i := 0; i < n; i++ {
		g.AddVariable()
	}
	for i := 0; i < n; i++ {
		g.AddTerm1(i, quantizeCost(keepCost(i)), quantizeCost(switchCost(i)))
	}
	bkCost := g.Minimize()

	cg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = cg.AddVertex("s")
	_ = cg.AddVertex("t")
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("v%d", i)
		_ = cg.AddVertex(id)
		a := quantizeCost(keepCost(i))
		b := quantizeCost(switchCost(i))
		if b > 0 {
			_, _ = cg.AddEdge("s", id, b)
		}
		if a > 0 {
			_, _ = cg.AddEdge(id, "t", a)
		}
	}
	maxFlow, _, err := flow.Dinic(cg, "s", "t", flow.DefaultOptions())
	if err != nil {
		log.WithError(err).Warn("debug-graphstructure: Dinic cross-validation failed")

		return
	}
	if math.Abs(float64(bkCost)-maxFlow) > 1e-6 {
		log.WithField("bk", bkCost).WithField("dinic", maxFlow).
			Warn("debug-graphstructure: BK min-cut disagrees with Dinic max-flow oracle")
	}

	// The binary sub-problem is small (one site per chain segment), so the
	// slower classical max-flow algorithms are cheap enough to run as
	// additional independent oracles alongside Dinic.
	ffFlow, _, err := flow.FordFulkerson(cg, "s", "t", flow.DefaultOptions())
	if err != nil {
		log.WithError(err).Warn("debug-graphstructure: FordFulkerson cross-validation failed")
	} else if math.Abs(float64(bkCost)-ffFlow) > 1e-6 {
		log.WithField("bk", bkCost).WithField("ford_fulkerson", ffFlow).
			Warn("debug-graphstructure: BK min-cut disagrees with FordFulkerson max-flow oracle")
	}

	ekFlow, _, err := flow.EdmondsKarp(cg, "s", "t", flow.DefaultOptions())
	if err != nil {
		log.WithError(err).Warn("debug-graphstructure: EdmondsKarp cross-validation failed")
	} else if math.Abs(float64(bkCost)-ekFlow) > 1e-6 {
		log.WithField("bk", bkCost).WithField("edmonds_karp", ekFlow).
			Warn("debug-graphstructure: BK min-cut disagrees with EdmondsKarp max-flow oracle")
	}
}
