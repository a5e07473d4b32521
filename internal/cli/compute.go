package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pipegrid/pkg/diagram"
	"github.com/matzehuels/pipegrid/pkg/parts"
	"github.com/matzehuels/pipegrid/pkg/pipeline"
)

// computeOpts holds the flags of the compute command.
type computeOpts struct {
	pressure float64
	strict   bool
}

// computeCommand creates the compute command.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOpts{pressure: pipeline.DefaultBoundaryPressure}

	cmd := &cobra.Command{
		Use:   "compute <diagram>...",
		Short: "Compute the flow through every part of a diagram",
		Long: `Compute reads one or more diagram files (.json or .toml), walks the network
from every source and prints the flow at each exit of each part.

Faults such as unknown part types are reported as warnings. Use --strict to
turn them into a non-zero exit status.`,
		Example: `  pipegrid compute mash.json
  pipegrid compute --pressure 12 --catalog brewery.toml mash.toml lauter.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd, args, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.pressure, "pressure", opts.pressure, "boundary pressure driving every source")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when any fault is reported")

	return cmd
}

func (c *CLI) runCompute(cmd *cobra.Command, args []string, opts computeOpts) error {
	ctx := cmd.Context()
	defer c.logMetrics()

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	var results []*pipeline.Result
	if len(args) == 1 {
		res, err := runner.Execute(ctx, pipeline.Options{DiagramPath: args[0], BoundaryPressure: opts.pressure})
		if err != nil {
			return err
		}
		results = append(results, res)
	} else {
		diagrams := make([]*diagram.Diagram, len(args))
		for i, path := range args {
			d, err := runner.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			diagrams[i] = d
		}
		results, err = runner.ComputeAll(ctx, diagrams, pipeline.Options{BoundaryPressure: opts.pressure})
		if err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Computed %d diagrams", len(results)))

	faults := 0
	for _, res := range results {
		c.printResult(res, runner.Catalog)
		faults += len(res.Flow.Faults)
	}
	if opts.strict && faults > 0 {
		return errFaults{diagrams: len(results), faults: faults}
	}
	return nil
}

func (c *CLI) printResult(res *pipeline.Result, reg parts.Registry) {
	fmt.Fprintln(c.Out, StyleTitle.Render(res.Diagram.Name))
	fmt.Fprintln(c.Out, flowTable(res.Flow, reg))
	printStats(c.Out, res.Flow.Stats, len(res.Flow.Faults), res.Flow.Total())
	for _, f := range res.Flow.Faults {
		printWarning(c.Out, "%s", f.Error())
	}
	fmt.Fprintln(c.Out)
}

// errFaults is returned by compute --strict when any diagram reports faults.
type errFaults struct {
	diagrams int
	faults   int
}

func (e errFaults) Error() string {
	return fmt.Sprintf("%d faults in %d diagrams", e.faults, e.diagrams)
}
