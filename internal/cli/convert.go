package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bpmngraph/pkg/config"
	"github.com/matzehuels/bpmngraph/pkg/pipeline"
)

// convertOpts holds the command-line flags for a conversion.
type convertOpts struct {
	output   string // matrix file; suffix selects .npy or .json
	config   string // optional TOML configuration file
	show     bool   // render and open the final graph
	detailed bool   // include ids and kinds in rendered labels
}

func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{output: pipeline.DefaultOutput}

	cmd := &cobra.Command{
		Use:   appName + " <document.bpmn>",
		Short: "Convert a BPMN process into a task adjacency matrix",
		Long: `Convert a BPMN process document into the adjacency matrix of its start
events, end events and tasks.

Sequence flows and gateways are collapsed into direct edges. Tasks that can
run concurrently (their nearest common ancestor forks into both through a
parallel gateway) are connected in both directions.

The output format follows the --out suffix: .npy writes a NumPy int64
matrix, .json writes the node list, the edge list and the matrix.`,
		Example: `  # Write adj_matrix.npy next to the document
  bpmngraph order.bpmn

  # JSON output with a user-task scheme, then open the diagram
  bpmngraph order.bpmn --out order.json --config bpmngraph.toml --show`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runConvert(ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output matrix file (.npy or .json)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	cmd.Flags().BoolVar(&opts.show, "show", false, "render the final graph and open it in the system viewer")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show element ids and kinds in the rendered graph")

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, input string, opts convertOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	for _, key := range cfg.Unknown {
		logger.Warn("ignoring unknown config key", "key", key)
	}

	prog := newProgress(logger)
	runner := pipeline.NewRunner(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Input:  input,
		Output: opts.output,
		Config: &cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Converted %s", input))

	printSummary(c.Stdout, input, res)

	if opts.show {
		return c.show(ctx, runner, res, opts.detailed)
	}
	return nil
}
