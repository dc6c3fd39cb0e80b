package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reclass/pkg/definition"
	errs "github.com/matzehuels/reclass/pkg/errors"
	"github.com/matzehuels/reclass/pkg/render"
)

// graphOpts holds options for the graph command.
type graphOpts struct {
	output   string
	detailed bool
}

// graphCommand creates the graph command for drawing class reference graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [definition.toml]",
		Short: "Draw the class reference graph",
		Long: `Graph draws one box per class and one edge per class reference node.
Pointer references are dashed; array references carry their element count.

The output format follows the extension of --output: .dot writes Graphviz
source, anything else renders SVG.`,
		Example: `  # Render SVG next to the definition
  reclass graph game.toml

  # Write DOT with sizes in the labels
  reclass graph game.toml -o game.dot --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .svg or .dot (default: <definition>.svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include memory size and node count in labels")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, input string, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	p, err := definition.Load(input)
	if err != nil {
		return err
	}
	defer p.Close()

	output := firstNonEmpty(opts.output, defaultOutput(input, ".svg"))
	dot := render.ToDOT(p, render.Options{Detailed: opts.detailed})

	data := []byte(dot)
	if !strings.EqualFold(filepath.Ext(output), ".dot") {
		prog := newProgress(logger)
		if data, err = render.RenderSVG(dot); err != nil {
			return err
		}
		prog.done("Rendered SVG")
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", output)
	}
	printSuccess("Graph of %d classes", p.ClassCount())
	printFile(output)
	return nil
}
