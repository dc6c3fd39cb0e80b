package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/matzehuels/reclass/pkg/definition"
	errs "github.com/matzehuels/reclass/pkg/errors"
	rio "github.com/matzehuels/reclass/pkg/io"
	"github.com/matzehuels/reclass/pkg/project"
)

// nodesOpts holds options for the nodes command.
type nodesOpts struct {
	output   string
	classes  []string
	whole    bool
	platform string
	envFile  string
}

// nodesCommand creates the nodes command for writing loose node containers.
func (c *CLI) nodesCommand() *cobra.Command {
	var opts nodesOpts

	cmd := &cobra.Command{
		Use:   "nodes [definition.toml]",
		Short: "Save the nodes of selected classes as a loose node container",
		Long: `Nodes collects the nodes of the classes named with --class and writes them
as a container whose first class, SerialisationClass, holds the loose nodes.
Every class the nodes reference is included, transitively.

With --whole the named classes are written as classes of their own instead
of having their nodes copied into SerialisationClass.

Use -o - to write the container to stdout.`,
		Example: `  # Copy the nodes of Player
  reclass nodes game.toml --class Player -o player-nodes.rcnet

  # Write two whole classes to stdout
  reclass nodes game.toml --class Player --class Item --whole -o - > out.rcnet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNodes(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout (default: <definition>.nodes.rcnet)")
	cmd.Flags().StringSliceVarP(&opts.classes, "class", "c", nil, "class to include (repeatable)")
	cmd.Flags().BoolVar(&opts.whole, "whole", false, "write the named classes instead of copying their nodes")
	cmd.Flags().StringVar(&opts.platform, "platform", "", "platform tag: x64 or x86 (default: RECLASS_PLATFORM or host)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "read settings from this env file instead of ./.env")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

// runNodes selects nodes from the definition and writes them with WriteNodes.
func (c *CLI) runNodes(ctx context.Context, input string, opts nodesOpts, stdout io.Writer) error {
	logger := loggerFromContext(ctx)

	if err := validatePlatform(opts.platform); err != nil {
		return err
	}
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return err
	}

	p, err := definition.Load(input)
	if err != nil {
		return err
	}
	defer p.Close()

	nodes, err := selectNodes(p, opts.classes, opts.whole)
	if err != nil {
		return err
	}
	logger.Debug("Selected nodes", "classes", len(opts.classes), "nodes", len(nodes))

	var buf bytes.Buffer
	err = rio.WriteNodes(nodes, &buf, rio.Options{
		Logger:   logger,
		Platform: firstNonEmpty(opts.platform, cfg.Platform),
	})
	if err != nil {
		return err
	}

	output := firstNonEmpty(opts.output, defaultOutput(input, ".nodes"+containerExt))
	if output == "-" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return errs.Wrap(errs.ErrCodeIO, err, "write stdout")
		}
		return nil
	}

	if err := renameio.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", output)
	}
	printSuccess("Saved %d nodes to %s", len(nodes), filepath.Base(output))
	printFile(output)
	return nil
}

// selectNodes returns the named classes, or their nodes in class order.
func selectNodes(p *project.Project, names []string, whole bool) ([]project.Node, error) {
	var nodes []project.Node
	for _, name := range names {
		cls, ok := p.ClassByName(name)
		if !ok {
			return nil, errs.New(errs.ErrCodeNotFound, "class %q not found", name)
		}
		if whole {
			nodes = append(nodes, cls)
			continue
		}
		nodes = append(nodes, cls.Nodes()...)
	}
	return nodes, nil
}
