// Package cli implements the reclass command-line interface.
//
// # Commands
//
//   - save: Load a TOML definition and save it as a project container
//   - nodes: Save selected classes' nodes as a loose node container
//   - graph: Draw the class reference graph as SVG or DOT
//   - types: List the built-in node types
//   - inspect: Summarize the classes of a saved container
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried on [CLI] and attached to the command context; the writers in
// pkg/io report skipped nodes through it.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/reclass/internal/config"
	"github.com/matzehuels/reclass/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "reclass"

	// containerExt is the file extension of saved projects.
	containerExt = ".rcnet"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "reclass saves class layout definitions as ReClass-style project files",
		Long:         `reclass turns TOML descriptions of in-memory class layouts into project containers (a zip archive holding Data.xml), draws their reference graphs, and uploads them to S3-compatible storage.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			registerHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.saveCommand())
	root.AddCommand(c.nodesCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.typesCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Helpers
// =============================================================================

// loadConfig reads settings from envFile, or from ./.env and the environment
// when envFile is empty.
func loadConfig(envFile string) (*config.Config, error) {
	if envFile != "" {
		return config.LoadFile(envFile)
	}
	return config.Load()
}

// defaultOutput derives an output path from the input path by swapping the
// extension.
func defaultOutput(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ext
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
