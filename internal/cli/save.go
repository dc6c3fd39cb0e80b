package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reclass/pkg/definition"
	errs "github.com/matzehuels/reclass/pkg/errors"
	rio "github.com/matzehuels/reclass/pkg/io"
	"github.com/matzehuels/reclass/pkg/project"
	"github.com/matzehuels/reclass/pkg/storage"
)

// saveOpts holds options for the save command.
type saveOpts struct {
	output   string
	platform string
	envFile  string
	upload   string
	presign  time.Duration
}

// saveCommand creates the save command for writing project containers.
func (c *CLI) saveCommand() *cobra.Command {
	var opts saveOpts

	cmd := &cobra.Command{
		Use:   "save [definition.toml]",
		Short: "Save a class definition file as a project container",
		Long: `Save reads a TOML class definition and writes it as a project container.

The container is a zip archive holding a single Data.xml entry. The output
is written to a temporary file and renamed into place, so an existing file
is only replaced by a complete container.

With --upload the container is also stored in the S3-compatible bucket
configured through RECLASS_S3_* variables (or an env file).`,
		Example: `  # Save next to the definition (game.rcnet)
  reclass save game.toml

  # Choose output and platform
  reclass save game.toml -o saves/game.rcnet --platform x86

  # Save and upload
  reclass save game.toml --upload projects/game.rcnet --presign 1h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSave(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <definition>.rcnet)")
	cmd.Flags().StringVar(&opts.platform, "platform", "", "platform tag: x64 or x86 (default: RECLASS_PLATFORM or host)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "read settings from this env file instead of ./.env")
	cmd.Flags().StringVar(&opts.upload, "upload", "", "object key to upload the container to")
	cmd.Flags().DurationVar(&opts.presign, "presign", 0, "print a download URL valid for this long (requires --upload)")

	return cmd
}

// runSave loads the definition, exports it, and optionally uploads the result.
func (c *CLI) runSave(ctx context.Context, input string, opts saveOpts) error {
	logger := loggerFromContext(ctx)

	if opts.presign > 0 && opts.upload == "" {
		return errs.New(errs.ErrCodeInvalidInput, "--presign requires --upload")
	}
	if err := validatePlatform(opts.platform); err != nil {
		return err
	}

	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return err
	}

	logger.Debug("Loading definition", "path", input)
	p, err := definition.Load(input)
	if err != nil {
		return err
	}
	defer p.Close()

	output := firstNonEmpty(opts.output, defaultOutput(input, containerExt))
	prog := newProgress(logger)
	err = rio.ExportProject(p, output, rio.Options{
		Logger:   logger,
		Platform: firstNonEmpty(opts.platform, cfg.Platform),
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Saved %d classes", p.ClassCount()))

	printSuccess("Saved %s", filepath.Base(output))
	printStats(p.ClassCount(), countNodes(p))
	printFile(output)

	if opts.upload == "" {
		return nil
	}
	if !cfg.Storage.Enabled {
		printWarning("Upload skipped: storage is not configured")
		printDetail("Set RECLASS_S3_ENDPOINT or pass --env-file")
		return errs.New(errs.ErrCodeInvalidInput, "storage is not configured")
	}

	store, err := storage.NewS3Store(cfg.Storage.S3Config())
	if err != nil {
		return err
	}
	printInfo("Uploading to %s/%s", store.Bucket(), opts.upload)
	if err := store.UploadFile(ctx, opts.upload, output); err != nil {
		return err
	}
	printSuccess("Uploaded %s", opts.upload)

	if opts.presign > 0 {
		url, err := store.PresignedURL(ctx, opts.upload, opts.presign)
		if err != nil {
			return err
		}
		fmt.Println("  " + StyleLink.Render(url))
	}
	return nil
}

func validatePlatform(platform string) error {
	switch platform {
	case "", "x64", "x86":
		return nil
	}
	return errs.New(errs.ErrCodeInvalidInput, "platform must be x64 or x86, got %q", platform)
}

func countNodes(p *project.Project) int {
	n := 0
	for _, c := range p.Classes() {
		n += c.NodeCount()
	}
	return n
}
