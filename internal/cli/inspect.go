package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	rio "github.com/matzehuels/reclass/pkg/io"
)

// inspectCommand creates the inspect command for summarizing saved containers.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file.rcnet]",
		Short: "Summarize a saved project container",
		Long: `Inspect opens a container, checks its Data.xml entry, and lists the saved
classes with their IDs and node counts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerFromContext(cmd.Context()).Debug("Opening container", "path", args[0])
			doc, err := rio.OpenDocument(args[0])
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), rio.Summarize(doc))
			return nil
		},
	}
}

func writeSummary(w io.Writer, s rio.Summary) {
	printKeyValue(w, "Version", s.Version)
	printKeyValue(w, "Platform", s.Platform)
	printKeyValue(w, "Classes", strconv.Itoa(len(s.Classes)))
	printKeyValue(w, "Custom data", strconv.Itoa(s.CustomData))
	if len(s.Classes) == 0 {
		return
	}

	rows := make([][]string, len(s.Classes))
	for i, c := range s.Classes {
		rows[i] = []string{c.Name, c.UUID, strconv.Itoa(c.Nodes)}
	}
	printTable(w, []string{"Class", "UUID", "Nodes"}, rows)
}
