package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reclass/pkg/nodetype"
	"github.com/matzehuels/reclass/pkg/project"
)

// typesCommand creates the types command listing built-in node types.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the built-in node types",
		Long: `Types lists every node type accepted in the "type" field of a definition,
with its size in bytes and the extra fields it takes.

Sizes marked "var" depend on the referenced class, the element count or the
declared length.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTable(cmd.OutOrStdout(), []string{"Type", "Size", "Fields"}, typeRows())
			return nil
		},
	}
}

func typeRows() [][]string {
	tags := nodetype.Tags()
	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		n, _ := nodetype.New(tag)
		size, fields := describeType(n)
		rows = append(rows, []string{tag, size, fields})
	}
	return rows
}

// describeType returns the display size and the definition fields of n.
func describeType(n project.Node) (size, fields string) {
	switch n := n.(type) {
	case project.ArrayNode:
		return "var", "target, count"
	case *project.ClassInstanceNode:
		return "var", "target"
	case project.ReferenceNode:
		return strconv.Itoa(n.MemorySize()), "target"
	case project.TextNode:
		return "var", "length"
	case *project.BitFieldNode:
		return "var", "bits"
	case *project.VirtualMethodTableNode:
		return strconv.Itoa(n.MemorySize()), "methods"
	case *project.FunctionNode:
		return strconv.Itoa(n.MemorySize()), "signature, belongs_to"
	}
	return strconv.Itoa(n.MemorySize()), "-"
}

