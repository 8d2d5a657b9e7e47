package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danmuck/calckit/internal/ops"
)

func opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, meta := range ops.Builtin().ListMetadata() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", meta.ID, meta.Name, meta.Description)
			}
			return tw.Flush()
		},
	}
}
