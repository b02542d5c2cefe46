package commands

import (
	"github.com/spf13/cobra"
)

const defaultListLimit = 50

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return c.app.List(cmd.Context(), cmd.OutOrStdout(), limit)
		},
	}
	cmd.Flags().IntP("limit", "n", defaultListLimit, "Maximum number of records to show, 0 for all")
	return cmd
}
