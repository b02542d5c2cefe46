package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file.jsonl>",
		Short: "Store records from a JSON Lines file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Ingest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}
}
