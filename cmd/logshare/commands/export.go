package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/logshare/internal/app"
	"go.trai.ch/logshare/internal/core/domain"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [ids...]",
		Short: "Export the selected records into one document",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if len(args) == 0 && !all {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = string(domain.UIModeLinear)
			}

			ids := make([]domain.RecordID, len(args))
			for i, arg := range args {
				ids[i] = domain.RecordID(arg)
			}

			items, err := c.app.Export(cmd.Context(), ids, app.ExportOptions{
				All:        all,
				Format:     format,
				OutDir:     outDir,
				OutputMode: outputMode,
			})
			if err != nil {
				return err
			}
			for _, item := range items {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), item.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Export every stored record")
	cmd.Flags().StringP("format", "f", "", "Output format: text, html, pdf, or raw (default from config)")
	cmd.Flags().String("out", "", "Directory that receives the exported file (default from config)")
	cmd.Flags().StringP("output-mode", "o", "", "Output mode: auto, tui, or linear (default from config)")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
