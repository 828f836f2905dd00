package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tricks/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run --wine-bin <path> --prefix <dir> [-- verbs...]",
		Short: "Run Winetricks against a Wine prefix",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			_, err := c.app.Run(cmd.Context(), app.RunOptions{
				GlobalOptions:       globals(cmd),
				InstallationOptions: installation(cmd),
				OutputMode:          outputMode,
				Verbs:               args,
			})
			return err
		},
	}
	addInstallationFlags(cmd)
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, linear, or json")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
