package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tricks/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove downloaded tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), app.CleanOptions{GlobalOptions: globals(cmd)})
		},
	}
}
