package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tricks/internal/app"
)

func (c *CLI) newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Download the latest Winetricks script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Download(cmd.Context(), app.DownloadOptions{GlobalOptions: globals(cmd)})
			return err
		},
	}
}
