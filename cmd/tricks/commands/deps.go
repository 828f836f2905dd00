package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/tricks/internal/app"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check the host for commands Winetricks relies on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Deps(cmd.Context(), app.DepsOptions{
				GlobalOptions:       globals(cmd),
				InstallationOptions: installation(cmd),
			})
			if err != nil {
				return err
			}
			if !report.OK() {
				return zerr.With(
					zerr.Wrap(domain.ErrDependencyMissing, "check dependencies"),
					"missing", strings.Join(report.Missing, ","),
				)
			}
			return nil
		},
	}
	addInstallationFlags(cmd)
	return cmd
}
