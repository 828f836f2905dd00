// Package commands implements the CLI commands for tricks.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tricks/internal/app"
	"go.trai.ch/tricks/internal/build"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/engine/winetricks"
)

// CLI represents the command line interface for tricks.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (domain.RunOutcome, error)
	Download(ctx context.Context, opts app.DownloadOptions) (winetricks.Result, error)
	Deps(ctx context.Context, opts app.DepsOptions) (domain.DependencyReport, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tricks",
		Short:         "Run Winetricks against Wine and Proton prefixes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default $XDG_CONFIG_HOME/tricks/tricks.yaml)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Report finished trace spans in the log")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newDownloadCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// globals reads the persistent flags.
func globals(cmd *cobra.Command) app.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	trace, _ := cmd.Flags().GetBool("trace")
	return app.GlobalOptions{
		ConfigPath: configPath,
		LogJSON:    logJSON,
		Trace:      trace,
	}
}

func addInstallationFlags(cmd *cobra.Command) {
	cmd.Flags().String("wine-bin", "", "Path to the wine binary, or to the proton launcher script")
	cmd.Flags().String("wine-type", string(domain.WineTypeWine), "Installation type: wine, proton, or crossover")
	cmd.Flags().String("wineserver", "", "Path to the wineserver binary")
	cmd.Flags().String("prefix", "", "Wine prefix directory")
}

func installation(cmd *cobra.Command) app.InstallationOptions {
	wineBin, _ := cmd.Flags().GetString("wine-bin")
	wineType, _ := cmd.Flags().GetString("wine-type")
	wineserver, _ := cmd.Flags().GetString("wineserver")
	prefix, _ := cmd.Flags().GetString("prefix")
	return app.InstallationOptions{
		WineBin:    wineBin,
		WineType:   wineType,
		Wineserver: wineserver,
		Prefix:     prefix,
	}
}
