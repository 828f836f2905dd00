// Package app implements the application layer for tricks.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/tricks/internal/adapters/detector"
	"go.trai.ch/tricks/internal/adapters/i18n"
	"go.trai.ch/tricks/internal/adapters/online"
	"go.trai.ch/tricks/internal/adapters/session"
	"go.trai.ch/tricks/internal/adapters/telemetry"
	"go.trai.ch/tricks/internal/core/domain"
	"go.trai.ch/tricks/internal/core/ports"
	"go.trai.ch/tricks/internal/engine/supervisor"
	"go.trai.ch/tricks/internal/engine/winetricks"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	supervisor   *supervisor.Supervisor
	downloader   *winetricks.Downloader
	logger       ports.Logger
	autoMode     detector.OutputMode

	stdout       io.Writer
	teaOptions   []tea.ProgramOption
	surface      session.Surface
	connectivity ports.Connectivity
	translator   ports.Translator
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sup *supervisor.Supervisor,
	downloader *winetricks.Downloader,
	log ports.Logger,
	autoMode detector.OutputMode,
) *App {
	return &App{
		configLoader: loader,
		supervisor:   sup,
		downloader:   downloader,
		logger:       log,
		autoMode:     autoMode,
		stdout:       os.Stdout,
	}
}

// WithOutput sets the writer sessions render to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithSurface replaces the session selected from the output mode.
func (a *App) WithSurface(s session.Surface) *App {
	a.surface = s
	return a
}

// WithConnectivity replaces the connectivity monitor built from the config.
func (a *App) WithConnectivity(c ports.Connectivity) *App {
	a.connectivity = c
	return a
}

// WithTranslator replaces the translator built from the config.
func (a *App) WithTranslator(t ports.Translator) *App {
	a.translator = t
	return a
}

// GlobalOptions are the settings shared by every command.
type GlobalOptions struct {
	ConfigPath string
	LogJSON    bool
	Trace      bool
}

// InstallationOptions select the Wine installation to work with.
type InstallationOptions struct {
	WineBin    string
	WineType   string
	Wineserver string
	Prefix     string
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	GlobalOptions
	InstallationOptions
	OutputMode string
	Verbs      []string
}

// Run supervises one Winetricks run and returns its outcome.
// The returned error covers setup problems and tool errors.
func (a *App) Run(ctx context.Context, opts RunOptions) (domain.RunOutcome, error) {
	cfg, err := a.setup(opts.GlobalOptions)
	if err != nil {
		return domain.RunOutcome{}, err
	}

	inst, err := installation(opts.InstallationOptions)
	if err != nil {
		return domain.RunOutcome{}, err
	}

	mode, err := detector.ResolveMode(a.autoMode, opts.OutputMode)
	if err != nil {
		return domain.RunOutcome{}, err
	}

	translator, err := a.translatorFor(cfg)
	if err != nil {
		return domain.RunOutcome{}, err
	}

	shutdown := telemetry.Setup(a.logger, opts.Trace)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	if _, statErr := os.Stat(cfg.WinetricksPath()); errors.Is(statErr, fs.ErrNotExist) {
		a.downloader.Download(ctx, a.downloadRequest(cfg, translator))
	}

	surface := a.surfaceFor(ctx, mode)
	req := supervisor.Request{
		Installation:   inst,
		BasePrefix:     opts.Prefix,
		ToolPath:       cfg.WinetricksPath(),
		Verbs:          opts.Verbs,
		Dependencies:   cfg.Dependencies,
		FlushInterval:  cfg.FlushInterval,
		BufferCapacity: cfg.BufferCapacity,
		PTY:            cfg.PTY,
		Translator:     translator,
	}

	var (
		outcome  domain.RunOutcome
		finished atomic.Bool
		quit     atomic.Bool
	)
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	g, ctx := errgroup.WithContext(runCtx)

	// Surface Routine
	g.Go(func() error {
		if err := surface.Start(ctx); err != nil {
			return err
		}
		err := surface.Wait()
		// A surface closed by the user stops Winetricks as well.
		if !finished.Load() {
			quit.Store(true)
			cancelRun()
		}
		return err
	})

	// Supervisor Routine
	g.Go(func() error {
		defer func() {
			_ = surface.Stop()
		}()
		outcome = a.supervisor.Run(ctx, req, surface)
		finished.Store(true)
		return nil
	})

	if err := g.Wait(); err != nil {
		return outcome, err
	}

	if quit.Load() {
		a.logger.Warn("winetricks cancelled: " + outcome.String())
		return outcome, zerr.Wrap(domain.ErrRunCancelled, "session closed before winetricks finished")
	}

	a.logger.Info("winetricks finished: " + outcome.String())
	if outcome.Failed() {
		return outcome, zerr.With(zerr.Wrap(domain.ErrProcessFailed, "winetricks run failed"), "message", outcome.Message)
	}
	return outcome, nil
}

// DownloadOptions configuration for the Download method.
type DownloadOptions struct {
	GlobalOptions
}

// Download refreshes the local Winetricks script.
func (a *App) Download(ctx context.Context, opts DownloadOptions) (winetricks.Result, error) {
	cfg, err := a.setup(opts.GlobalOptions)
	if err != nil {
		return "", err
	}

	translator, err := a.translatorFor(cfg)
	if err != nil {
		return "", err
	}

	shutdown := telemetry.Setup(a.logger, opts.Trace)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	return a.downloader.Download(ctx, a.downloadRequest(cfg, translator)), nil
}

// DepsOptions configuration for the Deps method.
type DepsOptions struct {
	GlobalOptions
	InstallationOptions
}

// Deps checks the host for the commands Winetricks relies on and logs one
// warning per missing command.
func (a *App) Deps(ctx context.Context, opts DepsOptions) (domain.DependencyReport, error) {
	cfg, err := a.setup(opts.GlobalOptions)
	if err != nil {
		return domain.DependencyReport{}, err
	}

	var inst domain.WineInstallation
	if opts.WineBin != "" {
		if inst, err = wineInstallation(opts.InstallationOptions); err != nil {
			return domain.DependencyReport{}, err
		}
	}

	translator, err := a.translatorFor(cfg)
	if err != nil {
		return domain.DependencyReport{}, err
	}

	report := a.supervisor.CheckDependencies(ctx, inst, opts.Prefix, cfg.Dependencies)
	for _, name := range report.Missing {
		a.logger.Warn(translator.T("winetricks.dependencyMissing", domain.MissingDependencyMessage(name),
			map[string]string{"dependency": name}))
	}
	if report.OK() {
		a.logger.Info(fmt.Sprintf("all %d dependencies found", len(cfg.Dependencies)))
	}
	return report, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	GlobalOptions
}

// Clean removes the downloaded tools.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.setup(opts.GlobalOptions)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing %s...", cfg.ToolsDir))
	if err := os.RemoveAll(cfg.ToolsDir); err != nil {
		return zerr.Wrap(err, "failed to remove tools directory")
	}
	a.logger.Info(fmt.Sprintf("removed %s", cfg.ToolsDir))
	return nil
}

// setup applies the global options and loads the configuration.
func (a *App) setup(opts GlobalOptions) (domain.Config, error) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.LogJSON)
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) translatorFor(cfg domain.Config) (ports.Translator, error) {
	if a.translator != nil {
		return a.translator, nil
	}
	t, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load translations")
	}
	return t, nil
}

func (a *App) downloadRequest(cfg domain.Config, translator ports.Translator) winetricks.Request {
	conn := a.connectivity
	if conn == nil {
		conn = online.NewMonitor(cfg.OnlineAddress, cfg.OnlineTimeout)
	}
	return winetricks.Request{
		URL:          cfg.DownloadURL,
		ToolsDir:     cfg.ToolsDir,
		Timeout:      cfg.DownloadTimeout,
		Connectivity: conn,
		Translator:   translator,
	}
}

func (a *App) surfaceFor(ctx context.Context, mode detector.OutputMode) session.Surface {
	if a.surface != nil {
		return a.surface
	}
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	return session.New(mode, a.stdout, opts...)
}

func installation(opts InstallationOptions) (domain.WineInstallation, error) {
	if opts.WineBin == "" {
		return domain.WineInstallation{}, zerr.Wrap(domain.ErrMissingWineBin, "select wine installation")
	}
	if opts.Prefix == "" {
		return domain.WineInstallation{}, zerr.Wrap(domain.ErrMissingPrefix, "select wine installation")
	}
	return wineInstallation(opts)
}

func wineInstallation(opts InstallationOptions) (domain.WineInstallation, error) {
	wineType, err := domain.ParseWineType(opts.WineType)
	if err != nil {
		return domain.WineInstallation{}, err
	}

	return domain.WineInstallation{
		Name:       string(wineType),
		Type:       wineType,
		Bin:        opts.WineBin,
		Wineserver: opts.Wineserver,
	}, nil
}
