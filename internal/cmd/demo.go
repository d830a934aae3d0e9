package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appconfig "github.com/Iron-Ham/toaster/internal/config"
	"github.com/Iron-Ham/toaster/internal/logging"
	"github.com/Iron-Ham/toaster/internal/scenario"
	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/tui"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive toast demo",
	Long: `Run a terminal UI with a sign-up form that reports through toasts.

Submitting the form publishes an error toast per invalid field, or a success
toast once the simulated registration succeeds. Press p to play the built-in
scenarios, x to dismiss the newest toast, X to dismiss all of them.

Examples:
  toaster demo                      # Start with an empty stack
  toaster demo --play 'signup-*'    # Play matching scenarios on start
  toaster demo --theme nord         # Override the configured theme`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var (
	demoPlay  string
	demoTheme string
)

func init() {
	demoCmd.Flags().StringVar(&demoPlay, "play", "", "glob of scenarios to play on start (e.g. 'signup-*')")
	demoCmd.Flags().StringVar(&demoTheme, "theme", "", "theme to use instead of tui.theme")
	rootCmd.AddCommand(demoCmd)
}

// demoSetup holds everything runDemo builds before starting the program.
type demoSetup struct {
	cfg       *appconfig.Config
	scenarios []scenario.Scenario
	autoPlay  bool
}

// prepareDemo loads the configuration, applies flag overrides and resolves
// the scenarios to play.
func prepareDemo(play, theme string) (*demoSetup, error) {
	if _, errs := styles.DiscoverCustomThemes(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Warning: Some themes failed to load:")
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "  - %v\n", err)
		}
	}

	cfg, err := appconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if theme != "" {
		if !styles.IsValidTheme(theme) {
			return nil, fmt.Errorf("unknown theme: %s\n\nRun 'toaster config theme list' to see available themes", theme)
		}
		cfg.TUI.Theme = theme
	}

	setup := &demoSetup{cfg: cfg, scenarios: scenario.Builtin()}
	if play != "" {
		matched, err := scenario.Match(play)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			return nil, fmt.Errorf("no scenario matches %q (available: %v)", play, scenario.Names(scenario.Builtin()))
		}
		setup.scenarios = matched
		setup.autoPlay = true
	}
	return setup, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	setup, err := prepareDemo(demoPlay, demoTheme)
	if err != nil {
		return err
	}
	cfg := setup.cfg

	termWidth, termHeight, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("demo needs an interactive terminal: %w", err)
	}

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		logger, err = logging.NewLogger(cfg.Logging.LogDir(), cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer func() { _ = logger.Close() }()
	}

	styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))

	store := toast.NewStore(toast.WithLogger(logger))
	defer store.Close()

	logger.Info("starting demo", "width", termWidth, "height", termHeight, "theme", cfg.TUI.Theme)
	if !cfg.Toast.DefaultRemoval() {
		logger.Warn("toast timings move removal off the default",
			"removal_after", cfg.Toast.RemovalAfter().String())
	}

	app := tui.New(tui.Options{
		Config:    cfg,
		Store:     store,
		Logger:    logger,
		Scenarios: setup.scenarios,
		AutoPlay:  setup.autoPlay,
	})

	theme := demoTheme
	appconfig.Watch(viper.GetViper(), func(next *appconfig.Config, err error) {
		if next != nil && theme != "" {
			next.TUI.Theme = theme
		}
		app.Reload(next, err)
	})

	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
