// Package tui implements the toaster demo: a bubbletea program with a
// sign-up form and the toast stack it reports to.
package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Iron-Ham/toaster/internal/config"
	"github.com/Iron-Ham/toaster/internal/logging"
	"github.com/Iron-Ham/toaster/internal/scenario"
	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
	"github.com/Iron-Ham/toaster/internal/tui/signup"
	"github.com/Iron-Ham/toaster/internal/tui/toasts"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// defaultRegistrarLatency makes the simulated sign-up request visible.
const defaultRegistrarLatency = 400 * time.Millisecond

// Options configures an App.
type Options struct {
	Config *config.Config
	Store  *toast.Store
	Logger *logging.Logger

	// Registrar handles valid sign-ups. Defaults to an in-memory registrar.
	Registrar signup.Registrar

	Scenarios []scenario.Scenario
	AutoPlay  bool

	// ProgramOptions are appended to the defaults (alt screen, plus mouse
	// reporting when enabled in the config).
	ProgramOptions []tea.ProgramOption
}

// App wires a toast store to the bubbletea program that renders it.
type App struct {
	store     *toast.Store
	driver    *lifecycle.Driver
	forwarder *Forwarder
	zones     *zone.Manager
	model     Model
	logger    *logging.Logger
	progOpts  []tea.ProgramOption

	mu  sync.RWMutex
	cfg *config.Config

	unsubscribe func()
}

// New creates the app. The lifecycle driver is subscribed to the store
// before the program bridge, so a toast's first transitions are queued ahead
// of the snapshot that introduced it.
func New(opts Options) *App {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Store == nil {
		opts.Store = toast.NewStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.Registrar == nil {
		opts.Registrar = signup.NewMemoryRegistrar(defaultRegistrarLatency)
	}

	a := &App{
		store:     opts.Store,
		forwarder: NewForwarder(),
		zones:     zone.New(),
		logger:    opts.Logger.WithComponent("app"),
		cfg:       opts.Config,
	}

	a.driver = lifecycle.NewDriver(a.store,
		lifecycle.WithTimingsSource(a.timings),
		lifecycle.WithTransitionHandler(func(t lifecycle.Transition) {
			a.forwarder.Post(toasts.TransitionMsg{Transition: t})
		}),
		lifecycle.WithDriverLogger(opts.Logger),
	)
	a.unsubscribe = a.store.Subscribe(func(s toast.Snapshot) {
		a.forwarder.Post(toasts.SnapshotMsg{Snapshot: s})
	})
	a.forwarder.Post(toasts.SnapshotMsg{Snapshot: a.store.Snapshot()})

	a.model = NewModel(ModelOptions{
		Publisher: a.store,
		Dismisser: a.driver,
		Submitter: signup.NewSubmitter(a.store, opts.Registrar, opts.Logger),
		Zones:     a.zones,
		Logger:    opts.Logger,
		Scenarios: opts.Scenarios,
		AutoPlay:  opts.AutoPlay,
		MaxWidth:  opts.Config.TUI.MaxWidth,
	})

	a.progOpts = []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.TUI.Mouse {
		a.progOpts = append(a.progOpts, tea.WithMouseCellMotion())
	}
	a.progOpts = append(a.progOpts, opts.ProgramOptions...)
	return a
}

// timings returns the phase durations for a newly published toast.
func (a *App) timings() lifecycle.Timings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg.Toast.Timings()
}

// Config returns the configuration currently in effect.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Driver returns the lifecycle driver.
func (a *App) Driver() *lifecycle.Driver {
	return a.driver
}

// Reload applies a configuration reloaded from disk. Timings apply to toasts
// published afterwards; theme and width are applied by the program. A
// non-nil err leaves the current configuration in place.
// It is safe to call from any goroutine.
func (a *App) Reload(cfg *config.Config, err error) {
	if err == nil && cfg != nil {
		a.mu.Lock()
		a.cfg = cfg
		a.mu.Unlock()
	}
	a.forwarder.Post(ConfigReloadedMsg{Config: cfg, Err: err})
}

// Run runs the program until the user quits or ctx is cancelled. All pending
// auto-dismiss timers are cancelled on return.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.progOpts...)
	p := tea.NewProgram(a.model, opts...)
	a.forwarder.Start(p)
	a.logger.Info("program started", "scenarios", scenario.Names(a.model.scenarios))

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		a.logger.Info("program stopped", "reason", ctx.Err().Error())
		return nil
	}
	return err
}

func (a *App) shutdown() {
	a.unsubscribe()
	a.driver.Close()
	a.forwarder.Close()
	a.zones.Close()
	a.logger.Info("program exited", "active_toasts", a.store.Len())
}
