package tui

import (
	"slices"

	"github.com/Iron-Ham/toaster/internal/config"
	"github.com/Iron-Ham/toaster/internal/logging"
	"github.com/Iron-Ham/toaster/internal/scenario"
	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/tui/keymap"
	"github.com/Iron-Ham/toaster/internal/tui/signup"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/Iron-Ham/toaster/internal/tui/toasts"
	"github.com/Iron-Ham/toaster/internal/tui/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/samber/lo"
)

// Publisher is the part of toast.Store the model publishes scenario steps to.
type Publisher interface {
	Publish(data toast.Data) (string, error)
}

// ModelOptions holds the collaborators of the root model.
type ModelOptions struct {
	Publisher Publisher
	Dismisser toasts.Dismisser
	Submitter *signup.Submitter
	Keymap    *keymap.Keymap
	Zones     *zone.Manager
	Logger    *logging.Logger

	// Scenarios are played by the play command, and at startup when AutoPlay
	// is set.
	Scenarios []scenario.Scenario
	AutoPlay  bool

	MaxWidth int
}

// Model is the root model of the demo: the sign-up form with the toast stack
// beside it.
type Model struct {
	keymap *keymap.Keymap
	mode   keymap.Mode

	form   signup.Form
	toasts toasts.Model
	help   help.Model
	zones  *zone.Manager

	publisher Publisher
	scenarios []scenario.Scenario
	autoPlay  bool
	playing   int

	maxWidth int
	width    int
	height   int
	quitting bool

	logger *logging.Logger
}

// NewModel creates the root model.
func NewModel(opts ModelOptions) Model {
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = toasts.DefaultMaxWidth
	}

	toastOpts := []toasts.Option{toasts.WithMaxWidth(opts.MaxWidth)}
	if opts.Zones != nil {
		toastOpts = append(toastOpts, toasts.WithZoneManager(opts.Zones))
	}

	return Model{
		keymap:    opts.Keymap,
		mode:      keymap.ModeNormal,
		form:      signup.New(opts.Submitter),
		toasts:    toasts.New(opts.Dismisser, toastOpts...),
		help:      help.New(),
		zones:     opts.Zones,
		publisher: opts.Publisher,
		scenarios: opts.Scenarios,
		autoPlay:  opts.AutoPlay,
		maxWidth:  opts.MaxWidth,
		logger:    opts.Logger.WithComponent("tui"),
	}
}

// Mode returns the current input mode.
func (m Model) Mode() keymap.Mode {
	return m.mode
}

// Toasts returns the toast stack component.
func (m Model) Toasts() toasts.Model {
	return m.toasts
}

// Form returns the sign-up form component.
func (m Model) Form() signup.Form {
	return m.form
}

// MaxWidth returns the configured toast width limit.
func (m Model) MaxWidth() int {
	return m.maxWidth
}

// Playing returns the number of scenarios still playing.
func (m Model) Playing() int {
	return m.playing
}

// Init starts scenario playback when AutoPlay is set.
func (m Model) Init() tea.Cmd {
	if !m.autoPlay {
		return nil
	}
	return playCmd
}

// playCmd asks the model to start its scenarios. Starting them from Update
// keeps the playing count on the model.
func playCmd() tea.Msg { return playScenariosMsg{} }

type playScenariosMsg struct{}

// Update routes messages to the form and the toast stack.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case toasts.SnapshotMsg, toasts.TransitionMsg, toasts.DismissedMsg, tea.MouseMsg:
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case scenario.PublishMsg:
		return m.publish(msg)

	case playScenariosMsg:
		return m.play()

	case ConfigReloadedMsg:
		m.applyConfig(msg)
		return m, nil
	}

	// Submission results and cursor blinks belong to the form.
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if command, ok := m.keymap.Lookup(msg, m.mode); ok {
		return m.run(command)
	}

	var cmd tea.Cmd
	switch m.mode {
	case keymap.ModeForm:
		m.form, cmd = m.form.Update(msg)
	default:
		m.toasts, cmd = m.toasts.Update(msg)
	}
	return m, cmd
}

// run executes a keymap command.
func (m Model) run(command keymap.Command) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch command {
	case keymap.CmdFocusForm:
		m.mode = keymap.ModeForm
		m.form, cmd = m.form.Focus()
	case keymap.CmdLeaveForm:
		m.mode = keymap.ModeNormal
		m.form = m.form.Blur()
	case keymap.CmdNextField:
		m.form, cmd = m.form.NextField()
	case keymap.CmdPrevField:
		m.form, cmd = m.form.PrevField()
	case keymap.CmdSubmit:
		m.form, cmd = m.form.Submit()
	case keymap.CmdPlayScenarios:
		return m.play()
	case keymap.CmdCycleTheme:
		m.cycleTheme()
	case keymap.CmdToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) play() (tea.Model, tea.Cmd) {
	playable := lo.Filter(m.scenarios, func(s scenario.Scenario, _ int) bool { return len(s.Steps) > 0 })
	if len(playable) == 0 {
		return m, nil
	}
	m.playing += len(playable)
	m.logger.Info("playing scenarios", "scenarios", scenario.Names(playable))
	return m, scenario.PlayAll(playable)
}

func (m Model) publish(msg scenario.PublishMsg) (tea.Model, tea.Cmd) {
	if m.publisher != nil {
		if _, err := m.publisher.Publish(msg.Data); err != nil {
			m.logger.Warn("scenario step rejected",
				"scenario", msg.Scenario,
				"step", msg.Step,
				"error", err.Error(),
			)
		}
	}
	if msg.Next == nil {
		m.playing = max(m.playing-1, 0)
	}
	return m, msg.Next
}

// cycleTheme activates the theme after the current one.
func (m *Model) cycleTheme() {
	themes := styles.ValidThemes()
	current := string(styles.GetActiveTheme().Name)
	next := themes[(slices.Index(themes, current)+1)%len(themes)]
	styles.SetActiveTheme(styles.ThemeName(next))
	m.logger.Debug("theme changed", "theme", next)
}

func (m *Model) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		m.logger.Warn("config reload rejected", "error", msg.Err.Error())
		return
	}
	cfg := msg.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if string(styles.GetActiveTheme().Name) != cfg.TUI.Theme {
		styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))
	}
	m.maxWidth = cfg.TUI.MaxWidth
	m.logger.Info("config reloaded", "theme", cfg.TUI.Theme, "max_width", cfg.TUI.MaxWidth)
}

// View renders the header, the form and toast stack, and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	th := styles.GetActiveTheme()
	header := view.Header(view.HeaderState{
		Mode:    m.mode,
		Theme:   string(th.Name),
		Toasts:  m.toasts.Len(),
		Playing: m.playing,
	})

	// The stack takes the room left beside the form, which grows with
	// inline errors.
	form := m.form.View()
	stack := m.toasts
	stack.SetMaxWidth(view.StackWidth(m.width, lipgloss.Width(form), m.maxWidth))
	body := view.Body(form, stack.View(), m.width)

	h := m.help
	h.Styles.ShortKey = th.HelpKey
	h.Styles.ShortDesc = th.Help
	h.Styles.FullKey = th.HelpKey
	h.Styles.FullDesc = th.Help
	var extra []key.Binding
	if m.mode == keymap.ModeNormal {
		extra = m.toasts.Keys.ShortHelp()
	}
	helpView := h.View(m.keymap.Help(m.mode, extra...))

	out := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", helpView)
	if m.zones != nil {
		return m.zones.Scan(out)
	}
	return out
}
