package tui

import (
	"errors"
	"testing"

	"github.com/Iron-Ham/toaster/internal/config"
	"github.com/Iron-Ham/toaster/internal/scenario"
	"github.com/Iron-Ham/toaster/internal/testutil"
	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
	"github.com/Iron-Ham/toaster/internal/tui/keymap"
	"github.com/Iron-Ham/toaster/internal/tui/signup"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/Iron-Ham/toaster/internal/tui/toasts"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	store  *toast.Store
	driver *lifecycle.Driver
	sched  *testutil.ManualScheduler
	model  Model
}

func newHarness(t *testing.T, scenarios ...scenario.Scenario) *harness {
	t.Helper()

	h := &harness{store: toast.NewStore(), sched: testutil.NewManualScheduler()}
	h.driver = lifecycle.NewDriver(h.store,
		lifecycle.WithLifecycleOptions(lifecycle.WithScheduler(h.sched)),
	)
	t.Cleanup(h.driver.Close)

	h.model = NewModel(ModelOptions{
		Publisher: h.store,
		Dismisser: h.driver,
		Submitter: signup.NewSubmitter(h.store, signup.NewMemoryRegistrar(0), nil),
		Scenarios: scenarios,
	})
	return h
}

// send feeds msg to the model and returns the command it produced.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

// sync hands the store's current snapshot to the model.
func (h *harness) sync() {
	h.send(toasts.SnapshotMsg{Snapshot: h.store.Snapshot()})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func useDefaultTheme(t *testing.T) {
	t.Helper()
	styles.SetActiveTheme(styles.ThemeDefault)
	t.Cleanup(func() { styles.SetActiveTheme(styles.ThemeDefault) })
}

func TestModelFocusAndLeaveForm(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, keymap.ModeNormal, h.model.Mode())

	h.send(runes("i"))
	assert.Equal(t, keymap.ModeForm, h.model.Mode())
	assert.True(t, h.model.Form().Focused())

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, keymap.ModeNormal, h.model.Mode())
	assert.False(t, h.model.Form().Focused())
}

func TestModelTypingInFormDoesNotDismiss(t *testing.T) {
	h := newHarness(t)
	_, err := h.store.Publish(toast.Data{Title: "stay"})
	require.NoError(t, err)
	h.sync()

	h.send(runes("i"))
	for _, r := range "xq" {
		h.send(runes(string(r)))
	}

	assert.Equal(t, "xq", h.model.Form().Values().Name)
	assert.Equal(t, 1, h.store.Len())
	assert.Equal(t, keymap.ModeForm, h.model.Mode())
}

func TestModelDismissNewest(t *testing.T) {
	h := newHarness(t)
	_, err := h.store.Publish(toast.Data{Title: "old"})
	require.NoError(t, err)
	_, err = h.store.Publish(toast.Data{Title: "new"})
	require.NoError(t, err)
	h.sync()

	cmd := h.send(runes("x"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(toasts.DismissedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, msg.Accepted)

	snap := h.store.Snapshot()
	require.Equal(t, 1, snap.Len())
	assert.Equal(t, "old", snap.At(0).Title)
}

func TestModelDismissAll(t *testing.T) {
	h := newHarness(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := h.store.Publish(toast.Data{Title: title})
		require.NoError(t, err)
	}
	h.sync()

	cmd := h.send(runes("X"))
	require.NotNil(t, cmd)
	msg := cmd().(toasts.DismissedMsg)
	assert.Equal(t, 3, msg.Accepted)
	assert.Zero(t, h.store.Len())
	assert.Zero(t, h.sched.Pending())
}

func TestModelSubmitEmptyFormPublishesErrors(t *testing.T) {
	h := newHarness(t)

	h.send(runes("i"))
	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, h.model.Form().Submitting())

	submitted, ok := cmd().(signup.SubmittedMsg)
	require.True(t, ok)
	h.send(submitted)

	assert.False(t, h.model.Form().Submitting())
	assert.Len(t, h.model.Form().Errors(), 3)

	snap := h.store.Snapshot()
	require.Equal(t, 4, snap.Len())
	for _, m := range snap.All() {
		assert.Equal(t, toast.CategoryError, m.Category)
		assert.Equal(t, signup.FailureTitle, m.Title)
	}
	assert.False(t, snap.At(3).HasDescription())
}

func TestModelPublishMsg(t *testing.T) {
	h := newHarness(t)
	s := scenario.Scenario{Name: "two", Steps: []scenario.Step{
		{Data: toast.Data{Title: "first"}},
		{Data: toast.Data{Title: "second"}},
	}}
	h.model.scenarios = []scenario.Scenario{s}

	cmd := h.send(runes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, h.model.Playing())

	// Drive the chain by hand.
	for cmd != nil {
		cmd = h.send(cmd())
	}

	assert.Equal(t, 2, h.store.Len())
	assert.Zero(t, h.model.Playing())
}

func TestModelPublishRejectedStepKeepsPlaying(t *testing.T) {
	h := newHarness(t)

	next := func() tea.Msg { return nil }
	cmd := h.send(scenario.PublishMsg{Scenario: "bad", Data: toast.Data{Title: " "}, Next: next})

	assert.Zero(t, h.store.Len())
	assert.NotNil(t, cmd, "a rejected step still schedules the next one")
}

func TestModelPlayWithoutScenarios(t *testing.T) {
	h := newHarness(t)

	assert.Nil(t, h.send(runes("p")))
	assert.Zero(t, h.model.Playing())
}

func TestModelAutoPlay(t *testing.T) {
	h := newHarness(t)
	assert.Nil(t, h.model.Init())

	h.model.autoPlay = true
	h.model.scenarios = scenario.Builtin()
	init := h.model.Init()
	require.NotNil(t, init)

	cmd := h.send(init())
	assert.NotNil(t, cmd)
	assert.Equal(t, len(scenario.Builtin()), h.model.Playing())
}

func TestModelCycleTheme(t *testing.T) {
	useDefaultTheme(t)
	h := newHarness(t)

	themes := styles.ValidThemes()
	h.send(runes("t"))
	assert.Equal(t, styles.ThemeName(themes[1]), styles.GetActiveTheme().Name)

	for range len(themes) - 1 {
		h.send(runes("t"))
	}
	assert.Equal(t, styles.ThemeDefault, styles.GetActiveTheme().Name, "cycling wraps around")
}

func TestModelConfigReload(t *testing.T) {
	useDefaultTheme(t)
	h := newHarness(t)

	cfg := config.Default()
	cfg.TUI.Theme = "nord"
	cfg.TUI.MaxWidth = 30
	h.send(ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, styles.ThemeName("nord"), styles.GetActiveTheme().Name)
	assert.Equal(t, 30, h.model.MaxWidth())

	h.send(ConfigReloadedMsg{Err: errors.New("bad file")})
	assert.Equal(t, styles.ThemeName("nord"), styles.GetActiveTheme().Name)
	assert.Equal(t, 30, h.model.MaxWidth())
}

func TestModelToggleHelp(t *testing.T) {
	h := newHarness(t)
	short := h.model.View()

	h.send(runes("?"))
	full := h.model.View()

	assert.NotEqual(t, short, full)
	assert.Contains(t, full, "next theme")
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, h.model.View())
}

func TestModelView(t *testing.T) {
	useDefaultTheme(t)
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := h.model.View()
	assert.Contains(t, out, "toaster")
	assert.Contains(t, out, "Create your account")
	assert.NotContains(t, out, "Saved")

	_, err := h.store.Publish(toast.Data{Category: toast.CategorySuccess, Title: "Saved"})
	require.NoError(t, err)
	h.sync()

	out = h.model.View()
	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, "1 toast")
	assert.Contains(t, out, "dismiss")

}

func TestModelTransitionsReachStack(t *testing.T) {
	h := newHarness(t)
	id, err := h.store.Publish(toast.Data{Title: "hi"})
	require.NoError(t, err)
	h.sync()

	h.send(toasts.TransitionMsg{Transition: lifecycle.Transition{ID: id, From: lifecycle.StateEntering, To: lifecycle.StateVisible}})
	assert.Equal(t, lifecycle.StateVisible, h.model.Toasts().State(id))
}
