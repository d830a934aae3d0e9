package toasts

import (
	"strings"

	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
	"github.com/Iron-Ham/toaster/internal/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/samber/lo"
)

// DefaultMaxWidth is the default outer width of a toast box.
const DefaultMaxWidth = 48

// minWidth keeps room for the border, padding, icon and a few characters.
const minWidth = 12

// Dismisser performs manual dismissals. *lifecycle.Driver implements it.
type Dismisser interface {
	Dismiss(id string) bool
	DismissAll() int
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.Keys = k
	}
}

// WithMaxWidth sets the outer width limit of a toast box.
func WithMaxWidth(w int) Option {
	return func(m *Model) {
		m.SetMaxWidth(w)
	}
}

// WithZoneManager sets the bubblezone manager used for click-to-dismiss.
// The root view must pass its output through the same manager's Scan.
func WithZoneManager(z *zone.Manager) Option {
	return func(m *Model) {
		m.zones = z
	}
}

// Model renders the toast stack in snapshot order, oldest first.
type Model struct {
	Keys KeyMap

	dismisser Dismisser
	snap      toast.Snapshot
	// states is replaced, never written in place, so copies of a Model
	// keep the states they were taken with.
	states map[string]lifecycle.State

	zones      *zone.Manager
	zonePrefix string

	maxWidth  int
	termWidth int
}

// New creates a toast stack model that dismisses through d.
func New(d Dismisser, opts ...Option) Model {
	m := Model{
		Keys:      DefaultKeyMap(),
		dismisser: d,
		states:    make(map[string]lifecycle.State),
		maxWidth:  DefaultMaxWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.zones != nil {
		m.zonePrefix = m.zones.NewPrefix()
	}
	return m
}

// SetMaxWidth changes the outer width limit of a toast box.
func (m *Model) SetMaxWidth(w int) {
	m.maxWidth = max(w, minWidth)
}

// Snapshot returns the snapshot currently rendered.
func (m Model) Snapshot() toast.Snapshot {
	return m.snap
}

// Len returns the number of toasts on screen.
func (m Model) Len() int {
	return m.snap.Len()
}

// State returns the last known lifecycle state of a toast. Toasts whose
// lifecycle has not reported yet are entering.
func (m Model) State(id string) lifecycle.State {
	if s, ok := m.states[id]; ok {
		return s
	}
	return lifecycle.StateEntering
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles snapshots, transitions, dismissal keys and clicks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		m.applySnapshot(msg.Snapshot)

	case TransitionMsg:
		t := msg.Transition
		if t.To == lifecycle.StateRemoved {
			m.states = lo.OmitByKeys(m.states, []string{t.ID})
		} else {
			m.states = lo.Assign(m.states, map[string]lifecycle.State{t.ID: t.To})
		}

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Dismiss):
			if newest, ok := m.snap.Last(); ok {
				return m, m.dismiss(newest.ID)
			}
		case key.Matches(msg, m.Keys.DismissAll):
			if m.snap.Len() > 0 {
				return m, m.dismissAll()
			}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, ok := m.hit(msg); ok {
			return m, m.dismiss(id)
		}
	}
	return m, nil
}

func (m *Model) applySnapshot(snap toast.Snapshot) {
	if snap.Version() < m.snap.Version() {
		return
	}
	m.snap = snap
	m.states = lo.PickBy(m.states, func(id string, _ lifecycle.State) bool {
		return snap.Contains(id)
	})
}

// hit returns the toast whose zone contains the mouse event.
func (m Model) hit(msg tea.MouseMsg) (string, bool) {
	if m.zones == nil {
		return "", false
	}
	for _, t := range m.snap.All() {
		if z := m.zones.Get(m.zoneID(t.ID)); z != nil && z.InBounds(msg) {
			return t.ID, true
		}
	}
	return "", false
}

func (m Model) dismiss(id string) tea.Cmd {
	d := m.dismisser
	if d == nil {
		return nil
	}
	return func() tea.Msg {
		accepted := 0
		if d.Dismiss(id) {
			accepted = 1
		}
		return DismissedMsg{IDs: []string{id}, Accepted: accepted}
	}
}

func (m Model) dismissAll() tea.Cmd {
	d := m.dismisser
	if d == nil {
		return nil
	}
	ids := m.snap.IDs()
	return func() tea.Msg {
		return DismissedMsg{IDs: ids, Accepted: d.DismissAll()}
	}
}

func (m Model) zoneID(id string) string {
	return m.zonePrefix + id
}

// width returns the outer width of a toast box.
func (m Model) width() int {
	w := m.maxWidth
	if m.termWidth > 0 && m.termWidth < w {
		w = m.termWidth
	}
	return max(w, minWidth)
}

// View renders the stack. An empty stack renders as the empty string.
func (m Model) View() string {
	if m.snap.Len() == 0 {
		return ""
	}

	th := styles.GetActiveTheme()
	boxes := make([]string, 0, m.snap.Len())
	for _, msg := range m.snap.All() {
		box := m.renderToast(msg, th)
		if m.zones != nil {
			box = m.zones.Mark(m.zoneID(msg.ID), box)
		}
		boxes = append(boxes, box)
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m Model) renderToast(msg toast.Message, th *styles.ThemedStyles) string {
	v := visualFor(msg.Category, th)
	outer := m.width()
	// Border and horizontal padding take two columns each side.
	inner := outer - 4

	borderColor := v.Color
	titleStyle := th.ToastTitle
	iconStyle := lipgloss.NewStyle().Foreground(v.Color).Bold(true)
	state := m.State(msg.ID)
	if state == lifecycle.StateEntering || state == lifecycle.StateExiting {
		borderColor = th.MutedColor
		titleStyle = titleStyle.Foreground(th.MutedColor)
		iconStyle = th.Muted
	}

	titleWidth := inner - ansi.StringWidth(v.Icon) - 1
	lines := []string{iconStyle.Render(v.Icon) + " " + titleStyle.Render(ansi.Truncate(msg.Title, titleWidth, "…"))}
	if msg.HasDescription() {
		lines = append(lines, th.ToastBody.Render(ansi.Truncate(msg.Description, inner, "…")))
	}

	return th.ToastBox.
		BorderForeground(borderColor).
		Width(outer - 2).
		Render(strings.Join(lines, "\n"))
}
