// Package scenario provides scripted toast sequences for the demo. A scenario
// is a named list of steps, each publishing one toast after a delay.
package scenario

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Iron-Ham/toaster/internal/toast"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
	"github.com/samber/lo"
)

// Step publishes Data once Delay has passed since the previous step.
type Step struct {
	Delay time.Duration
	Data  toast.Data
}

// Scenario is a named, ordered list of steps.
type Scenario struct {
	Name        string
	Description string
	Steps       []Step
}

// Duration returns the time from the start of playback to the last step.
func (s Scenario) Duration() time.Duration {
	return lo.SumBy(s.Steps, func(st Step) time.Duration { return st.Delay })
}

// PublishMsg asks the receiver to publish one step. After publishing it
// should run Next, which schedules the following step (nil after the last).
type PublishMsg struct {
	Scenario string
	Step     int
	Data     toast.Data
	Next     tea.Cmd
}

// Play returns a command that emits the scenario's steps one PublishMsg at a
// time. Playback is driven by the receiver running each message's Next.
func Play(s Scenario) tea.Cmd {
	return stepCmd(s, 0)
}

// PlayAll plays scenarios concurrently.
func PlayAll(ss []Scenario) tea.Cmd {
	return tea.Batch(lo.Map(ss, func(s Scenario, _ int) tea.Cmd { return Play(s) })...)
}

func stepCmd(s Scenario, i int) tea.Cmd {
	if i >= len(s.Steps) {
		return nil
	}
	st := s.Steps[i]
	emit := func() tea.Msg {
		return PublishMsg{Scenario: s.Name, Step: i, Data: st.Data, Next: stepCmd(s, i+1)}
	}
	if st.Delay <= 0 {
		return emit
	}
	return tea.Tick(st.Delay, func(time.Time) tea.Msg { return emit() })
}

// Match returns the built-in scenarios whose name matches the glob pattern,
// in name order.
func Match(pattern string) ([]Scenario, error) {
	return MatchIn(Builtin(), pattern)
}

// MatchIn returns the scenarios of all whose name matches the glob pattern,
// in name order. An empty pattern matches everything.
func MatchIn(all []Scenario, pattern string) ([]Scenario, error) {
	if pattern == "" {
		pattern = "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario pattern %q: %w", pattern, err)
	}

	matched := lo.Filter(all, func(s Scenario, _ int) bool { return g.Match(s.Name) })
	slices.SortFunc(matched, func(a, b Scenario) int { return strings.Compare(a.Name, b.Name) })
	return matched, nil
}

// Names returns the names of ss.
func Names(ss []Scenario) []string {
	return lo.Map(ss, func(s Scenario, _ int) string { return s.Name })
}
