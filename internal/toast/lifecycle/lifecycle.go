package lifecycle

import (
	"sync"
	"time"

	"github.com/Iron-Ham/toaster/internal/logging"
)

// DefaultVisibleDuration is how long a toast stays visible before it is
// dismissed automatically.
const DefaultVisibleDuration = 3000 * time.Millisecond

// Timings configures the phase durations of a lifecycle.
// Zero Enter or Exit means the transition completes immediately.
type Timings struct {
	Enter   time.Duration
	Visible time.Duration
	Exit    time.Duration
}

// DefaultTimings returns instant transitions and the 3s auto-dismiss.
func DefaultTimings() Timings {
	return Timings{Visible: DefaultVisibleDuration}
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithTimings overrides the phase durations. A non-positive Visible duration
// keeps the default.
func WithTimings(t Timings) Option {
	return func(l *Lifecycle) {
		if t.Visible <= 0 {
			t.Visible = DefaultVisibleDuration
		}
		l.timings = t
	}
}

// WithScheduler replaces the system timer.
func WithScheduler(s Scheduler) Option {
	return func(l *Lifecycle) {
		if s != nil {
			l.sched = s
		}
	}
}

// WithObserver registers fn to be told about every transition. fn is called
// without internal locks held, possibly from a timer goroutine.
func WithObserver(fn func(Transition)) Option {
	return func(l *Lifecycle) {
		l.observer = fn
	}
}

// WithLogger sets the logger for transition diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(l *Lifecycle) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Lifecycle is the per-toast state machine. It owns at most one pending
// scheduled task at a time and calls Remove on its remover at most once.
// It is safe for concurrent use.
type Lifecycle struct {
	id       string
	remover  Remover
	timings  Timings
	sched    Scheduler
	observer func(Transition)
	logger   *logging.Logger

	mu      sync.Mutex
	state   State
	started bool
	pending Timer
	// gen invalidates callbacks of tasks that were cancelled after they had
	// already been handed to their goroutine.
	gen uint64
}

// New creates a lifecycle for the toast id in StateEntering. Nothing is
// scheduled until Start.
func New(id string, remover Remover, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		id:      id,
		remover: remover,
		timings: DefaultTimings(),
		sched:   SystemScheduler{},
		logger:  logging.NopLogger(),
		state:   StateEntering,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.WithComponent("lifecycle").WithToast(id)
	return l
}

// ID returns the toast ID this lifecycle drives.
func (l *Lifecycle) ID() string {
	return l.id
}

// State returns the current state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Start begins timing. The entrance transition runs for Timings.Enter, after
// which the toast becomes visible and the auto-dismiss task is armed.
// Calling Start more than once, or after Dismiss or Stop, does nothing.
func (l *Lifecycle) Start() {
	l.mu.Lock()
	if l.started || l.state != StateEntering {
		l.mu.Unlock()
		return
	}
	l.started = true

	if l.timings.Enter > 0 {
		l.scheduleLocked(l.timings.Enter, l.entered)
		l.mu.Unlock()
		return
	}

	t := l.showLocked()
	l.mu.Unlock()
	l.emit(t)
}

// Dismiss is the user-initiated removal. It cancels the pending task and runs
// the exit transition right away. It returns false if the toast is already
// exiting or removed, in which case nothing happens.
func (l *Lifecycle) Dismiss() bool {
	l.mu.Lock()
	if l.state == StateExiting || l.state == StateRemoved {
		l.mu.Unlock()
		return false
	}
	l.started = true
	l.cancelLocked()
	l.logger.Debug("dismissed manually", "from", l.state.String())
	l.exitLocked()
	return true
}

// Stop tears the lifecycle down without removing the message: the pending
// task is cancelled and the state becomes StateRemoved. Use it when the
// message was removed by another path or the render surface goes away.
func (l *Lifecycle) Stop() {
	l.mu.Lock()
	if l.state == StateRemoved {
		l.mu.Unlock()
		return
	}
	l.cancelLocked()
	t := l.setLocked(StateRemoved)
	l.mu.Unlock()
	l.emit(t)
}

// entered completes the entrance transition.
func (l *Lifecycle) entered(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.state != StateEntering {
		l.mu.Unlock()
		return
	}
	l.pending = nil
	t := l.showLocked()
	l.mu.Unlock()
	l.emit(t)
}

// expired handles the auto-dismiss task.
func (l *Lifecycle) expired(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.state != StateVisible {
		l.mu.Unlock()
		return
	}
	l.pending = nil
	l.logger.Debug("auto-dismiss fired", "after", l.timings.Visible.String())
	l.exitLocked()
}

// exited completes a delayed exit transition.
func (l *Lifecycle) exited(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || l.state != StateExiting {
		l.mu.Unlock()
		return
	}
	l.pending = nil
	t := l.setLocked(StateRemoved)
	l.mu.Unlock()
	l.emit(t)
	l.remover.Remove(l.id)
}

// showLocked moves to StateVisible and arms the auto-dismiss task.
func (l *Lifecycle) showLocked() Transition {
	t := l.setLocked(StateVisible)
	l.scheduleLocked(l.timings.Visible, l.expired)
	return t
}

// exitLocked enters StateExiting and, when the exit transition is instant,
// finishes the removal. It must be called with l.mu held and returns with it
// released.
func (l *Lifecycle) exitLocked() {
	exiting := l.setLocked(StateExiting)
	if l.timings.Exit > 0 {
		l.scheduleLocked(l.timings.Exit, l.exited)
		l.mu.Unlock()
		l.emit(exiting)
		return
	}

	removed := l.setLocked(StateRemoved)
	l.mu.Unlock()
	l.emit(exiting, removed)
	l.remover.Remove(l.id)
}

func (l *Lifecycle) scheduleLocked(d time.Duration, fn func(gen uint64)) {
	l.cancelLocked()
	gen := l.gen
	l.pending = l.sched.AfterFunc(d, func() { fn(gen) })
}

func (l *Lifecycle) cancelLocked() {
	if l.pending != nil {
		l.pending.Stop()
		l.pending = nil
	}
	l.gen++
}

func (l *Lifecycle) setLocked(to State) Transition {
	t := Transition{ID: l.id, From: l.state, To: to}
	l.state = to
	l.logger.Debug("toast transition", "from", t.From.String(), "to", t.To.String())
	return t
}

func (l *Lifecycle) emit(ts ...Transition) {
	if l.observer == nil {
		return
	}
	for _, t := range ts {
		l.observer(t)
	}
}
