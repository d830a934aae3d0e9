package lifecycle

import (
	"sync"

	"github.com/Iron-Ham/toaster/internal/logging"
	"github.com/Iron-Ham/toaster/internal/toast"
)

// Store is the part of toast.Store the driver depends on.
type Store interface {
	Remover
	Subscribe(fn toast.Subscriber) (unsubscribe func())
	Snapshot() toast.Snapshot
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLifecycleOptions applies opts to every lifecycle the driver creates.
func WithLifecycleOptions(opts ...Option) DriverOption {
	return func(d *Driver) {
		d.lifecycleOpts = append(d.lifecycleOpts, opts...)
	}
}

// WithTimingsSource makes the driver ask fn for the timings of each new
// lifecycle, so configuration changes apply to toasts published afterwards.
func WithTimingsSource(fn func() Timings) DriverOption {
	return func(d *Driver) {
		d.timings = fn
	}
}

// WithTransitionHandler forwards every lifecycle transition to fn.
func WithTransitionHandler(fn func(Transition)) DriverOption {
	return func(d *Driver) {
		d.onTransition = fn
	}
}

// WithDriverLogger sets the logger used by the driver and its lifecycles.
func WithDriverLogger(logger *logging.Logger) DriverOption {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Driver keeps exactly one running Lifecycle per active message of a store.
type Driver struct {
	store         Store
	lifecycleOpts []Option
	timings       func() Timings
	onTransition  func(Transition)
	logger        *logging.Logger

	mu          sync.Mutex
	lifecycles  map[string]*Lifecycle
	version     uint64
	synced      bool
	closed      bool
	unsubscribe func()
}

// NewDriver subscribes to store and adopts the messages already active.
func NewDriver(store Store, opts ...DriverOption) *Driver {
	d := &Driver{
		store:      store,
		logger:     logging.NopLogger(),
		lifecycles: make(map[string]*Lifecycle),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.unsubscribe = store.Subscribe(d.sync)
	d.sync(store.Snapshot())
	return d
}

// sync reconciles running lifecycles with snap: new messages get a started
// lifecycle, vanished messages get their lifecycle stopped.
func (d *Driver) sync(snap toast.Snapshot) {
	d.mu.Lock()
	if d.closed || (d.synced && snap.Version() <= d.version) {
		d.mu.Unlock()
		return
	}
	d.synced = true
	d.version = snap.Version()

	var started, stopped []*Lifecycle
	for _, msg := range snap.All() {
		if _, ok := d.lifecycles[msg.ID]; ok {
			continue
		}
		lc := New(msg.ID, d.store, d.optionsLocked()...)
		d.lifecycles[msg.ID] = lc
		started = append(started, lc)
	}
	for id, lc := range d.lifecycles {
		if !snap.Contains(id) {
			delete(d.lifecycles, id)
			stopped = append(stopped, lc)
		}
	}
	d.mu.Unlock()

	for _, lc := range stopped {
		lc.Stop()
	}
	for _, lc := range started {
		lc.Start()
	}
}

func (d *Driver) optionsLocked() []Option {
	opts := make([]Option, 0, len(d.lifecycleOpts)+3)
	opts = append(opts, WithLogger(d.logger))
	opts = append(opts, d.lifecycleOpts...)
	if d.timings != nil {
		opts = append(opts, WithTimings(d.timings()))
	}
	if d.onTransition != nil {
		opts = append(opts, WithObserver(d.onTransition))
	}
	return opts
}

// Dismiss manually dismisses the toast with the given ID. It returns false if
// the ID is not tracked or the toast is already on its way out.
func (d *Driver) Dismiss(id string) bool {
	d.mu.Lock()
	lc := d.lifecycles[id]
	d.mu.Unlock()

	if lc == nil {
		return false
	}
	return lc.Dismiss()
}

// DismissAll dismisses every tracked toast and returns how many accepted.
func (d *Driver) DismissAll() int {
	d.mu.Lock()
	all := make([]*Lifecycle, 0, len(d.lifecycles))
	for _, lc := range d.lifecycles {
		all = append(all, lc)
	}
	d.mu.Unlock()

	n := 0
	for _, lc := range all {
		if lc.Dismiss() {
			n++
		}
	}
	return n
}

// State returns the lifecycle state of a tracked toast.
func (d *Driver) State(id string) (State, bool) {
	d.mu.Lock()
	lc := d.lifecycles[id]
	d.mu.Unlock()

	if lc == nil {
		return StateRemoved, false
	}
	return lc.State(), true
}

// Len returns the number of tracked lifecycles.
func (d *Driver) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.lifecycles)
}

// Close unsubscribes from the store and stops every lifecycle, cancelling all
// pending auto-dismiss tasks. Messages stay in the store.
func (d *Driver) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	all := d.lifecycles
	d.lifecycles = make(map[string]*Lifecycle)
	unsubscribe := d.unsubscribe
	d.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	for _, lc := range all {
		lc.Stop()
	}
	d.logger.Debug("lifecycle driver closed", "stopped", len(all))
}
