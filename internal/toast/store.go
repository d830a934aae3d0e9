package toast

import (
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Iron-Ham/toaster/internal/logging"
	"github.com/samber/lo"
)

// maxIDAttempts bounds how often a colliding generator is retried before the
// store falls back to random UUIDs.
const maxIDAttempts = 8

// Subscriber receives every snapshot produced by the store.
type Subscriber func(Snapshot)

type subscription struct {
	id     uint64
	fn     Subscriber
	active atomic.Bool
}

// Store holds the ordered set of active toasts.
//
// All methods are safe for concurrent use. Mutations are applied under a
// mutex; notifications are delivered outside it by a single drain loop, so a
// subscriber may call Publish or Remove from its callback. Such re-entrant
// mutations take effect immediately and their snapshots are delivered after
// the current one.
type Store struct {
	mu       sync.Mutex
	messages []Message
	version  uint64

	subs      []*subscription
	nextSubID uint64

	// pending holds snapshots produced but not yet delivered.
	pending  []Snapshot
	draining bool
	closed   bool

	ids    IDGenerator
	now    func() time.Time
	logger *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithLogger sets the logger used for store diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock sets the clock used to stamp Message.CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		ids:    UUIDGenerator{},
		now:    time.Now,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("store")
	return s
}

// Publish validates data, appends a new message to the tail of the sequence
// and notifies subscribers. It returns the ID assigned to the message.
//
// A title-less message is never stored; the returned error wraps
// ErrInvalidMessage.
func (s *Store) Publish(data Data) (string, error) {
	if err := data.Validate(); err != nil {
		s.logger.Warn("rejected toast", "error", err.Error())
		return "", err
	}

	s.mu.Lock()
	msg := Message{
		ID:          s.uniqueIDLocked(),
		Category:    data.Category.OrDefault(),
		Title:       data.Title,
		Description: data.Description,
		CreatedAt:   s.now(),
	}

	next := make([]Message, len(s.messages), len(s.messages)+1)
	copy(next, s.messages)
	next = append(next, msg)

	s.logger.WithToast(msg.ID).Debug("published toast",
		"category", msg.Category.String(),
		"title", msg.Title,
	)
	s.commit(next)
	return msg.ID, nil
}

// Remove drops the message with the given ID and notifies subscribers.
// Removing an ID that is not active leaves the content unchanged and is not
// an error, so redundant calls (timer and manual dismissal) are harmless.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	next := lo.Filter(s.messages, func(m Message, _ int) bool { return m.ID != id })
	if len(next) == len(s.messages) {
		s.logger.WithToast(id).Debug("remove of inactive toast ignored")
	} else {
		s.logger.WithToast(id).Debug("removed toast")
	}
	s.commit(next)
}

// Subscribe registers fn to be called with every new snapshot. The returned
// function deregisters it; calling it more than once is harmless.
// Subscribing to a closed store returns a no-op handle.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || fn == nil {
		return func() {}
	}

	s.nextSubID++
	sub := &subscription{id: s.nextSubID, fn: fn}
	sub.active.Store(true)
	s.subs = append(s.subs, sub)

	return func() { s.unsubscribe(sub) }
}

func (s *Store) unsubscribe(sub *subscription) {
	if !sub.active.CompareAndSwap(true, false) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = slices.DeleteFunc(s.subs, func(other *subscription) bool { return other == sub })
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{version: s.version, messages: s.messages}
}

// Len returns the number of active messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// SubscriberCount returns the number of registered subscribers.
func (s *Store) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close deregisters every subscriber. The store stays usable; later mutations
// simply notify nobody and new subscriptions are refused.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subs {
		sub.active.Store(false)
	}
	s.subs = nil
	s.closed = true
}

// uniqueIDLocked returns an ID not used by any active message.
// Must be called with s.mu held.
func (s *Store) uniqueIDLocked() string {
	gen := s.ids
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			s.logger.Warn("id generator keeps colliding, falling back to UUIDs")
			gen = UUIDGenerator{}
		}
		id := gen.NewID()
		if id != "" && !slices.ContainsFunc(s.messages, func(m Message) bool { return m.ID == id }) {
			return id
		}
	}
}

// commit installs next as the current sequence and delivers the resulting
// snapshot to subscribers. It must be called with s.mu held and returns with
// s.mu released.
//
// If another goroutine (or an outer frame of this one) is already draining,
// the snapshot is queued and delivered by that drain loop, which preserves
// production order for every subscriber.
func (s *Store) commit(next []Message) {
	s.messages = next
	s.version++
	s.pending = append(s.pending, Snapshot{version: s.version, messages: next})

	if s.draining {
		s.mu.Unlock()
		return
	}

	s.draining = true
	for len(s.pending) > 0 {
		snap := s.pending[0]
		s.pending = s.pending[1:]
		subs := slices.Clone(s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			if sub.active.Load() {
				s.safeCall(sub, snap)
			}
		}

		s.mu.Lock()
	}
	s.pending = nil
	s.draining = false
	s.mu.Unlock()
}

// safeCall invokes a subscriber and recovers from any panic so one
// misbehaving subscriber cannot block delivery to the others.
func (s *Store) safeCall(sub *subscription, snap Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("toast subscriber panicked",
				"subscriber", sub.id,
				"version", snap.version,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()
	sub.fn(snap)
}
