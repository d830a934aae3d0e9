// Package testutil provides testing utilities for toaster tests.
package testutil

import (
	"sync"
	"time"

	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
)

// ManualScheduler is a lifecycle.Scheduler driven by an explicit clock.
// Tasks run synchronously inside Advance, in due-time order, on the caller's
// goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner   *ManualScheduler
	at      time.Duration
	seq     int
	fn      func()
	fired   bool
	stopped bool
}

// Stop cancels the task if it has not run yet.
func (t *manualTask) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) lifecycle.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTask{owner: s, at: s.now + d, seq: s.seq, fn: f}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d and runs every task that becomes due,
// including tasks scheduled by tasks that ran during this call.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.at
		next.fired = true
		s.mu.Unlock()

		next.fn()
	}
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTask {
	var next *manualTask
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.fired || t.stopped {
			continue
		}
		live = append(live, t)
		if t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	s.tasks = live
	return next
}

// Elapsed returns how far the clock has advanced.
func (s *ManualScheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of scheduled tasks that have neither run nor
// been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}
