package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sourcegraph/conc"
)

// Sender delivers messages into a running program. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// Forwarder moves messages produced on other goroutines (store notifications,
// timer callbacks) into the program. Post never blocks; a single goroutine
// sends queued messages in the order they were posted.
type Forwarder struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []tea.Msg
	closed bool

	wg conc.WaitGroup
}

// NewForwarder creates a forwarder. Messages posted before Start are queued.
func NewForwarder() *Forwarder {
	f := &Forwarder{}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Post queues msg for delivery. Messages posted after Close are dropped.
func (f *Forwarder) Post(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.queue = append(f.queue, msg)
	f.cond.Signal()
}

// Start begins delivering queued messages to s.
func (f *Forwarder) Start(s Sender) {
	f.wg.Go(func() {
		for {
			batch, ok := f.next()
			if !ok {
				return
			}
			for _, msg := range batch {
				s.Send(msg)
			}
		}
	})
}

// next waits for queued messages and takes all of them. It returns false
// once the forwarder is closed.
func (f *Forwarder) next() ([]tea.Msg, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for len(f.queue) == 0 && !f.closed {
		f.cond.Wait()
	}
	if f.closed {
		return nil, false
	}
	batch := f.queue
	f.queue = nil
	return batch, true
}

// Pending returns the number of queued, undelivered messages.
func (f *Forwarder) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Close stops delivery, drops anything still queued and waits for the
// delivery goroutine to exit. The Sender must not block forever once the
// program has stopped; tea.Program.Send returns immediately in that case.
func (f *Forwarder) Close() {
	f.mu.Lock()
	f.closed = true
	f.queue = nil
	f.cond.Broadcast()
	f.mu.Unlock()

	f.wg.Wait()
}
