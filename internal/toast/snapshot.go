package toast

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Snapshot is an immutable view of the active toasts at one point in time,
// in insertion order. The zero value is an empty snapshot.
type Snapshot struct {
	version  uint64
	messages []Message
}

// Version increases by one with every store mutation.
func (s Snapshot) Version() uint64 { return s.version }

// Len returns the number of messages.
func (s Snapshot) Len() int { return len(s.messages) }

// At returns the i-th message. It panics if i is out of range.
func (s Snapshot) At(i int) Message { return s.messages[i] }

// Messages returns a copy of the messages.
func (s Snapshot) Messages() []Message { return slices.Clone(s.messages) }

// All iterates over the messages in order.
func (s Snapshot) All() iter.Seq2[int, Message] {
	return func(yield func(int, Message) bool) {
		for i, m := range s.messages {
			if !yield(i, m) {
				return
			}
		}
	}
}

// IDs returns the message IDs in order.
func (s Snapshot) IDs() []string {
	return lo.Map(s.messages, func(m Message, _ int) string { return m.ID })
}

// Index returns the position of the message with the given ID, or -1.
func (s Snapshot) Index(id string) int {
	return slices.IndexFunc(s.messages, func(m Message) bool { return m.ID == id })
}

// Contains reports whether a message with the given ID is active.
func (s Snapshot) Contains(id string) bool {
	return s.Index(id) >= 0
}

// Get returns the message with the given ID.
func (s Snapshot) Get(id string) (Message, bool) {
	if i := s.Index(id); i >= 0 {
		return s.messages[i], true
	}
	return Message{}, false
}

// Last returns the most recently published message.
func (s Snapshot) Last() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
