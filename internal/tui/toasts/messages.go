package toasts

import (
	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
)

// SnapshotMsg delivers a store snapshot to the model.
type SnapshotMsg struct {
	Snapshot toast.Snapshot
}

// TransitionMsg delivers a lifecycle transition to the model.
type TransitionMsg struct {
	Transition lifecycle.Transition
}

// DismissedMsg reports the outcome of a dismissal request.
type DismissedMsg struct {
	IDs      []string
	Accepted int
}
