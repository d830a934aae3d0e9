package lifecycle

// State is the phase of a toast's on-screen lifetime.
type State int

const (
	// StateEntering is the entrance transition right after publish.
	StateEntering State = iota
	// StateVisible means the toast is fully shown and its auto-dismiss task
	// is pending.
	StateVisible
	// StateExiting is the exit transition before removal.
	StateExiting
	// StateRemoved is terminal.
	StateRemoved
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateEntering:
		return "entering"
	case StateVisible:
		return "visible"
	case StateExiting:
		return "exiting"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transitions can happen.
func (s State) IsTerminal() bool {
	return s == StateRemoved
}

// Transition records one state change of one toast.
type Transition struct {
	ID   string
	From State
	To   State
}
