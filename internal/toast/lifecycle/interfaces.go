package lifecycle

//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import "time"

// Remover drops a message from the active set. toast.Store implements it.
// Implementations must treat removal of an absent ID as a no-op.
type Remover interface {
	Remove(id string)
}

// Timer is a handle to a scheduled task.
type Timer interface {
	// Stop cancels the task. It returns false if the task already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler runs a function once after a delay. The function may run on any
// goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
