// Package lifecycle drives the on-screen lifetime of each toast.
//
// A [Lifecycle] is a small state machine owned by the render layer, one per
// active message:
//
//	Entering -> Visible -> Exiting -> Removed
//
// Entering and Exiting model presentation transitions of configurable length
// (zero by default). On reaching Visible the lifecycle schedules a one-shot
// auto-dismiss task ([DefaultVisibleDuration], 3s). Whichever comes first,
// the task firing or a manual [Lifecycle.Dismiss], drives Exiting -> Removed
// and calls Remove on the store exactly once. Every other path out
// ([Lifecycle.Stop]) cancels the pending task without touching the store.
//
// [Driver] binds lifecycles to a [toast.Store]: it starts one for every new
// message, stops those whose message disappeared, and tears all of them down
// on Close.
//
// Time is abstracted behind [Scheduler] so tests can advance a manual clock.
package lifecycle
