// Package toasts renders the active toast stack as a bubbletea component.
//
// The component is fed by two message types: SnapshotMsg carries the store's
// latest snapshot and TransitionMsg carries lifecycle state changes. Keyboard
// and mouse dismissals are forwarded to a Dismisser, normally the lifecycle
// driver, so the pending auto-dismiss timer is cancelled.
package toasts
