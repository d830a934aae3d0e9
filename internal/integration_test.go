// Package internal holds tests that run the toast packages together with real
// timers.
package internal

import (
	"context"
	"testing"
	"time"

	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
	"github.com/Iron-Ham/toaster/internal/tui/signup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortVisible = 60 * time.Millisecond

func newDrivenStore(t *testing.T) (*toast.Store, *lifecycle.Driver) {
	t.Helper()
	store := toast.NewStore()
	driver := lifecycle.NewDriver(store,
		lifecycle.WithLifecycleOptions(lifecycle.WithTimings(lifecycle.Timings{Visible: shortVisible})),
	)
	t.Cleanup(driver.Close)
	return store, driver
}

// TestAutoDismissWithRealTimers publishes through the store and lets the
// system timer remove the toast.
func TestAutoDismissWithRealTimers(t *testing.T) {
	store, driver := newDrivenStore(t)

	removed := make(chan struct{})
	unsubscribe := store.Subscribe(func(s toast.Snapshot) {
		if s.Len() == 0 {
			close(removed)
		}
	})
	defer unsubscribe()

	start := time.Now()
	id, err := store.Publish(toast.Data{Category: toast.CategorySuccess, Title: "Saved"})
	require.NoError(t, err)

	state, ok := driver.State(id)
	require.True(t, ok)
	assert.Equal(t, lifecycle.StateVisible, state)

	select {
	case <-removed:
	case <-time.After(2 * time.Second):
		t.Fatal("toast was not removed automatically")
	}

	assert.GreaterOrEqual(t, time.Since(start), shortVisible)
	assert.Zero(t, driver.Len())
}

// TestManualDismissBeatsTimer dismisses before the timer fires and checks
// the message is removed exactly once.
func TestManualDismissBeatsTimer(t *testing.T) {
	store, driver := newDrivenStore(t)

	var snapshots int
	unsubscribe := store.Subscribe(func(toast.Snapshot) { snapshots++ })
	defer unsubscribe()

	id, err := store.Publish(toast.Data{Title: "Bye"})
	require.NoError(t, err)
	require.True(t, driver.Dismiss(id))
	assert.Zero(t, store.Len())

	time.Sleep(2 * shortVisible)
	assert.Equal(t, 2, snapshots, "one publish and one removal")
	assert.False(t, driver.Dismiss(id))
}

// TestSignupFailureToastsExpire submits an invalid form and waits for every
// resulting toast to expire.
func TestSignupFailureToastsExpire(t *testing.T) {
	store, driver := newDrivenStore(t)
	submitter := signup.NewSubmitter(store, signup.NewMemoryRegistrar(0), nil)

	res := submitter.Submit(context.Background(), signup.Fields{Email: "not-an-email", Password: "123"})
	require.False(t, res.OK())
	require.Len(t, res.ToastIDs, 4)
	assert.Equal(t, 4, driver.Len())

	require.Eventually(t, func() bool { return store.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, driver.Len())
}
