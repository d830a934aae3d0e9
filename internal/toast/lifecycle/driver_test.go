package lifecycle_test

import (
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/toaster/internal/testutil"
	"github.com/Iron-Ham/toaster/internal/toast"
	"github.com/Iron-Ham/toaster/internal/toast/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriverFixture(t *testing.T, opts ...lifecycle.DriverOption) (*toast.Store, *testutil.ManualScheduler, *lifecycle.Driver) {
	t.Helper()
	store := toast.NewStore()
	sched := testutil.NewManualScheduler()
	opts = append([]lifecycle.DriverOption{
		lifecycle.WithLifecycleOptions(lifecycle.WithScheduler(sched)),
	}, opts...)
	driver := lifecycle.NewDriver(store, opts...)
	t.Cleanup(driver.Close)
	return store, sched, driver
}

func publish(t *testing.T, store *toast.Store, title string) string {
	t.Helper()
	id, err := store.Publish(toast.Data{Category: toast.CategoryInfo, Title: title})
	require.NoError(t, err)
	return id
}

func TestDriverAutoDismissesAfterThreeSeconds(t *testing.T) {
	store, sched, driver := newDriverFixture(t)

	id := publish(t, store, "Saved")
	require.Equal(t, 1, driver.Len())
	state, ok := driver.State(id)
	require.True(t, ok)
	require.Equal(t, lifecycle.StateVisible, state)

	sched.Advance(2999 * time.Millisecond)
	require.True(t, store.Snapshot().Contains(id))

	sched.Advance(time.Millisecond)
	assert.False(t, store.Snapshot().Contains(id))
	assert.Zero(t, driver.Len())
	assert.Zero(t, sched.Pending())
}

func TestDriverTimersAreIndependent(t *testing.T) {
	store, sched, _ := newDriverFixture(t)

	first := publish(t, store, "first")
	sched.Advance(time.Second)
	second := publish(t, store, "second")

	sched.Advance(2 * time.Second)
	snap := store.Snapshot()
	assert.False(t, snap.Contains(first), "first expires at T+3000ms")
	assert.True(t, snap.Contains(second))

	sched.Advance(999 * time.Millisecond)
	assert.True(t, store.Snapshot().Contains(second))

	sched.Advance(time.Millisecond)
	assert.Zero(t, store.Len())
}

func TestDriverManualDismissRemovesOnce(t *testing.T) {
	store, sched, driver := newDriverFixture(t)

	id := publish(t, store, "Sign-up failed")

	var mu sync.Mutex
	var versions []uint64
	unsubscribe := store.Subscribe(func(s toast.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		versions = append(versions, s.Version())
	})
	defer unsubscribe()

	sched.Advance(500 * time.Millisecond)
	require.True(t, driver.Dismiss(id))
	require.False(t, store.Snapshot().Contains(id))
	require.False(t, driver.Dismiss(id), "dismissed toast is no longer tracked")

	sched.Advance(10 * time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, versions, 1, "the cancelled auto-dismiss must not remove again")
}

func TestDriverDismissUnknownID(t *testing.T) {
	_, _, driver := newDriverFixture(t)
	assert.False(t, driver.Dismiss("missing"))
	_, ok := driver.State("missing")
	assert.False(t, ok)
}

func TestDriverDismissAll(t *testing.T) {
	store, sched, driver := newDriverFixture(t)

	for _, title := range []string{"a", "b", "c"} {
		publish(t, store, title)
	}
	require.Equal(t, 3, driver.Len())

	assert.Equal(t, 3, driver.DismissAll())
	assert.Zero(t, store.Len())
	assert.Zero(t, driver.Len())
	assert.Zero(t, sched.Pending())
}

func TestDriverStopsLifecycleOnExternalRemove(t *testing.T) {
	store, sched, driver := newDriverFixture(t)

	id := publish(t, store, "gone")
	require.Equal(t, 1, sched.Pending())

	store.Remove(id)

	assert.Zero(t, driver.Len())
	assert.Zero(t, sched.Pending(), "removing the message must cancel its timer")
}

func TestDriverCloseCancelsTimers(t *testing.T) {
	store, sched, driver := newDriverFixture(t)

	for _, title := range []string{"a", "b", "c"} {
		publish(t, store, title)
	}
	driver.Close()
	driver.Close()

	assert.Zero(t, sched.Pending())
	assert.Zero(t, driver.Len())

	sched.Advance(time.Minute)
	assert.Equal(t, 3, store.Len(), "closing the driver leaves messages in place")

	publish(t, store, "after close")
	assert.Zero(t, driver.Len())
}

func TestDriverAdoptsExistingMessages(t *testing.T) {
	store := toast.NewStore()
	id := publish(t, store, "early")

	sched := testutil.NewManualScheduler()
	driver := lifecycle.NewDriver(store, lifecycle.WithLifecycleOptions(lifecycle.WithScheduler(sched)))
	defer driver.Close()

	require.Equal(t, 1, driver.Len())
	sched.Advance(lifecycle.DefaultVisibleDuration)
	assert.False(t, store.Snapshot().Contains(id))
}

func TestDriverTimingsSource(t *testing.T) {
	visible := 3 * time.Second
	store, sched, _ := newDriverFixture(t, lifecycle.WithTimingsSource(func() lifecycle.Timings {
		return lifecycle.Timings{Visible: visible}
	}))

	first := publish(t, store, "first")
	visible = time.Second
	second := publish(t, store, "second")

	sched.Advance(time.Second)
	assert.True(t, store.Snapshot().Contains(first))
	assert.False(t, store.Snapshot().Contains(second))

	sched.Advance(2 * time.Second)
	assert.Zero(t, store.Len())
}

func TestDriverTransitionHandler(t *testing.T) {
	var mu sync.Mutex
	var got []lifecycle.Transition
	store, sched, _ := newDriverFixture(t, lifecycle.WithTransitionHandler(func(tr lifecycle.Transition) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, tr)
	}))

	id := publish(t, store, "watched")
	sched.Advance(lifecycle.DefaultVisibleDuration)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	assert.Equal(t, lifecycle.Transition{ID: id, From: lifecycle.StateEntering, To: lifecycle.StateVisible}, got[0])
	assert.Equal(t, lifecycle.Transition{ID: id, From: lifecycle.StateVisible, To: lifecycle.StateExiting}, got[1])
	assert.Equal(t, lifecycle.Transition{ID: id, From: lifecycle.StateExiting, To: lifecycle.StateRemoved}, got[2])
}
