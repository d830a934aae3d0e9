// Package toast holds the active set of transient feedback messages
// ("toasts") shown to the user.
//
// [Store] is the single source of truth. Producers call [Store.Publish] once
// per user-facing event; the render surface subscribes with
// [Store.Subscribe] and draws whatever [Snapshot] it last received. Lifetime
// management (auto-dismiss, manual dismissal) lives in the lifecycle
// subpackage, which calls [Store.Remove].
//
// # Snapshots
//
// Subscribers never see the store's internal slice. Every mutation produces a
// new immutable [Snapshot] with a higher version, so a render in progress
// can never observe a half-applied change.
//
// # Ordering
//
// Notifications are delivered by one drain loop. Each subscriber sees every
// snapshot, in the order the mutations happened, even when mutations arrive
// from timer goroutines or from inside another subscriber's callback.
//
// # Basic Usage
//
//	store := toast.NewStore()
//	defer store.Close()
//
//	unsubscribe := store.Subscribe(func(s toast.Snapshot) {
//	    for _, m := range s.All() {
//	        fmt.Println(m.Category, m.Title)
//	    }
//	})
//	defer unsubscribe()
//
//	id, err := store.Publish(toast.Data{
//	    Category:    toast.CategorySuccess,
//	    Title:       "Sign-up complete",
//	    Description: "You can now log in",
//	})
//	...
//	store.Remove(id)
package toast
