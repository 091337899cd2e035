package engine

import "testing"

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot()
	want := ScrollState{Direction: DirectionIdle}
	if snap != want {
		t.Errorf("DefaultSnapshot() = %+v, want %+v", snap, want)
	}
	// Repeated calls agree, so a pre-pipeline paint and the first live
	// frame render the same thing.
	if DefaultSnapshot() != snap {
		t.Error("DefaultSnapshot is not stable across calls")
	}
}

func TestScrollStoreWithoutManager(t *testing.T) {
	store := NewScrollStore(nil)

	if store.Snapshot() != DefaultSnapshot() {
		t.Error("manager-less store did not serve the default snapshot")
	}
	unsubscribe := store.Subscribe(func() {
		t.Error("manager-less store delivered a notification")
	})
	unsubscribe()
	unsubscribe()
}

func TestScrollStoreSnapshotTracksManager(t *testing.T) {
	m, adapter := newTestManager(t, 3000)
	store := NewScrollStore(m)

	adapter.emit(900, 10)
	if store.Snapshot() != m.State() {
		t.Error("store snapshot diverged from the manager state")
	}
}

func TestScrollStoreNotifiesOnChangeOnly(t *testing.T) {
	m, adapter := newTestManager(t, 3000)
	store := NewScrollStore(m)

	notifications := 0
	unsubscribe := store.Subscribe(func() { notifications++ })
	defer unsubscribe()

	// The subscription replay is not a change.
	if notifications != 0 {
		t.Fatalf("replay produced %d notifications, want 0", notifications)
	}

	adapter.emit(900, 10)
	if notifications != 1 {
		t.Fatalf("first change produced %d notifications, want 1", notifications)
	}

	// Identical snapshots are deduplicated. An event at the same offset
	// with zero velocity publishes the same state twice.
	adapter.emit(900, 0)
	adapter.emit(900, 0)
	if notifications != 2 {
		t.Errorf("got %d notifications, want 2 (second identical state suppressed)", notifications)
	}
}

func TestScrollStoreUnsubscribe(t *testing.T) {
	m, adapter := newTestManager(t, 3000)
	store := NewScrollStore(m)

	notifications := 0
	unsubscribe := store.Subscribe(func() { notifications++ })
	unsubscribe()

	adapter.emit(900, 10)
	if notifications != 0 {
		t.Errorf("unsubscribed store delivered %d notifications", notifications)
	}
}
