package engine

import (
	"testing"
	"time"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
)

func newTestLock(t *testing.T) (*HeroLock, *AssetGate, *stubAdapter) {
	t.Helper()
	m, adapter := newTestManager(t, 3000)
	gate := newTestGate()
	lock := NewHeroLock(m, gate, time.Hour, logger.NewLogger("error"))
	return lock, gate, adapter
}

func TestHeroLockEngageStopsScroll(t *testing.T) {
	lock, _, adapter := newTestLock(t)

	lock.Engage()
	if adapter.stops != 1 {
		t.Errorf("Engage stopped the adapter %d times, want 1", adapter.stops)
	}

	// Re-engaging is a no-op.
	lock.Engage()
	if adapter.stops != 1 {
		t.Error("second Engage stopped the adapter again")
	}

	lock.Cancel()
}

func TestHeroLockDwellThenAssets(t *testing.T) {
	lock, gate, adapter := newTestLock(t)
	lock.Engage()
	defer lock.Cancel()

	lock.dwellElapsed()
	if lock.Released() || adapter.starts != 0 {
		t.Fatal("released on dwell alone")
	}

	gate.ForceComplete()
	if !lock.Released() {
		t.Fatal("not released after both conditions")
	}
	if adapter.starts != 1 {
		t.Errorf("adapter started %d times, want 1", adapter.starts)
	}
}

func TestHeroLockAssetsThenDwell(t *testing.T) {
	lock, gate, adapter := newTestLock(t)
	lock.Engage()
	defer lock.Cancel()

	gate.ForceComplete()
	if lock.Released() || adapter.starts != 0 {
		t.Fatal("released on assets alone")
	}

	lock.dwellElapsed()
	if !lock.Released() {
		t.Fatal("not released after both conditions")
	}
	if adapter.starts != 1 {
		t.Errorf("adapter started %d times, want 1", adapter.starts)
	}
}

func TestHeroLockReleasesOnce(t *testing.T) {
	lock, gate, adapter := newTestLock(t)
	lock.Engage()
	defer lock.Cancel()

	gate.ForceComplete()
	lock.dwellElapsed()
	lock.dwellElapsed() // timer races are absorbed by the latch

	if adapter.starts != 1 {
		t.Errorf("adapter started %d times, want exactly 1", adapter.starts)
	}
}

func TestHeroLockCompletedGateBeforeEngage(t *testing.T) {
	// A gate that finished before the lock was built replays its
	// completion into the asset latch at construction.
	m, adapter := newTestManager(t, 3000)
	gate := newTestGate()
	gate.ForceComplete()

	lock := NewHeroLock(m, gate, time.Hour, logger.NewLogger("error"))
	lock.Engage()
	defer lock.Cancel()

	lock.dwellElapsed()
	if !lock.Released() || adapter.starts != 1 {
		t.Error("pre-completed gate did not satisfy the asset condition")
	}
}

func TestHeroLockReleaseMarshaledToFrame(t *testing.T) {
	// The dwell timer fires on its own goroutine; with a frame scheduler
	// attached the release must not touch the adapter until the next
	// frame callback runs.
	m, adapter := newTestManager(t, 3000)
	gate := newTestGate()
	lock := NewHeroLock(m, gate, time.Hour, logger.NewLogger("error"))

	var queued []func()
	lock.SetFrameScheduler(func(fn func()) { queued = append(queued, fn) })

	lock.Engage()
	defer lock.Cancel()

	gate.ForceComplete()
	lock.dwellElapsed()

	if !lock.Released() {
		t.Fatal("latches set but lock not released")
	}
	if adapter.starts != 0 {
		t.Fatal("adapter started outside the frame callback")
	}
	if len(queued) != 1 {
		t.Fatalf("scheduler received %d functions, want 1", len(queued))
	}

	queued[0]()
	if adapter.starts != 1 {
		t.Errorf("adapter started %d times, want 1 after the deferred frame", adapter.starts)
	}
}

func TestHeroLockRealTimer(t *testing.T) {
	m, adapter := newTestManager(t, 3000)
	gate := newTestGate()
	gate.ForceComplete()

	lock := NewHeroLock(m, gate, 10*time.Millisecond, logger.NewLogger("error"))
	lock.Engage()
	defer lock.Cancel()

	deadline := time.Now().Add(2 * time.Second)
	for !lock.Released() {
		if time.Now().After(deadline) {
			t.Fatal("dwell timer never released the lock")
		}
		time.Sleep(time.Millisecond)
	}
	if adapter.starts != 1 {
		t.Errorf("adapter started %d times, want 1", adapter.starts)
	}
}
