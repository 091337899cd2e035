package engine

import (
	"sync"
	"time"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
)

// HeroLock keeps the experience scroll-locked through the hero's
// minimum-dwell period. Release requires BOTH the dwell timer and the
// asset gate to have fired: the two conditions are independent latches
// ANDed on every event, so a fast load still waits out the timer and a
// slow load keeps the lock past it.
//
// The dwell timer fires on a timer goroutine, so the release never
// touches the adapter directly: it goes through the frame scheduler and
// runs on the main thread, the only thread that may mutate scroll state.
type HeroLock struct {
	mu       sync.Mutex
	manager  *ScrollManager
	log      *logger.Logger
	minDwell time.Duration

	// schedule marshals the release onto the main thread. Nil runs it
	// inline.
	schedule func(func())

	dwellDone  bool
	assetsDone bool
	released   bool
	engaged    bool
	timer      *time.Timer
}

// NewHeroLock wires the lock to its manager and gate. The gate
// subscription is registered here; Engage starts the clock.
func NewHeroLock(manager *ScrollManager, gate *AssetGate, minDwell time.Duration, log *logger.Logger) *HeroLock {
	l := &HeroLock{
		manager:  manager,
		log:      log,
		minDwell: minDwell,
	}
	gate.OnComplete(l.assetsComplete)
	return l
}

// SetFrameScheduler provides the next-frame deferral used to run the
// release on the main thread.
func (l *HeroLock) SetFrameScheduler(fn func(func())) {
	l.mu.Lock()
	l.schedule = fn
	l.mu.Unlock()
}

// Engage stops scroll processing and starts the minimum-dwell timer.
func (l *HeroLock) Engage() {
	l.mu.Lock()
	if l.engaged {
		l.mu.Unlock()
		return
	}
	l.engaged = true
	l.timer = time.AfterFunc(l.minDwell, l.dwellElapsed)
	l.mu.Unlock()

	l.manager.Stop()
}

// dwellElapsed latches the timer condition
func (l *HeroLock) dwellElapsed() {
	l.mu.Lock()
	l.dwellDone = true
	l.maybeReleaseLocked()
	l.mu.Unlock()
}

// assetsComplete latches the asset condition
func (l *HeroLock) assetsComplete() {
	l.mu.Lock()
	l.assetsDone = true
	l.maybeReleaseLocked()
	l.mu.Unlock()
}

// maybeReleaseLocked ANDs the two latches and unlocks scrolling once,
// on whichever event completes the pair. The manager start is deferred
// to the next frame so adapter mutation stays on the main thread.
func (l *HeroLock) maybeReleaseLocked() {
	if l.released || !l.dwellDone || !l.assetsDone {
		return
	}
	l.released = true
	l.log.Info("hero lock released, scroll enabled")
	if l.schedule != nil {
		l.schedule(l.manager.Start)
	} else {
		l.manager.Start()
	}
}

// Released reports whether scrolling has been unlocked
func (l *HeroLock) Released() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.released
}

// Cancel stops the pending dwell timer during teardown
func (l *HeroLock) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
