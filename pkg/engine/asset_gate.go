package engine

import (
	"sync"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
)

// AssetLoadingState tracks startup loading toward the initial reveal.
// Progress is the plain ratio loaded/total with no easing. IsComplete
// becomes true only after both the load and the shader warm-up finished,
// and once true it is never rescinded within the page lifecycle.
type AssetLoadingState struct {
	TotalAssets             int
	LoadedAssets            int
	Progress                float64
	IsLoadComplete          bool
	IsShaderCompileComplete bool
	IsComplete              bool
}

// AssetGate knows when the initial 3D scene is safe to reveal. Loaders
// report through the LoadingManager hook or the manual counters; after
// load completion the gate defers one frame, runs the GPU shader warm-up
// and only then signals completion. Methods are safe to call from the
// loader goroutine.
type AssetGate struct {
	mu    sync.Mutex
	state AssetLoadingState
	log   *logger.Logger

	// warmup compiles the scene's GPU programs and performs one
	// throwaway render. Nil means nothing to warm up.
	warmup func() error
	// schedule defers a function to the start of the next frame. Nil
	// runs it inline.
	schedule func(func())

	progressSubs  []func(AssetLoadingState)
	completeSubs  []func()
	warmupStarted bool
}

// NewAssetGate creates an empty gate
func NewAssetGate(log *logger.Logger) *AssetGate {
	return &AssetGate{log: log}
}

// AttachWarmup registers the shader warm-up pass. Without one the gate
// completes immediately after loading.
func (g *AssetGate) AttachWarmup(fn func() error) {
	g.mu.Lock()
	g.warmup = fn
	g.mu.Unlock()
}

// SetFrameScheduler provides the next-frame deferral used before the
// warm-up pass, so the loading screen gets one more painted frame.
func (g *AssetGate) SetFrameScheduler(fn func(func())) {
	g.mu.Lock()
	g.schedule = fn
	g.mu.Unlock()
}

func (g *AssetGate) recomputeLocked() {
	if g.state.TotalAssets > 0 {
		g.state.Progress = float64(g.state.LoadedAssets) / float64(g.state.TotalAssets)
	} else {
		g.state.Progress = 0
	}
}

// RegisterAsset adds one asset to the expected total. Manual counterpart
// to the LoadingManager hook, for assets outside the automatic loaders.
func (g *AssetGate) RegisterAsset() {
	g.mu.Lock()
	if g.state.IsComplete {
		g.mu.Unlock()
		return
	}
	g.state.TotalAssets++
	g.recomputeLocked()
	subs, state := g.progressSubsLocked()
	g.mu.Unlock()

	notifyProgress(subs, state)
}

// MarkAssetLoaded marks one manually registered asset as loaded. When
// the last one lands, the completion path begins.
func (g *AssetGate) MarkAssetLoaded() {
	g.mu.Lock()
	if g.state.IsComplete {
		g.mu.Unlock()
		return
	}
	if g.state.LoadedAssets < g.state.TotalAssets {
		g.state.LoadedAssets++
	}
	g.recomputeLocked()
	subs, state := g.progressSubsLocked()
	done := g.state.TotalAssets > 0 && g.state.LoadedAssets >= g.state.TotalAssets
	g.mu.Unlock()

	notifyProgress(subs, state)
	if done {
		g.beginLoadComplete()
	}
}

// ForceComplete synthesizes a trivial 1/1 load and proceeds through the
// normal completion path. Scenes that register nothing call this so the
// preloader can never hang. No-op once complete.
func (g *AssetGate) ForceComplete() {
	g.mu.Lock()
	if g.state.IsComplete || g.state.IsLoadComplete {
		g.mu.Unlock()
		return
	}
	g.state.TotalAssets = 1
	g.state.LoadedAssets = 1
	g.recomputeLocked()
	subs, state := g.progressSubsLocked()
	g.mu.Unlock()

	notifyProgress(subs, state)
	g.beginLoadComplete()
}

// beginLoadComplete latches IsLoadComplete and queues the warm-up pass
// for the next frame.
func (g *AssetGate) beginLoadComplete() {
	g.mu.Lock()
	if g.state.IsLoadComplete {
		g.mu.Unlock()
		return
	}
	g.state.IsLoadComplete = true
	schedule := g.schedule
	g.mu.Unlock()

	if schedule != nil {
		schedule(g.runWarmup)
	} else {
		g.runWarmup()
	}
}

// runWarmup compiles programs and draws one throwaway frame. Errors are
// logged and the gate still completes: a GPU quirk must never leave the
// user stuck on the loading screen.
func (g *AssetGate) runWarmup() {
	g.mu.Lock()
	if g.warmupStarted {
		g.mu.Unlock()
		return
	}
	g.warmupStarted = true
	warmup := g.warmup
	g.mu.Unlock()

	if warmup != nil {
		if err := warmup(); err != nil {
			g.log.Warnf("shader warm-up failed, revealing anyway: %v", err)
		}
	}

	g.mu.Lock()
	g.state.IsShaderCompileComplete = true
	g.state.IsComplete = true
	subs := g.completeSubs
	g.completeSubs = nil
	g.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnProgress subscribes to loading progress. The callback is invoked
// immediately with the current state, then on every change.
func (g *AssetGate) OnProgress(fn func(AssetLoadingState)) {
	g.mu.Lock()
	g.progressSubs = append(g.progressSubs, fn)
	state := g.state
	g.mu.Unlock()

	fn(state)
}

// OnComplete subscribes to the completion signal. A subscriber arriving
// after completion is invoked immediately; every subscriber is invoked
// exactly once.
func (g *AssetGate) OnComplete(fn func()) {
	g.mu.Lock()
	if g.state.IsComplete {
		g.mu.Unlock()
		fn()
		return
	}
	g.completeSubs = append(g.completeSubs, fn)
	g.mu.Unlock()
}

// State returns a copy of the current loading state
func (g *AssetGate) State() AssetLoadingState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// IsComplete reports whether the reveal gate has opened
func (g *AssetGate) IsComplete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.IsComplete
}

func (g *AssetGate) progressSubsLocked() ([]func(AssetLoadingState), AssetLoadingState) {
	subs := make([]func(AssetLoadingState), len(g.progressSubs))
	copy(subs, g.progressSubs)
	return subs, g.state
}

func notifyProgress(subs []func(AssetLoadingState), state AssetLoadingState) {
	for _, fn := range subs {
		fn(state)
	}
}

// LoadingManager is the callback triple handed to asset loaders, used
// transitively by every model and texture load.
type LoadingManager struct {
	gate *AssetGate
}

// Manager returns the loader-facing hook for this gate
func (g *AssetGate) Manager() *LoadingManager {
	return &LoadingManager{gate: g}
}

// OnProgress reports absolute loaded/total counts
func (lm *LoadingManager) OnProgress(url string, loaded, total int) {
	g := lm.gate

	g.mu.Lock()
	if g.state.IsComplete {
		g.mu.Unlock()
		return
	}
	g.state.TotalAssets = total
	g.state.LoadedAssets = loaded
	g.recomputeLocked()
	subs, state := g.progressSubsLocked()
	g.mu.Unlock()

	g.log.Debugf("asset progress: %s (%d/%d)", url, loaded, total)
	notifyProgress(subs, state)
}

// OnLoad marks the load phase complete and triggers the warm-up
func (lm *LoadingManager) OnLoad() {
	lm.gate.beginLoadComplete()
}

// OnError logs a failed asset. Loading proceeds; a missing texture must
// not deadlock the experience.
func (lm *LoadingManager) OnError(url string, err error) {
	lm.gate.log.Errorf("asset failed to load, skipping: %s: %v", url, err)
}

var (
	sharedGateMu sync.Mutex
	sharedGate   *AssetGate
)

// GetAssetGate returns the process-wide asset gate, constructing it on
// first call. The gate resets only with the process; there is no
// teardown path.
func GetAssetGate(log *logger.Logger) *AssetGate {
	sharedGateMu.Lock()
	defer sharedGateMu.Unlock()

	if sharedGate == nil {
		sharedGate = NewAssetGate(log)
	}
	return sharedGate
}
