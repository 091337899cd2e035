package engine

import (
	"fmt"
	"sync"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
	"github.com/ragbendra/AwwwardsREMS-sub000/internal/util"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
)

// Direction is the derived sign of the scroll velocity
type Direction int

// Scroll directions
const (
	DirectionIdle Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "idle"
	}
}

// ScrollState is the immutable per-frame snapshot published to every
// consumer. It is passed and stored by value; subscribers can never
// corrupt the manager's canonical copy.
type ScrollState struct {
	// Progress is the fraction of total scrollable distance traversed.
	Progress float64
	// Velocity is the normalized per-frame delta, clamped symmetrically.
	// Parallax and physics consumers depend on this bound holding.
	Velocity float64
	// Direction is derived from the sign of the unclamped delta.
	Direction Direction
	// SceneIndex is the active scene in the scene map.
	SceneIndex int
	// SceneProgress is the normalized position within the active scene.
	SceneProgress float64
}

// scrollSubscriber pairs a callback with a stable id so unsubscribe can
// remove it while preserving registration order for the rest.
type scrollSubscriber struct {
	id int
	fn func(ScrollState)
}

// ScrollManager is the sole authority translating adapter offsets into
// ScrollState and fanning it out. It owns the adapter: nothing else may
// tick or destroy it.
type ScrollManager struct {
	adapter       ScrollAdapter
	scenes        *SceneMap
	velocityClamp float64
	scrollToDur   float64
	log           *logger.Logger

	state       ScrollState
	subscribers []scrollSubscriber
	nextSubID   int
	destroyed   bool
}

// NewScrollManager wires a manager to its adapter and scene map. The
// initial state is the zero/idle snapshot resolved against progress 0.
func NewScrollManager(adapter ScrollAdapter, scenes *SceneMap, cfg config.ScrollConfig, log *logger.Logger) *ScrollManager {
	m := &ScrollManager{
		adapter:       adapter,
		scenes:        scenes,
		velocityClamp: cfg.VelocityClamp,
		scrollToDur:   cfg.ScrollToDuration,
		log:           log,
	}

	start := scenes.SceneAt(0)
	m.state = ScrollState{
		Direction:     DirectionIdle,
		SceneIndex:    start.Index,
		SceneProgress: 0,
	}

	adapter.OnScroll(m.handleScroll)
	return m
}

// handleScroll recomputes the snapshot from an adapter event and
// publishes it. Runs on the render-critical path: subscribers must not
// block.
func (m *ScrollManager) handleScroll(ev ScrollEvent) {
	if m.destroyed {
		return
	}

	limit := m.adapter.Limit()

	// Content shorter than the viewport: progress is pinned to 0, never
	// NaN from a zero division.
	progress := 0.0
	rawDelta := 0.0
	if limit > 0 {
		progress = util.Clamp01(ev.Offset / limit)
		rawDelta = ev.Velocity / limit
	}

	direction := DirectionIdle
	if ev.DirectionSign > 0 {
		direction = DirectionDown
	} else if ev.DirectionSign < 0 {
		direction = DirectionUp
	}

	scene := m.scenes.SceneAt(progress)

	m.state = ScrollState{
		Progress:      progress,
		Velocity:      util.Clamp(rawDelta, -m.velocityClamp, m.velocityClamp),
		Direction:     direction,
		SceneIndex:    scene.Index,
		SceneProgress: m.scenes.SceneProgress(progress, scene),
	}

	m.publish()
}

// publish invokes every subscriber synchronously, in registration order,
// with the same snapshot value. Iteration runs over a copy so a callback
// that unsubscribes cannot shift later subscribers out of this pass.
func (m *ScrollManager) publish() {
	state := m.state
	subs := make([]scrollSubscriber, len(m.subscribers))
	copy(subs, m.subscribers)
	for _, sub := range subs {
		sub.fn(state)
	}
}

// Subscribe registers a callback that is invoked immediately with the
// current snapshot and then on every subsequent recompute. The returned
// function unsubscribes and is safe to call more than once.
func (m *ScrollManager) Subscribe(fn func(ScrollState)) func() {
	if m.destroyed {
		return func() {}
	}

	id := m.nextSubID
	m.nextSubID++
	m.subscribers = append(m.subscribers, scrollSubscriber{id: id, fn: fn})

	fn(m.state)

	return func() {
		for i, sub := range m.subscribers {
			if sub.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// State returns the last published snapshot
func (m *ScrollManager) State() ScrollState {
	return m.state
}

// SceneMap returns the manager's scene map
func (m *ScrollManager) SceneMap() *SceneMap {
	return m.scenes
}

// Tick pumps the adapter; the render loop calls this once per frame.
func (m *ScrollManager) Tick(dt float64) {
	if m.destroyed {
		return
	}
	m.adapter.Tick(dt)
}

// ScrollTo delegates a programmatic scroll to the adapter
func (m *ScrollManager) ScrollTo(target float64, opts ScrollToOptions) {
	if m.destroyed {
		return
	}
	m.adapter.ScrollTo(target, opts)
}

// ScrollToScene smooth-scrolls to the start of the scene at index. The
// target offset is scene.Start scaled by the adapter limit. The request
// replaces any in-flight programmatic scroll, so two navigations cannot
// race each other.
func (m *ScrollManager) ScrollToScene(index int) error {
	if m.destroyed {
		return fmt.Errorf("scroll manager is destroyed")
	}

	scene, err := m.scenes.Scene(index)
	if err != nil {
		return err
	}

	m.adapter.ScrollTo(scene.Start*m.adapter.Limit(), ScrollToOptions{Duration: m.scrollToDur})
	return nil
}

// Stop suppresses scroll input processing (scroll locking)
func (m *ScrollManager) Stop() {
	if m.destroyed {
		return
	}
	m.adapter.Stop()
}

// Start resumes scroll input processing
func (m *ScrollManager) Start() {
	if m.destroyed {
		return
	}
	m.adapter.Start()
}

// Destroy tears the manager down: the adapter is destroyed and all
// subscribers are cleared. Idempotent. If this manager is the shared
// singleton, the accessor slot is cleared so a fresh page lifecycle can
// construct a new one.
func (m *ScrollManager) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.adapter.Destroy()
	m.subscribers = nil

	sharedScrollMu.Lock()
	if sharedScrollManager == m {
		sharedScrollManager = nil
	}
	sharedScrollMu.Unlock()
}

var (
	sharedScrollMu      sync.Mutex
	sharedScrollManager *ScrollManager
)

// GetScrollManager returns the process-wide scroll manager, constructing
// it on first call. Later calls ignore the arguments and return the same
// instance; multiple components may request the manager independently
// during one page lifecycle without double-construction.
func GetScrollManager(adapter ScrollAdapter, scenes *SceneMap, cfg config.ScrollConfig, log *logger.Logger) *ScrollManager {
	sharedScrollMu.Lock()
	defer sharedScrollMu.Unlock()

	if sharedScrollManager == nil {
		sharedScrollManager = NewScrollManager(adapter, scenes, cfg, log)
	}
	return sharedScrollManager
}
