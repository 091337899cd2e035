package engine

import (
	"math"
	"testing"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
)

// stubAdapter is a scripted ScrollAdapter for driving the manager
// without a window.
type stubAdapter struct {
	callback  func(ScrollEvent)
	limit     float64
	offset    float64
	stops     int
	starts    int
	destroyed bool

	lastTarget float64
	lastOpts   ScrollToOptions
	scrollTos  int
}

func (s *stubAdapter) OnScroll(fn func(ScrollEvent)) { s.callback = fn }
func (s *stubAdapter) ScrollTo(target float64, opts ScrollToOptions) {
	s.lastTarget = target
	s.lastOpts = opts
	s.scrollTos++
}
func (s *stubAdapter) Tick(dt float64) {
	if s.callback != nil {
		s.callback(ScrollEvent{Offset: s.offset})
	}
}
func (s *stubAdapter) Stop()           { s.stops++ }
func (s *stubAdapter) Start()          { s.starts++ }
func (s *stubAdapter) Offset() float64 { return s.offset }
func (s *stubAdapter) Limit() float64  { return s.limit }
func (s *stubAdapter) Destroy()        { s.destroyed = true }

// emit pushes a scripted event straight through the manager.
func (s *stubAdapter) emit(offset, velocity float64) {
	sign := 0
	if velocity > 0 {
		sign = 1
	} else if velocity < 0 {
		sign = -1
	}
	s.callback(ScrollEvent{Offset: offset, Velocity: velocity, DirectionSign: sign})
}

func testScrollConfig() config.ScrollConfig {
	return config.ScrollConfig{
		ContentHeight:    4000,
		WheelSensitivity: 55,
		SmoothingRate:    6,
		VelocityClamp:    0.01,
		ScrollToDuration: 1.2,
	}
}

func newTestManager(t *testing.T, limit float64) (*ScrollManager, *stubAdapter) {
	t.Helper()
	adapter := &stubAdapter{limit: limit}
	m := NewScrollManager(adapter, mustSceneMap(t, threeSceneConfig()), testScrollConfig(), logger.NewLogger("error"))
	return m, adapter
}

func TestScrollManagerInitialState(t *testing.T) {
	m, _ := newTestManager(t, 3000)

	state := m.State()
	if state.Progress != 0 || state.Velocity != 0 {
		t.Errorf("initial state not zero: %+v", state)
	}
	if state.Direction != DirectionIdle {
		t.Errorf("initial direction = %v, want idle", state.Direction)
	}
	if state.SceneIndex != 0 {
		t.Errorf("initial scene = %d, want 0", state.SceneIndex)
	}
}

func TestScrollManagerRecompute(t *testing.T) {
	m, adapter := newTestManager(t, 3000)

	adapter.emit(900, 30) // progress 0.3 → scene 1
	state := m.State()

	if math.Abs(state.Progress-0.3) > 1e-9 {
		t.Errorf("progress = %v, want 0.3", state.Progress)
	}
	if state.SceneIndex != 1 {
		t.Errorf("scene = %d, want 1", state.SceneIndex)
	}
	if math.Abs(state.SceneProgress-0.2) > 1e-9 {
		t.Errorf("scene progress = %v, want 0.2", state.SceneProgress)
	}
	if state.Direction != DirectionDown {
		t.Errorf("direction = %v, want down", state.Direction)
	}
}

func TestScrollManagerVelocityClampScenarioB(t *testing.T) {
	// Raw normalized deltas +0.02 then -0.001 against a ±0.01 clamp
	// publish velocities [0.01, -0.001] and directions [down, up].
	m, adapter := newTestManager(t, 1000)

	adapter.emit(20, 20) // +0.02 normalized
	first := m.State()
	if math.Abs(first.Velocity-0.01) > 1e-9 {
		t.Errorf("first velocity = %v, want clamped 0.01", first.Velocity)
	}
	if first.Direction != DirectionDown {
		t.Errorf("first direction = %v, want down", first.Direction)
	}

	adapter.emit(19, -1) // -0.001 normalized
	second := m.State()
	if math.Abs(second.Velocity-(-0.001)) > 1e-9 {
		t.Errorf("second velocity = %v, want -0.001", second.Velocity)
	}
	if second.Direction != DirectionUp {
		t.Errorf("second direction = %v, want up", second.Direction)
	}
}

func TestScrollManagerDegenerateContent(t *testing.T) {
	// Content shorter than the viewport: limit 0 pins progress to 0
	// with no NaN.
	m, adapter := newTestManager(t, 0)

	adapter.emit(500, 10)
	state := m.State()
	if state.Progress != 0 {
		t.Errorf("progress = %v, want 0 for zero limit", state.Progress)
	}
	if math.IsNaN(state.Progress) || math.IsNaN(state.Velocity) {
		t.Error("zero limit produced NaN")
	}
}

func TestScrollManagerSubscribeReplay(t *testing.T) {
	m, adapter := newTestManager(t, 3000)
	adapter.emit(1500, 10)

	var got []ScrollState
	unsubscribe := m.Subscribe(func(s ScrollState) {
		got = append(got, s)
	})
	defer unsubscribe()

	// Replay happens synchronously at subscription, before any event.
	if len(got) != 1 {
		t.Fatalf("expected immediate replay, got %d calls", len(got))
	}
	if got[0].Progress != 0.5 {
		t.Errorf("replayed progress = %v, want 0.5", got[0].Progress)
	}
}

func TestScrollManagerSharedSnapshot(t *testing.T) {
	m, adapter := newTestManager(t, 3000)

	var a, b ScrollState
	m.Subscribe(func(s ScrollState) { a = s })
	m.Subscribe(func(s ScrollState) { b = s })

	adapter.emit(600, 5)
	if a != b {
		t.Errorf("subscribers observed different snapshots: %+v vs %+v", a, b)
	}
}

func TestScrollManagerUnsubscribe(t *testing.T) {
	m, adapter := newTestManager(t, 3000)

	calls := 0
	unsubscribe := m.Subscribe(func(ScrollState) { calls++ })
	unsubscribe()
	unsubscribe() // safe to call twice

	adapter.emit(600, 5)
	if calls != 1 { // only the replay
		t.Errorf("unsubscribed callback ran %d times, want 1", calls)
	}
	if len(m.subscribers) != 0 {
		t.Errorf("residual subscribers: %d", len(m.subscribers))
	}
}

func TestScrollManagerUnsubscribeDuringPublish(t *testing.T) {
	// A callback unsubscribing itself mid-publish must not shift the
	// remaining subscribers out of this pass.
	m, adapter := newTestManager(t, 3000)

	bCalls, cCalls := 0, 0
	var unsubA func()
	unsubA = m.Subscribe(func(s ScrollState) {
		if s.Progress > 0 {
			unsubA()
		}
	})
	m.Subscribe(func(ScrollState) { bCalls++ })
	m.Subscribe(func(ScrollState) { cCalls++ })

	adapter.emit(600, 5) // each replay plus this publish
	if bCalls != 2 || cCalls != 2 {
		t.Errorf("fan-out after in-callback unsubscribe: b=%d c=%d, want 2 each", bCalls, cCalls)
	}
	if len(m.subscribers) != 2 {
		t.Errorf("subscriber count = %d, want 2", len(m.subscribers))
	}
}

func TestScrollManagerStateIsolation(t *testing.T) {
	m, adapter := newTestManager(t, 3000)
	adapter.emit(900, 10)

	state := m.State()
	state.Progress = 0.99
	if m.State().Progress == 0.99 {
		t.Error("mutating the returned state corrupted the manager")
	}
}

func TestScrollToSceneScenarioD(t *testing.T) {
	// Content 4000px, viewport 1000px → limit 3000px. Scene 2 starts at
	// progress 0.5, so the target offset is 1500px.
	m, adapter := newTestManager(t, 3000)

	if err := m.ScrollToScene(2); err != nil {
		t.Fatalf("ScrollToScene: %v", err)
	}
	if adapter.lastTarget != 1500 {
		t.Errorf("target = %v, want 1500", adapter.lastTarget)
	}
	if adapter.lastOpts.Duration != 1.2 {
		t.Errorf("duration = %v, want 1.2", adapter.lastOpts.Duration)
	}

	if err := m.ScrollToScene(7); err == nil {
		t.Error("ScrollToScene(7): expected range error")
	}
}

func TestScrollManagerStopStart(t *testing.T) {
	m, adapter := newTestManager(t, 3000)

	m.Stop()
	m.Start()
	if adapter.stops != 1 || adapter.starts != 1 {
		t.Errorf("stop/start not delegated: stops=%d starts=%d", adapter.stops, adapter.starts)
	}
}

func TestScrollManagerDestroyIdempotent(t *testing.T) {
	m, adapter := newTestManager(t, 3000)
	m.Subscribe(func(ScrollState) {})

	m.Destroy()
	m.Destroy()

	if !adapter.destroyed {
		t.Error("adapter not destroyed")
	}
	if len(m.subscribers) != 0 {
		t.Error("subscribers not cleared")
	}
	if err := m.ScrollToScene(0); err == nil {
		t.Error("ScrollToScene after destroy: expected error")
	}
}

func TestGetScrollManagerSingleton(t *testing.T) {
	adapter := &stubAdapter{limit: 3000}
	scenes := mustSceneMap(t, threeSceneConfig())
	log := logger.NewLogger("error")

	first := GetScrollManager(adapter, scenes, testScrollConfig(), log)
	second := GetScrollManager(&stubAdapter{}, scenes, testScrollConfig(), log)
	if first != second {
		t.Error("GetScrollManager returned distinct instances in one lifecycle")
	}

	// Destroy clears the accessor slot for the next lifecycle.
	first.Destroy()
	third := GetScrollManager(&stubAdapter{limit: 10}, scenes, testScrollConfig(), log)
	if third == first {
		t.Error("destroyed manager still served from the accessor")
	}
	third.Destroy()
}

func TestDirectionString(t *testing.T) {
	if DirectionUp.String() != "up" || DirectionDown.String() != "down" || DirectionIdle.String() != "idle" {
		t.Error("unexpected direction names")
	}
}
