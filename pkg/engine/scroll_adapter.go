package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/util"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
)

// ScrollEvent is delivered once per frame by a ScrollAdapter.
type ScrollEvent struct {
	// Offset is the smoothed scroll position in pixels.
	Offset float64
	// Velocity is the raw per-frame offset delta in pixels.
	Velocity float64
	// DirectionSign is -1, 0 or 1 from the sign of the raw delta.
	DirectionSign int
}

// ScrollToOptions adjusts a programmatic scroll.
type ScrollToOptions struct {
	// Offset is added to the target position.
	Offset float64
	// Duration runs the scroll as a timed tween instead of the default
	// inertial easing. Zero uses the inertial easing.
	Duration float64
	// Immediate snaps to the target without any animation.
	Immediate bool
}

// ScrollAdapter converts wheel input into a smoothly interpolated scroll
// offset. Tick must be called once per animation frame by the render
// loop; the OnScroll callback fires once per Tick.
type ScrollAdapter interface {
	OnScroll(fn func(ScrollEvent))
	ScrollTo(target float64, opts ScrollToOptions)
	Tick(dt float64)
	Stop()
	Start()
	Offset() float64
	Limit() float64
	Destroy()
}

// scrollTween is a timed programmatic scroll.
type scrollTween struct {
	from     float64
	to       float64
	duration float64
	elapsed  float64
}

// pendingScroll is a ScrollTo received while stopped, replayed verbatim
// on Start.
type pendingScroll struct {
	target float64
	opts   ScrollToOptions
}

// VirtualScroll is the GLFW-backed ScrollAdapter. Wheel events adjust a
// target offset; Tick eases the reported offset toward the target with
// frame-rate independent exponential smoothing, so raw event rate never
// reaches consumers directly.
type VirtualScroll struct {
	window *glfw.Window

	limit       float64
	sensitivity float64
	smoothing   float64

	target   float64
	offset   float64
	stopped  bool
	tween    *scrollTween
	pending  *pendingScroll
	callback func(ScrollEvent)

	destroyed bool
}

// NewScrollAdapter creates the adapter for a window. A nil window (tests,
// headless runs) yields an inert dummy adapter with frozen zero state;
// construction never fails.
func NewScrollAdapter(window *glfw.Window, cfg config.ScrollConfig, viewportHeight float64) ScrollAdapter {
	if window == nil {
		return &dummyScroll{}
	}

	limit := cfg.ContentHeight - viewportHeight
	if limit < 0 {
		limit = 0
	}

	vs := &VirtualScroll{
		window:      window,
		limit:       limit,
		sensitivity: cfg.WheelSensitivity,
		smoothing:   cfg.SmoothingRate,
	}

	window.SetScrollCallback(func(_ *glfw.Window, _, yoffset float64) {
		vs.handleWheel(yoffset)
	})

	return vs
}

// handleWheel accumulates a wheel step into the target offset. Wheel-down
// (negative yoffset) advances the experience.
func (vs *VirtualScroll) handleWheel(yoffset float64) {
	if vs.stopped || vs.destroyed {
		return
	}
	vs.tween = nil
	vs.target = util.Clamp(vs.target-yoffset*vs.sensitivity, 0, vs.limit)
}

// OnScroll registers the per-frame callback. Only one consumer is
// supported; the scroll manager is the sole owner of the adapter.
func (vs *VirtualScroll) OnScroll(fn func(ScrollEvent)) {
	vs.callback = fn
}

// ScrollTo moves toward target+opts.Offset. While the adapter is stopped
// the request is deferred, not dropped, and applied on Start.
func (vs *VirtualScroll) ScrollTo(target float64, opts ScrollToOptions) {
	if vs.destroyed {
		return
	}

	if vs.stopped {
		vs.pending = &pendingScroll{target: target, opts: opts}
		return
	}

	dest := util.Clamp(target+opts.Offset, 0, vs.limit)

	switch {
	case opts.Immediate:
		vs.tween = nil
		vs.offset = dest
		vs.target = dest
	case opts.Duration > 0:
		vs.tween = &scrollTween{from: vs.offset, to: dest, duration: opts.Duration}
		vs.target = dest
	default:
		vs.tween = nil
		vs.target = dest
	}
}

// Tick advances the easing and fires the OnScroll callback exactly once.
func (vs *VirtualScroll) Tick(dt float64) {
	if vs.destroyed {
		return
	}

	prev := vs.offset

	if !vs.stopped {
		if vs.tween != nil {
			tw := vs.tween
			tw.elapsed += dt
			t := 1.0
			if tw.duration > 0 {
				t = util.Clamp01(tw.elapsed / tw.duration)
			}
			vs.offset = util.Lerp(tw.from, tw.to, util.EaseInOutCubic(t))
			if t >= 1 {
				vs.tween = nil
			}
		} else {
			vs.offset += (vs.target - vs.offset) * util.ExpDecay(vs.smoothing, dt)
		}
	}

	delta := vs.offset - prev
	sign := 0
	if delta > 0 {
		sign = 1
	} else if delta < 0 {
		sign = -1
	}

	if vs.callback != nil {
		vs.callback(ScrollEvent{Offset: vs.offset, Velocity: delta, DirectionSign: sign})
	}
}

// Stop freezes input processing. Position changes are fully suppressed
// until Start; wheel input arriving while stopped is dropped.
func (vs *VirtualScroll) Stop() {
	vs.stopped = true
}

// Start resumes input processing and applies any deferred ScrollTo.
func (vs *VirtualScroll) Start() {
	if vs.destroyed {
		return
	}
	vs.stopped = false
	if vs.pending != nil {
		p := vs.pending
		vs.pending = nil
		vs.ScrollTo(p.target, p.opts)
	}
}

// Offset returns the current smoothed offset
func (vs *VirtualScroll) Offset() float64 {
	return vs.offset
}

// Limit returns the maximum scrollable distance
func (vs *VirtualScroll) Limit() float64 {
	return vs.limit
}

// Destroy releases the window callback and inert-locks the adapter.
func (vs *VirtualScroll) Destroy() {
	if vs.destroyed {
		return
	}
	vs.destroyed = true
	vs.callback = nil
	vs.window.SetScrollCallback(nil)
}

// dummyScroll satisfies ScrollAdapter with frozen zero state for
// contexts without a window. Tick still fires the callback once per
// frame so consumers keep their once-per-frame contract.
type dummyScroll struct {
	callback func(ScrollEvent)
}

func (d *dummyScroll) OnScroll(fn func(ScrollEvent))                 { d.callback = fn }
func (d *dummyScroll) ScrollTo(target float64, opts ScrollToOptions) {}

func (d *dummyScroll) Tick(dt float64) {
	if d.callback != nil {
		d.callback(ScrollEvent{})
	}
}

func (d *dummyScroll) Stop()           {}
func (d *dummyScroll) Start()          {}
func (d *dummyScroll) Offset() float64 { return 0 }
func (d *dummyScroll) Limit() float64  { return 0 }
func (d *dummyScroll) Destroy()        { d.callback = nil }
