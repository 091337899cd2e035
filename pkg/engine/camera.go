package engine

import (
	"fmt"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/math/noise"
	"github.com/ragbendra/AwwwardsREMS-sub000/internal/util"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
)

// driftFadeSpan is how much global progress past the hero scene it takes
// for the organic drift to fade fully in. The opening shot stays rock
// steady; drift ramps up as the user leaves the hero.
const driftFadeSpan = 0.08

// flyTransition is a timed camera jump that overrides scroll-driven
// positioning until it completes.
type flyTransition struct {
	fromPos    Vector3
	toPos      Vector3
	fromTarget Vector3
	toTarget   Vector3
	duration   float64
	elapsed    float64
	onComplete func()
}

// CameraController derives the camera pose deterministically from global
// progress: both the position and look-at paths are fixed splines
// sampled at the scroll progress, plus a bounded noise drift gated off
// during the hero scene. FlyTo runs a time-based transition that fully
// overrides scroll-driven updates while in flight; concurrent FlyTo
// calls are rejected, not queued.
type CameraController struct {
	positionPath *Spline
	targetPath   *Spline

	fov    float64
	near   float64
	far    float64
	aspect float64

	drift     *noise.NoiseGenerator
	driftAmp  float64
	driftFreq float64
	heroEnd   float64

	position Vector3
	target   Vector3
	elapsed  float64
	fly      *flyTransition
}

// NewCameraController builds the controller from its configured paths.
// heroEnd is the hero scene's upper progress bound, used to gate drift.
func NewCameraController(cfg config.CameraConfig, aspect, heroEnd float64) (*CameraController, error) {
	posPath, err := NewSpline(toVectors(cfg.PositionPath))
	if err != nil {
		return nil, fmt.Errorf("failed to build camera position path: %v", err)
	}
	tgtPath, err := NewSpline(toVectors(cfg.TargetPath))
	if err != nil {
		return nil, fmt.Errorf("failed to build camera target path: %v", err)
	}

	c := &CameraController{
		positionPath: posPath,
		targetPath:   tgtPath,
		fov:          cfg.FOV,
		near:         cfg.Near,
		far:          cfg.Far,
		aspect:       aspect,
		drift:        noise.NewNoiseGenerator(1187),
		driftAmp:     cfg.DriftAmplitude,
		driftFreq:    cfg.DriftFrequency,
		heroEnd:      heroEnd,
	}
	c.position = posPath.Sample(0)
	c.target = tgtPath.Sample(0)
	return c, nil
}

func toVectors(points []config.Vec3Config) []Vector3 {
	out := make([]Vector3, len(points))
	for i, p := range points {
		out[i] = Vector3{X: p.X, Y: p.Y, Z: p.Z}
	}
	return out
}

// Update advances the controller by one frame. While a fly transition is
// in flight it owns the pose entirely; otherwise the pose comes from the
// scroll snapshot.
func (c *CameraController) Update(dt float64, state ScrollState) {
	c.elapsed += dt

	if c.fly != nil {
		c.updateFly(dt)
		return
	}
	c.updateFromScroll(state)
}

// updateFromScroll samples both paths at the global progress and applies
// the drift offset.
func (c *CameraController) updateFromScroll(state ScrollState) {
	pos := c.positionPath.Sample(state.Progress)
	tgt := c.targetPath.Sample(state.Progress)

	// Drift is zero through the hero and fades in just past it.
	scale := util.Smoothstep(c.heroEnd, c.heroEnd+driftFadeSpan, state.Progress)
	if scale > 0 {
		t := c.elapsed * c.driftFreq
		pos.X += c.drift.FBM1D(t, 3, 2.0, 0.5) * c.driftAmp * scale
		pos.Y += c.drift.Perlin1D(t*0.8+13.7) * c.driftAmp * 0.5 * scale
	}

	c.position = pos
	c.target = tgt
}

func (c *CameraController) updateFly(dt float64) {
	fly := c.fly
	fly.elapsed += dt

	t := 1.0
	if fly.duration > 0 {
		t = util.Clamp01(fly.elapsed / fly.duration)
	}
	eased := util.EaseInOutCubic(t)

	c.position = fly.fromPos.Lerp(fly.toPos, eased)
	c.target = fly.fromTarget.Lerp(fly.toTarget, eased)

	if t >= 1 {
		c.fly = nil
		if fly.onComplete != nil {
			fly.onComplete()
		}
	}
}

// FlyTo starts a timed transition to the given pose. Returns false if a
// transition is already in flight; overlapping calls are rejected rather
// than queued or blended.
func (c *CameraController) FlyTo(position, lookAt Vector3, duration float64, onComplete func()) bool {
	if c.fly != nil {
		return false
	}

	if duration <= 0 {
		c.position = position
		c.target = lookAt
		if onComplete != nil {
			onComplete()
		}
		return true
	}

	c.fly = &flyTransition{
		fromPos:    c.position,
		toPos:      position,
		fromTarget: c.target,
		toTarget:   lookAt,
		duration:   duration,
		onComplete: onComplete,
	}
	return true
}

// Flying reports whether a fly transition is in progress
func (c *CameraController) Flying() bool {
	return c.fly != nil
}

// Resize updates the projection aspect ratio. Path position is
// untouched; calling this mid-scroll is safe.
func (c *CameraController) Resize(width, height int) {
	if height > 0 {
		c.aspect = float64(width) / float64(height)
	}
}

// Position returns the current camera position
func (c *CameraController) Position() Vector3 {
	return c.position
}

// Target returns the current look-at point
func (c *CameraController) Target() Vector3 {
	return c.target
}

// ViewMatrix returns the view matrix for the current pose
func (c *CameraController) ViewMatrix() Mat4 {
	return Mat4LookAt(c.position, c.target, Vector3{Y: 1})
}

// ProjectionMatrix returns the perspective projection matrix
func (c *CameraController) ProjectionMatrix() Mat4 {
	return Mat4Perspective(c.fov, c.aspect, c.near, c.far)
}
