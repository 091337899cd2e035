package engine

import (
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// maxFrameDelta caps dt after a stall (window drag, debugger pause) so
// physics and tweens never jump.
const maxFrameDelta = 0.1

// RenderLoop is the single continuously scheduled driver. Each frame it
// runs the deferred queue, invokes the frame callback, presents, and
// polls events, capped to the configured frame rate. Everything the
// experience does per frame happens synchronously inside the callback's
// turn — there is exactly one of these loops per window.
type RenderLoop struct {
	window    *glfw.Window
	frameRate int

	running  bool
	lastTick time.Time

	mu       sync.Mutex
	deferred []func()
}

// NewRenderLoop creates a loop for the window
func NewRenderLoop(window *glfw.Window, frameRate int) *RenderLoop {
	return &RenderLoop{
		window:    window,
		frameRate: frameRate,
	}
}

// Defer schedules fn to run at the start of the next frame, on the main
// thread. Safe to call from loader goroutines and from within a frame.
func (l *RenderLoop) Defer(fn func()) {
	l.mu.Lock()
	l.deferred = append(l.deferred, fn)
	l.mu.Unlock()
}

// runDeferred drains the queue captured at the start of the frame.
// Functions deferred while draining run next frame, preserving the
// "one frame later" contract of the warm-up gate.
func (l *RenderLoop) runDeferred() {
	l.mu.Lock()
	pending := l.deferred
	l.deferred = nil
	l.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// Run drives frames until Stop is called or the window closes. On exit
// the deferred queue is cleared so no pending callback can fire against
// a torn-down engine.
func (l *RenderLoop) Run(onFrame func(dt float64)) {
	l.running = true
	l.lastTick = time.Now()

	for l.running && !l.window.ShouldClose() {
		frameStart := time.Now()
		dt := frameStart.Sub(l.lastTick).Seconds()
		l.lastTick = frameStart
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		l.runDeferred()
		onFrame(dt)

		l.window.SwapBuffers()
		glfw.PollEvents()

		if l.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(l.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	l.mu.Lock()
	l.deferred = nil
	l.mu.Unlock()
}

// Stop ends the loop after the current frame completes
func (l *RenderLoop) Stop() {
	l.running = false
}
