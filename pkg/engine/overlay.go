package engine

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Overlay is the in-window UI layer. It reads scroll state exclusively
// through the ScrollStore snapshot (never the manager's internals), and
// its only write path back into the experience is navigation intent via
// the manager's public scroll operations, wired in the input handler.
type Overlay struct {
	store  *ScrollStore
	scenes *SceneMap
	window *glfw.Window

	baseTitle   string
	lastTitle   string
	lastFocused *SceneObject
	unsubscribe func()
	dirty       bool
}

// NewOverlay builds the overlay and subscribes it to the store. The
// window may be nil in headless contexts; title updates are skipped.
func NewOverlay(store *ScrollStore, scenes *SceneMap, window *glfw.Window, baseTitle string) *Overlay {
	o := &Overlay{
		store:     store,
		scenes:    scenes,
		window:    window,
		baseTitle: baseTitle,
		dirty:     true,
	}
	o.unsubscribe = store.Subscribe(func() {
		o.dirty = true
	})
	return o
}

// Update refreshes the window title when the snapshot or the focused
// object changed since the last frame. The store's change-only
// notification keeps this from touching the title every frame.
func (o *Overlay) Update(focused *SceneObject) {
	if !o.dirty && focused == o.lastFocused {
		return
	}
	o.dirty = false
	o.lastFocused = focused

	state := o.store.Snapshot()
	scene, err := o.scenes.Scene(state.SceneIndex)
	if err != nil {
		return
	}

	title := fmt.Sprintf("%s — %s", o.baseTitle, scene.Label)
	if focused != nil && focused.Property != nil {
		title = fmt.Sprintf("%s — %s · $%d", o.baseTitle, focused.Property.Name, focused.Property.PriceUSD)
	}

	if title != o.lastTitle {
		o.lastTitle = title
		if o.window != nil {
			o.window.SetTitle(title)
		}
	}
}

// Quads produces this frame's overlay geometry: the loading screen
// until the gate opens, then the scroll progress bar with one tick per
// scene and a focus card when an object is highlighted.
func (o *Overlay) Quads(asset AssetLoadingState, state ScrollState, focused bool) []OverlayQuad {
	if !asset.IsComplete {
		return o.loadingQuads(asset)
	}

	quads := []OverlayQuad{
		// Progress track along the bottom edge.
		{X: -0.9, Y: -0.92, W: 1.8, H: 0.012, Color: [4]float32{1, 1, 1, 0.18}},
		// Fill up to the current progress.
		{X: -0.9, Y: -0.92, W: 1.8 * float32(state.Progress), H: 0.012, Color: [4]float32{1, 1, 1, 0.85}},
	}

	// One tick per scene boundary; the active scene's tick is brighter.
	for _, scene := range o.scenes.Scenes() {
		alpha := float32(0.35)
		if scene.Index == state.SceneIndex {
			alpha = 1.0
		}
		quads = append(quads, OverlayQuad{
			X:     -0.9 + 1.8*float32(scene.Start) - 0.004,
			Y:     -0.94,
			W:     0.008,
			H:     0.05,
			Color: [4]float32{1, 1, 1, alpha},
		})
	}

	if focused {
		quads = append(quads, OverlayQuad{
			X: 0.55, Y: -0.2, W: 0.38, H: 0.4,
			Color: [4]float32{0.05, 0.05, 0.07, 0.72},
		})
	}

	return quads
}

// loadingQuads dims the screen and draws the centered load bar. Progress
// here is the gate's raw loaded/total ratio, no easing.
func (o *Overlay) loadingQuads(asset AssetLoadingState) []OverlayQuad {
	return []OverlayQuad{
		{X: -1, Y: -1, W: 2, H: 2, Color: [4]float32{0.03, 0.03, 0.05, 1}},
		{X: -0.4, Y: -0.01, W: 0.8, H: 0.02, Color: [4]float32{1, 1, 1, 0.15}},
		{X: -0.4, Y: -0.01, W: 0.8 * float32(asset.Progress), H: 0.02, Color: [4]float32{1, 1, 1, 0.9}},
	}
}

// Dispose unsubscribes the overlay from the store
func (o *Overlay) Dispose() {
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
}
