package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// trackedKeys are the only keys the handler polls each frame.
var trackedKeys = []glfw.Key{
	glfw.KeyEscape,
	glfw.KeyM,
	glfw.KeyHome,
	glfw.KeyEnd,
	glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5,
	glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9,
}

// InputHandler polls keyboard state once per frame and exposes
// edge-triggered navigation intents. It never mutates scroll state
// itself; the engine routes intents to the scroll manager.
type InputHandler struct {
	window       *glfw.Window
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool
}

// NewInputHandler creates a handler for the window
func NewInputHandler(window *glfw.Window) *InputHandler {
	return &InputHandler{
		window:       window,
		currentKeys:  make(map[glfw.Key]bool),
		previousKeys: make(map[glfw.Key]bool),
	}
}

// Update polls the tracked keys, keeping the previous frame's state for
// edge detection.
func (ih *InputHandler) Update() {
	for key, down := range ih.currentKeys {
		ih.previousKeys[key] = down
	}
	for _, key := range trackedKeys {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// QuitRequested reports whether Escape was pressed this frame
func (ih *InputHandler) QuitRequested() bool {
	return ih.IsKeyPressed(glfw.KeyEscape)
}

// AudioToggleRequested reports whether M was pressed this frame
func (ih *InputHandler) AudioToggleRequested() bool {
	return ih.IsKeyPressed(glfw.KeyM)
}

// HomeRequested reports whether Home was pressed this frame
func (ih *InputHandler) HomeRequested() bool {
	return ih.IsKeyPressed(glfw.KeyHome)
}

// EndRequested reports whether End was pressed this frame
func (ih *InputHandler) EndRequested() bool {
	return ih.IsKeyPressed(glfw.KeyEnd)
}

// JumpRequest returns the scene index for a number key pressed this
// frame. Key 1 maps to scene 0.
func (ih *InputHandler) JumpRequest() (int, bool) {
	for i, key := range []glfw.Key{
		glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5,
		glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9,
	} {
		if ih.IsKeyPressed(key) {
			return i, true
		}
	}
	return 0, false
}
