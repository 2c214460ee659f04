package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// watchedKeys are the keys the viewer reacts to
var watchedKeys = []glfw.Key{
	glfw.KeyW, glfw.KeyA, glfw.KeyS, glfw.KeyD, glfw.KeyQ, glfw.KeyE,
	glfw.KeyI, glfw.KeyJ, glfw.KeyK, glfw.KeyL, glfw.KeyU, glfw.KeyO,
	glfw.KeyP, glfw.KeyEscape,
}

// InputHandler tracks keyboard state across frames so a held key
// registers exactly one press
type InputHandler struct {
	window       *glfw.Window
	currentKeys  map[glfw.Key]bool
	previousKeys map[glfw.Key]bool
}

// NewInputHandler creates an input handler for the given window
func NewInputHandler(window *glfw.Window) *InputHandler {
	return &InputHandler{
		window:       window,
		currentKeys:  make(map[glfw.Key]bool),
		previousKeys: make(map[glfw.Key]bool),
	}
}

// Update polls the watched keys. Call once per frame after PollEvents.
func (ih *InputHandler) Update() {
	for key, pressed := range ih.currentKeys {
		ih.previousKeys[key] = pressed
	}

	for _, key := range watchedKeys {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}
}

// IsKeyDown reports whether the key is currently held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether the key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// IsKeyReleased reports whether the key came up this frame
func (ih *InputHandler) IsKeyReleased(key glfw.Key) bool {
	return !ih.currentKeys[key] && ih.previousKeys[key]
}
