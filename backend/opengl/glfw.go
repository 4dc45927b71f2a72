package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/reorder"
)

// GLFWInputAdapter adapts GLFW input to reorder.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *reorder.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  reorder.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update clears last frame's events and samples the cursor. Call it before
// glfw.PollEvents so this frame's callbacks are kept.
func (a *GLFWInputAdapter) Update() *reorder.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *reorder.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == reorder.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func glfwKeyToKey(key glfw.Key) reorder.Key {
	switch key {
	case glfw.KeyEscape:
		return reorder.KeyEscape
	default:
		return reorder.KeyNone
	}
}

func glfwMouseButtonToButton(button glfw.MouseButton) reorder.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return reorder.MouseButtonLeft
	case glfw.MouseButtonRight:
		return reorder.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return reorder.MouseButtonMiddle
	default:
		return -1
	}
}
