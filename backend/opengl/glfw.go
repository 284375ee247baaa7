package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// Window owns a GLFW window with a current 4.1 core context and adapts its
// key events to learngl.InputState.
type Window struct {
	handle   *glfw.Window
	input    *learngl.InputState
	onResize func(width, height int)
}

// OpenWindow initializes GLFW and go-gl and creates a window with a current
// context. GLFW must be driven from the main thread; callers lock it with
// runtime.LockOSThread in init.
func OpenWindow(cfg learngl.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{
		handle: handle,
		input:  learngl.NewInputState(),
	}
	handle.SetKeyCallback(w.keyCallback)
	handle.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	fbw, fbh := handle.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Enable(gl.DEPTH_TEST)

	return w, nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.handle.Destroy()
	glfw.Terminate()
}

// OnResize registers fn to be called with the new framebuffer size after
// the viewport has been updated.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

// ShouldClose reports whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// SetShouldClose sets the close flag checked at the top of the frame loop.
func (w *Window) SetShouldClose(v bool) {
	w.handle.SetShouldClose(v)
}

// Poll resets per-frame input and processes pending events.
func (w *Window) Poll() *learngl.InputState {
	w.input.Reset()
	glfw.PollEvents()
	return w.input
}

// Input returns the current input state.
func (w *Window) Input() *learngl.InputState {
	return w.input
}

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// SwapBuffers presents the frame. It blocks on vsync.
func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == learngl.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// glfwKeyToKey maps GLFW keys to learngl keys.
func glfwKeyToKey(key glfw.Key) learngl.Key {
	switch key {
	case glfw.KeyW:
		return learngl.KeyW
	case glfw.KeyA:
		return learngl.KeyA
	case glfw.KeyS:
		return learngl.KeyS
	case glfw.KeyD:
		return learngl.KeyD
	case glfw.KeyUp:
		return learngl.KeyUp
	case glfw.KeyDown:
		return learngl.KeyDown
	case glfw.KeyLeft:
		return learngl.KeyLeft
	case glfw.KeyRight:
		return learngl.KeyRight
	case glfw.KeyEscape:
		return learngl.KeyEscape
	default:
		return learngl.KeyNone
	}
}
