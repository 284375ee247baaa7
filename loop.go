package learngl

import (
	"log/slog"
)

// Window is the part of a window backend the frame loop drives.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// Poll resets per-frame input, processes pending events and returns
	// the resulting input state.
	Poll() *InputState
	// Time returns seconds since the window was opened.
	Time() float64
	SwapBuffers()
}

// Renderer draws one frame with the given matrices.
type Renderer interface {
	Render(t Transforms) error
}

// Loop runs a Scene against a Window and a Renderer.
type Loop struct {
	window   Window
	renderer Renderer
	scene    *Scene
	logger   *slog.Logger

	last       float64
	frames     int
	lastReport float32
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLogger sets the logger used for per-second debug reports.
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop creates a frame loop.
func NewLoop(window Window, renderer Renderer, scene *Scene, opts ...LoopOption) *Loop {
	l := &Loop{
		window:   window,
		renderer: renderer,
		scene:    scene,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Run loops until the window is asked to close or rendering fails.
func (l *Loop) Run() error {
	l.last = l.window.Time()
	for !l.window.ShouldClose() {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single frame: poll input, update the scene, render, present.
func (l *Loop) Step() error {
	input := l.window.Poll()
	if l.scene.QuitRequested(input) {
		l.window.SetShouldClose(true)
	}

	now := l.window.Time()
	dt := float32(now - l.last)
	l.last = now

	t := l.scene.Update(input, dt)
	if err := l.renderer.Render(t); err != nil {
		return err
	}
	l.window.SwapBuffers()
	l.frames++

	if l.scene.Elapsed()-l.lastReport >= 1 {
		l.lastReport = l.scene.Elapsed()
		pos := l.scene.Camera.Position
		l.logger.Debug("frame",
			"frames", l.frames,
			"elapsed", l.scene.Elapsed(),
			"angle", l.scene.Angle(),
			"camera", []float32{pos[0], pos[1], pos[2]})
	}
	return nil
}
