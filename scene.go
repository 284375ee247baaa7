package learngl

import "github.com/go-gl/mathgl/mgl32"

// Transforms holds the three matrices uploaded as shader uniforms each frame.
type Transforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Scene is the per-program frame state: camera, elapsed time and the
// parameters that turn them into matrices. It replaces what would
// otherwise be package-level globals.
type Scene struct {
	Camera Camera

	// Speed is the camera translation speed in units per second.
	Speed float32

	// RotationRate is the model rotation rate in degrees per second.
	RotationRate float32
	RotationAxis mgl32.Vec3
	ModelOffset  mgl32.Vec3

	FovY      float32 // Vertical field of view in degrees
	Near, Far float32

	aspect  float32
	elapsed float32
}

// NewScene creates a scene with the default camera, unit speed and a 45
// degrees per second rotation, then applies opts.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		Camera:       DefaultCamera(),
		Speed:        1,
		RotationRate: 45,
		RotationAxis: mgl32.Vec3{0.5, 1, 0},
		FovY:         45,
		Near:         0.1,
		Far:          100,
		aspect:       800.0 / 600.0,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Resize updates the projection aspect ratio. A zero or negative height
// (minimized window) keeps the previous aspect.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.aspect = float32(width) / float32(height)
}

// Aspect returns the current projection aspect ratio.
func (s *Scene) Aspect() float32 {
	return s.aspect
}

// Elapsed returns the accumulated frame time in seconds.
func (s *Scene) Elapsed() float32 {
	return s.elapsed
}

// Angle returns the model rotation in degrees. It grows without wrapping.
func (s *Scene) Angle() float32 {
	return s.RotationRate * s.elapsed
}

// QuitRequested reports whether the input asks to close the window.
func (s *Scene) QuitRequested(input *InputState) bool {
	return input.KeyDown(KeyEscape)
}

// Update advances the scene by dt seconds and returns the frame's matrices.
// Held movement keys translate the camera by Speed*dt: W/Up along -Z,
// S/Down along +Z, A/Left along -X and D/Right along +X.
func (s *Scene) Update(input *InputState, dt float32) Transforms {
	if dt < 0 {
		dt = 0
	}

	var move mgl32.Vec3
	if input.AnyDown(KeyW, KeyUp) {
		move[2]--
	}
	if input.AnyDown(KeyS, KeyDown) {
		move[2]++
	}
	if input.AnyDown(KeyA, KeyLeft) {
		move[0]--
	}
	if input.AnyDown(KeyD, KeyRight) {
		move[0]++
	}
	if move != (mgl32.Vec3{}) {
		s.Camera.Translate(move.Mul(s.Speed * dt))
	}

	s.elapsed += dt

	return Transforms{
		Model:      s.Model(),
		View:       s.Camera.View(),
		Projection: s.Projection(),
	}
}

// Model returns the model matrix for the current elapsed time.
func (s *Scene) Model() mgl32.Mat4 {
	m := mgl32.Translate3D(s.ModelOffset[0], s.ModelOffset[1], s.ModelOffset[2])
	if s.RotationAxis.Len() == 0 {
		return m
	}
	return m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(s.Angle()), s.RotationAxis.Normalize()))
}

// Projection returns the perspective projection matrix.
func (s *Scene) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(s.FovY), s.aspect, s.Near, s.Far)
}
