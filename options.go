package learngl

import "github.com/go-gl/mathgl/mgl32"

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithCamera sets the starting camera.
func WithCamera(c Camera) SceneOption {
	return func(s *Scene) { s.Camera = c }
}

// WithSpeed sets the camera speed in units per second.
func WithSpeed(speed float32) SceneOption {
	return func(s *Scene) { s.Speed = speed }
}

// WithRotation sets the model rotation rate (degrees per second) and axis.
func WithRotation(rate float32, axis mgl32.Vec3) SceneOption {
	return func(s *Scene) {
		s.RotationRate = rate
		s.RotationAxis = axis
	}
}

// WithModelOffset places the model away from the origin.
func WithModelOffset(offset mgl32.Vec3) SceneOption {
	return func(s *Scene) { s.ModelOffset = offset }
}

// WithPerspective sets the vertical field of view (degrees) and clip planes.
func WithPerspective(fovY, near, far float32) SceneOption {
	return func(s *Scene) {
		s.FovY = fovY
		s.Near = near
		s.Far = far
	}
}

// WithViewport sets the initial aspect ratio from a viewport size.
func WithViewport(width, height int) SceneOption {
	return func(s *Scene) { s.Resize(width, height) }
}
