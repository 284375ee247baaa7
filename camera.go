package learngl

import "github.com/go-gl/mathgl/mgl32"

// Camera is a look-at camera. Fields are mutated directly by the frame
// update; nothing keeps Up orthogonal to the view direction.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// DefaultCamera sits at (0, 0, 3) looking at the origin with +Y up.
func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 3},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

// Direction returns the unit vector pointing from the target to the camera.
func (c Camera) Direction() mgl32.Vec3 {
	return c.Position.Sub(c.Target).Normalize()
}

// Right returns the camera's right axis.
func (c Camera) Right() mgl32.Vec3 {
	return c.Up.Cross(c.Direction()).Normalize()
}

// CameraUp returns the camera's up axis, orthogonal to Direction and Right.
func (c Camera) CameraUp() mgl32.Vec3 {
	d := c.Direction()
	return d.Cross(c.Up.Cross(d).Normalize())
}

// Translate moves both position and target by delta.
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}
