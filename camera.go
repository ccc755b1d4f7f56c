package gfx

import "github.com/chewxy/math32"

const (
	cameraNear = 0.1
	cameraFar  = 100.0
)

// Camera produces view and projection matrices for a window of Width×Height
// pixels. Angles are in radians except FOV, which is in degrees.
type Camera struct {
	Width, Height   int
	Position        Vec3
	Direction       Vec3
	Up              Vec3
	HorizontalAngle float32
	VerticalAngle   float32
	FOV             float32
}

// NewCamera returns a camera at the origin looking down -Z with a 90° field
// of view.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		Width:           width,
		Height:          height,
		HorizontalAngle: math32.Pi,
		FOV:             90,
		Up:              Vec3{0, 1, 0},
	}
	c.updateDirection()
	return c
}

// Resize updates the window size used for the aspect ratio and ortho bounds.
func (c *Camera) Resize(width, height int) {
	c.Width, c.Height = width, height
}

// Look turns the camera by dh radians horizontally and dv radians vertically
// and recomputes Direction and Up.
func (c *Camera) Look(dh, dv float32) {
	c.HorizontalAngle += dh
	c.VerticalAngle += dv
	c.updateDirection()
	right := Vec3{
		math32.Sin(c.HorizontalAngle - math32.Pi/2),
		0,
		math32.Cos(c.HorizontalAngle - math32.Pi/2),
	}
	c.Up = right.Cross(c.Direction)
}

func (c *Camera) updateDirection() {
	cv := math32.Cos(c.VerticalAngle)
	c.Direction = Vec3{
		cv * math32.Sin(c.HorizontalAngle),
		math32.Sin(c.VerticalAngle),
		cv * math32.Cos(c.HorizontalAngle),
	}
}

// Projection returns the perspective projection for the current window size.
func (c *Camera) Projection() Mat4 {
	return Perspective(c.FOV*math32.Pi/180, float32(c.Width)/float32(c.Height), cameraNear, cameraFar)
}

// OrthoProjection maps pixel coordinates to clip space, origin at the
// bottom-left corner of the window.
func (c *Camera) OrthoProjection() Mat4 {
	return Ortho(0, float32(c.Width), 0, float32(c.Height), -1, 1)
}

// View returns the view matrix for the camera's position and direction.
func (c *Camera) View() Mat4 {
	return LookAt(c.Position, c.Position.Add(c.Direction), c.Up)
}
