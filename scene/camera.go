package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// cameraEye is how far the camera sits above the point it looks at.
	cameraEye = 4.0
	// narrowViewport is the width below which the camera zooms in.
	narrowViewport = 600
)

// Camera views the tower through the fixed isometric projection and rises
// with it.
type Camera struct {
	// Viewport is the screen area the camera draws into.
	Viewport Rect
	// WorldWidth is how many world units span the viewport horizontally.
	WorldWidth float64
	// Y is the camera elevation. The camera looks at (0, Y-4, 0).
	Y float64
	// RiseSpeed is how far Y moves per frame while following.
	RiseSpeed float64

	target float64
	tween  *gween.Tween
}

func newCamera() *Camera {
	return &Camera{
		WorldWidth: 15,
		Y:          cameraEye,
		RiseSpeed:  0.15,
		target:     cameraEye,
	}
}

// SetViewport resizes the viewport. Narrow viewports show 5 world units
// instead of 15 so the blocks stay legible on phones.
func (c *Camera) SetViewport(width, height float64) {
	c.Viewport = Rect{Width: width, Height: height}
	if width < narrowViewport {
		c.WorldWidth = 5
	} else {
		c.WorldWidth = 15
	}
}

// Zoom returns screen pixels per world unit.
func (c *Camera) Zoom() float64 {
	if c.WorldWidth <= 0 {
		return 1
	}
	return c.Viewport.Width / c.WorldWidth
}

// Follow starts a linear rise toward elevation y at RiseSpeed per frame.
// The camera never moves down while following.
func (c *Camera) Follow(y float64) {
	if y <= c.Y || y == c.target {
		return
	}
	c.target = y
	frames := (y - c.Y) / c.RiseSpeed
	c.tween = gween.New(float32(c.Y), float32(y), float32(frames), ease.Linear)
}

// FollowTower points the camera at a tower of n layers with the given
// layer height.
func (c *Camera) FollowTower(n int, layerHeight float64) {
	c.Follow(layerHeight*float64(n-2) + cameraEye)
}

// Reset snaps the camera back to its starting elevation.
func (c *Camera) Reset() {
	c.Y = cameraEye
	c.target = cameraEye
	c.tween = nil
}

// Moving reports whether a rise is in progress.
func (c *Camera) Moving() bool {
	return c.tween != nil
}

func (c *Camera) update() {
	if c.tween == nil {
		return
	}
	y, done := c.tween.Update(1)
	c.Y = float64(y)
	if done {
		c.Y = c.target
		c.tween = nil
	}
}

// Look returns the world point at the center of the viewport.
func (c *Camera) Look() mgl64.Vec3 {
	return mgl64.Vec3{0, c.Y - cameraEye, 0}
}

// Project maps a world point to screen coordinates. depth grows away from
// the viewer.
func (c *Camera) Project(p mgl64.Vec3) (x, y, depth float64) {
	d := p.Sub(c.Look())
	z := c.Zoom()
	x = c.Viewport.X + c.Viewport.Width/2 + d.Dot(viewRight)*z
	y = c.Viewport.Y + c.Viewport.Height/2 - d.Dot(viewUp)*z
	return x, y, d.Dot(viewForward)
}
