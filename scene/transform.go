package scene

import "github.com/go-gl/mathgl/mgl64"

// The view is a fixed isometric projection: the eye sits on the (1, 1, 1)
// diagonal looking back at the tower.
var (
	viewRight   = mgl64.Vec3{1, 0, -1}.Normalize()
	viewUp      = mgl64.Vec3{-1, 2, -1}.Normalize()
	viewForward = mgl64.Vec3{-1, -1, -1}.Normalize()
)

// Lighting: ambient plus one directional light, both at 0.6.
const (
	ambientLight     = 0.6
	directionalLight = 0.6
)

var lightDir = mgl64.Vec3{10, 20, 0}.Normalize()

// facesViewer reports whether a world-space normal points toward the eye.
func facesViewer(normal mgl64.Vec3) bool {
	return normal.Dot(viewForward) < 0
}

// shade returns the light intensity on a face with the given world normal.
func shade(normal mgl64.Vec3) float64 {
	d := normal.Dot(lightDir)
	if d < 0 {
		d = 0
	}
	return min(1, ambientLight+directionalLight*d)
}

// Rect is an axis-aligned screen rectangle, origin top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
