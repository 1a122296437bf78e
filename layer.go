package towerstack

import "github.com/go-gl/mathgl/mgl64"

// Layer is one segment of the tower. While it is the active layer it slides
// along Axis; when placed it is clipped along the same axis.
type Layer struct {
	Position mgl64.Vec3
	Width    float64
	Depth    float64
	Axis     Axis
	Visual   Handle
	Body     *Body

	visualSize mgl64.Vec3 // extents the visual was created with
	dirty      bool       // body moved or reshaped since the last projection
}

// Extent returns the layer's size along a horizontal axis.
func (l *Layer) Extent(axis Axis) float64 {
	if axis == AxisX {
		return l.Width
	}
	return l.Depth
}

func (l *Layer) setExtent(axis Axis, v float64) {
	if axis == AxisX {
		l.Width = v
	} else {
		l.Depth = v
	}
}

// scale is the visual scale that stretches the original visual to the
// current extents.
func (l *Layer) scale() mgl64.Vec3 {
	return mgl64.Vec3{
		l.Width / l.visualSize[0],
		1,
		l.Depth / l.visualSize[2],
	}
}

// Overhang is a fragment clipped off a layer. Position is where it broke
// off; afterwards the body owns its transform.
type Overhang struct {
	Position mgl64.Vec3
	Width    float64
	Depth    float64
	Visual   Handle
	Body     *Body
}
