package towerstack

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// perfectMarker is the white halo flashed under a perfectly placed layer.
// It shrinks linearly to zero and stays in the scene at zero scale.
type perfectMarker struct {
	visual Handle
	tween  *gween.Tween
	scale  float64
	done   bool
}

// newPerfectMarker creates the halo around l, sized from the layer's width.
func newPerfectMarker(r Renderer, l *Layer, frames int) *perfectMarker {
	pad := l.Width / 3
	size := mgl64.Vec3{l.Width + pad, 0, l.Depth + pad}
	m := &perfectMarker{
		visual: r.CreateBox(size, ColorWhite),
		tween:  gween.New(1, 0, float32(frames), ease.Linear),
		scale:  1,
	}
	r.SetPosition(m.visual, l.Position.Sub(up(l.Body.Shape().HalfExtents[1])))
	return m
}

// update shrinks the marker by one frame.
func (m *perfectMarker) update(r Renderer) {
	if m.done {
		return
	}
	v, finished := m.tween.Update(1)
	m.scale = float64(v)
	if m.scale < 0 {
		m.scale = 0
	}
	m.done = finished
	r.SetScale(m.visual, mgl64.Vec3{m.scale, 1, m.scale})
}
