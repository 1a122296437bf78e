package towerstack

import "github.com/go-gl/mathgl/mgl64"

// Tower is the ordered stack of layers plus the overhangs broken off them.
// Layers are append-only; index order is height order.
type Tower struct {
	layerHeight float64
	debrisMass  float64

	world    *World
	renderer Renderer
	palette  Palette

	layers    []*Layer
	overhangs []*Overhang
}

func newTower(cfg Config, world *World, r Renderer, p Palette) *Tower {
	return &Tower{
		layerHeight: cfg.BoxHeight,
		debrisMass:  cfg.DebrisMass,
		world:       world,
		renderer:    r,
		palette:     p,
	}
}

// AddLayer appends a static layer in the next stack slot. Its height is
// derived from the slot index.
func (t *Tower) AddLayer(x, z, width, depth float64, axis Axis) *Layer {
	index := len(t.layers)
	pos := mgl64.Vec3{x, t.layerHeight * float64(index), z}
	size := mgl64.Vec3{width, t.layerHeight, depth}

	l := &Layer{
		Position:   pos,
		Width:      width,
		Depth:      depth,
		Axis:       axis,
		visualSize: size,
	}
	l.Visual = t.renderer.CreateBox(size, t.palette.Layer(index))
	t.renderer.SetPosition(l.Visual, pos)
	l.Body = t.world.AddBody(NewBox(width, t.layerHeight, depth), pos, 0)

	t.layers = append(t.layers, l)
	return l
}

// AddOverhang spawns a dynamic fragment level with the top layer.
func (t *Tower) AddOverhang(x, z, width, depth float64) *Overhang {
	pos := mgl64.Vec3{x, t.layerHeight * float64(len(t.layers)-1), z}
	size := mgl64.Vec3{width, t.layerHeight, depth}

	o := &Overhang{
		Position: pos,
		Width:    width,
		Depth:    depth,
	}
	o.Visual = t.renderer.CreateBox(size, t.palette.Layer(len(t.layers)))
	t.renderer.SetPosition(o.Visual, pos)
	o.Body = t.world.AddBody(NewBox(width, t.layerHeight, depth), pos, t.debrisMass)

	t.overhangs = append(t.overhangs, o)
	return o
}

// Top returns the highest layer, or nil for an empty tower.
func (t *Tower) Top() *Layer {
	if len(t.layers) == 0 {
		return nil
	}
	return t.layers[len(t.layers)-1]
}

// Below returns the layer under the top one, or nil if there is none.
func (t *Tower) Below() *Layer {
	if len(t.layers) < 2 {
		return nil
	}
	return t.layers[len(t.layers)-2]
}

// Len returns the number of layers.
func (t *Tower) Len() int {
	return len(t.layers)
}

// Height returns the height of the next free stack slot.
func (t *Tower) Height() float64 {
	return t.layerHeight * float64(len(t.layers))
}

// LayerHeight returns the fixed height of one layer.
func (t *Tower) LayerHeight() float64 {
	return t.layerHeight
}

// Layers returns the stack bottom to top. The returned slice MUST NOT be
// mutated.
func (t *Tower) Layers() []*Layer {
	return t.layers
}

// Overhangs returns every fragment in creation order. The returned slice
// MUST NOT be mutated.
func (t *Tower) Overhangs() []*Overhang {
	return t.overhangs
}
