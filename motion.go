package towerstack

// Mover slides the active layer back and forth along its axis.
type Mover struct {
	Bound float64
}

// Tick moves layer by speed along its axis and returns the speed for the
// next tick. The direction flips when the following position would pass
// +Bound, or pass -Bound while already moving in the negative direction.
// A layer entering from far below -Bound therefore travels in unimpeded.
func (m Mover) Tick(layer *Layer, speed float64) float64 {
	if layer == nil {
		panic("towerstack: Tick on nil layer")
	}
	axis := layer.Axis
	layer.Position[axis] += speed
	if layer.Body != nil {
		layer.Body.Position[axis] = layer.Position[axis]
	}
	layer.dirty = true

	next := layer.Position[axis] + speed
	if next > m.Bound {
		return -speed
	}
	if next < -m.Bound && speed < 0 {
		return -speed
	}
	return speed
}
