package towerstack

import (
	"fmt"
	"math"
)

// Feedback messages shown after a placement.
const (
	MessageLate    = "Too late!"
	MessageEarly   = "Too early!"
	MessagePerfect = "Perfect +2"
)

// PlacementResult describes what a placement did to the tower.
type PlacementResult struct {
	Outcome Outcome
	// Delta is the signed misalignment along the sliding axis. Forced to 0
	// on a perfect placement.
	Delta float64
	// OverhangSize is |Delta|.
	OverhangSize float64
	// Size is the top layer's extent along the axis before clipping.
	Size float64
	// Overlap is Size - OverhangSize, the extent that survives.
	Overlap    float64
	ScoreDelta int
	// Overhang is the fragment broken off, or nil.
	Overhang *Overhang
	// Next is the new active layer, or nil on a miss.
	Next    *Layer
	Message string
}

// Placer clips the active layer against the one beneath it and grows the
// tower.
type Placer struct {
	PerfectThreshold float64
	// Spawn is where the next layer starts on its sliding axis.
	Spawn float64

	tower *Tower
	world *World
}

func newPlacer(cfg Config, t *Tower, w *World) *Placer {
	return &Placer{
		PerfectThreshold: cfg.PerfectThreshold,
		Spawn:            cfg.Spawn,
		tower:            t,
		world:            w,
	}
}

// Place drops top onto prev. On a miss nothing is mutated. Otherwise top is
// clipped or snapped in place, an overhang may be spawned, and a new active
// layer is appended on the perpendicular axis.
//
// Panics if either layer is nil or both are the same layer.
func (p *Placer) Place(top, prev *Layer) PlacementResult {
	if top == nil || prev == nil {
		panic("towerstack: Place needs two layers")
	}
	if top == prev {
		panic("towerstack: Place called with the same layer twice")
	}

	axis := top.Axis
	delta := top.Position[axis] - prev.Position[axis]
	overhangSize := math.Abs(delta)
	size := top.Extent(axis)
	overlap := size - overhangSize

	res := PlacementResult{
		Delta:        delta,
		OverhangSize: overhangSize,
		Size:         size,
		Overlap:      overlap,
		Message:      MessageEarly,
	}
	if delta > 0 {
		res.Message = MessageLate
	}

	if overlap <= 0 {
		res.Outcome = OutcomeMiss
		return res
	}

	if overhangSize < p.PerfectThreshold {
		res.Outcome = OutcomePerfect
		res.Delta, res.OverhangSize, res.Overlap = 0, 0, size
		res.ScoreDelta = 2
		res.Message = MessagePerfect

		top.Position[0] = prev.Position[0]
		top.Position[2] = prev.Position[2]
		top.Position[1] = prev.Position[1] + p.tower.LayerHeight()
		top.Body.Position = top.Position
		top.dirty = true
	} else {
		res.Outcome = OutcomePartial
		res.ScoreDelta = 1
		p.clip(top, &res)
	}

	res.Next = p.spawnNext(top)
	return res
}

// clip shrinks top to the overlap region and breaks off the rest.
func (p *Placer) clip(top *Layer, res *PlacementResult) {
	axis := top.Axis

	top.setExtent(axis, res.Overlap)
	top.Position[axis] -= res.Delta / 2
	top.Body.Position = top.Position
	p.world.ReplaceShape(top.Body, NewBox(top.Width, p.tower.LayerHeight(), top.Depth))
	top.dirty = true

	if res.OverhangSize == 0 {
		return
	}

	shift := sign(res.Delta) * (res.Overlap/2 + res.OverhangSize/2)
	x, z := top.Position[0], top.Position[2]
	w, d := top.Width, top.Depth
	if axis == AxisX {
		x += shift
		w = res.OverhangSize
	} else {
		z += shift
		d = res.OverhangSize
	}
	res.Overhang = p.tower.AddOverhang(x, z, w, d)
}

// spawnNext appends the next active layer. It keeps the placed layer's
// coordinate on the old axis and starts off-tower on the new one.
func (p *Placer) spawnNext(top *Layer) *Layer {
	next := top.Axis.Other()
	x, z := p.Spawn, p.Spawn
	if top.Axis == AxisX {
		x = top.Position[0]
	} else {
		z = top.Position[2]
	}
	return p.tower.AddLayer(x, z, top.Width, top.Depth, next)
}

// String is used by debug logging.
func (r PlacementResult) String() string {
	return fmt.Sprintf("%s delta=%.3f overlap=%.3f score+%d", r.Outcome, r.Delta, r.Overlap, r.ScoreDelta)
}
