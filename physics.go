package towerstack

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyType distinguishes simulated bodies from immovable ones.
type BodyType uint8

const (
	BodyDynamic BodyType = iota // integrated under gravity and contacts
	BodyStatic                  // infinite mass; moved only by the caller
)

// Box is a box collision shape, axis aligned in body space.
type Box struct {
	HalfExtents mgl64.Vec3
}

// NewBox returns a Box with the given full extents.
func NewBox(width, height, depth float64) Box {
	return Box{HalfExtents: mgl64.Vec3{width / 2, height / 2, depth / 2}}
}

// Size returns the full extents of the box.
func (b Box) Size() mgl64.Vec3 {
	return b.HalfExtents.Mul(2)
}

func (b Box) valid() bool {
	return b.HalfExtents[0] > 0 && b.HalfExtents[1] > 0 && b.HalfExtents[2] > 0
}

// Body is a rigid box in a World. Position is the center of the box.
//
// Static bodies may be repositioned freely between steps (the active layer
// is driven this way); dynamic bodies should only be nudged through their
// velocities.
type Body struct {
	ID              uint32
	Type            BodyType
	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	mass       float64
	invMass    float64
	invInertia mgl64.Vec3 // diagonal, body space
	shape      Box
	world      *World
}

// Mass returns the body's mass. Static bodies report 0.
func (b *Body) Mass() float64 {
	return b.mass
}

// Shape returns the body's current collision shape.
func (b *Body) Shape() Box {
	return b.shape
}

// IsStatic reports whether the body is immovable.
func (b *Body) IsStatic() bool {
	return b.Type == BodyStatic
}

// setMass updates mass-derived fields from the current shape.
func (b *Body) setMass(mass float64) {
	b.mass = mass
	if mass == 0 {
		b.Type = BodyStatic
		b.invMass = 0
		b.invInertia = mgl64.Vec3{}
		b.Velocity = mgl64.Vec3{}
		b.AngularVelocity = mgl64.Vec3{}
		return
	}
	b.Type = BodyDynamic
	b.invMass = 1 / mass
	s := b.shape.Size()
	w2, h2, d2 := s[0]*s[0], s[1]*s[1], s[2]*s[2]
	b.invInertia = mgl64.Vec3{
		12 / (mass * (h2 + d2)),
		12 / (mass * (w2 + d2)),
		12 / (mass * (w2 + h2)),
	}
}

// halfBounds returns the half extents of the world-space AABB enclosing
// the oriented box.
func (b *Body) halfBounds() mgl64.Vec3 {
	e := b.shape.HalfExtents
	ex := b.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
	ey := b.Orientation.Rotate(mgl64.Vec3{0, 1, 0})
	ez := b.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
	var h mgl64.Vec3
	for i := 0; i < 3; i++ {
		h[i] = mgl64.Abs(ex[i])*e[0] + mgl64.Abs(ey[i])*e[1] + mgl64.Abs(ez[i])*e[2]
	}
	return h
}

// WorldConfig holds the tuning of a World. The zero value is not usable;
// start from DefaultWorldConfig.
type WorldConfig struct {
	// Gravity is the downward acceleration magnitude.
	Gravity float64 `yaml:"gravity"`
	// Timestep is the fixed simulated time of one Step, in seconds.
	Timestep float64 `yaml:"timestep"`
	// Iterations is the number of velocity solver passes per Step.
	Iterations int `yaml:"iterations"`
	// Friction is the Coulomb coefficient shared by all contacts.
	Friction float64 `yaml:"friction"`
	// Restitution is the bounciness shared by all contacts (0 = none).
	Restitution float64 `yaml:"restitution"`
	// AngularDamping is the fraction of spin removed per second.
	AngularDamping float64 `yaml:"angular_damping"`
	// TipRate is the angular acceleration (rad/s²) applied to a body whose
	// center hangs past the edge of its support.
	TipRate float64 `yaml:"tip_rate"`
	// Slop is the penetration depth tolerated before position correction.
	Slop float64 `yaml:"slop"`
	// Correction is the fraction of remaining penetration removed per Step.
	Correction float64 `yaml:"correction"`
}

// DefaultWorldConfig returns gravity 10, a 1/60 s step and 40 solver
// iterations, enough to keep stacked boxes from sinking into each other.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:        10,
		Timestep:       1.0 / 60,
		Iterations:     40,
		Friction:       0.3,
		Restitution:    0,
		AngularDamping: 0.5,
		TipRate:        12,
		Slop:           0.005,
		Correction:     0.4,
	}
}

// World is a rigid-body simulation of boxes under constant gravity.
// Bodies are never removed; they persist for the life of the World.
type World struct {
	cfg      WorldConfig
	gravity  mgl64.Vec3
	bodies   []*Body
	nextID   uint32
	contacts []contact
}

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	return &World{
		cfg:     cfg,
		gravity: mgl64.Vec3{0, -cfg.Gravity, 0},
	}
}

// Config returns the world's tuning.
func (w *World) Config() WorldConfig {
	return w.cfg
}

// Bodies returns all bodies in insertion order. The returned slice MUST NOT
// be mutated.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// AddBody inserts a box at pos. A mass of 0 makes the body static; a
// positive mass makes it dynamic. Panics on negative mass or a degenerate
// shape.
func (w *World) AddBody(shape Box, pos mgl64.Vec3, mass float64) *Body {
	if mass < 0 {
		panic(fmt.Sprintf("towerstack: negative body mass %v", mass))
	}
	if !shape.valid() {
		panic(fmt.Sprintf("towerstack: invalid box half extents %v", shape.HalfExtents))
	}
	w.nextID++
	b := &Body{
		ID:          w.nextID,
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
		shape:       shape,
		world:       w,
	}
	b.setMass(mass)
	w.bodies = append(w.bodies, b)
	return b
}

// SetMass changes a body's mass, switching it between static and dynamic.
// Used to hand a resting body over to the simulation.
func (w *World) SetMass(b *Body, mass float64) {
	w.mustOwn(b, "SetMass")
	if mass < 0 {
		panic(fmt.Sprintf("towerstack: negative body mass %v", mass))
	}
	b.setMass(mass)
}

// ReplaceShape swaps a body's collision geometry. The old shape is dropped
// entirely; the next Step collides against the new bounds only.
func (w *World) ReplaceShape(b *Body, shape Box) {
	w.mustOwn(b, "ReplaceShape")
	if !shape.valid() {
		panic(fmt.Sprintf("towerstack: invalid box half extents %v", shape.HalfExtents))
	}
	b.shape = shape
	if b.Type == BodyDynamic {
		b.setMass(b.mass)
	}
}

// Step advances the simulation by one fixed timestep.
func (w *World) Step() {
	dt := w.cfg.Timestep

	for _, b := range w.bodies {
		if b.Type == BodyStatic {
			continue
		}
		b.Velocity = b.Velocity.Add(w.gravity.Mul(dt))
	}

	w.detect(dt)

	for i := 0; i < w.cfg.Iterations; i++ {
		for k := range w.contacts {
			w.solve(&w.contacts[k])
		}
	}

	damp := 1 - w.cfg.AngularDamping*dt
	if damp < 0 {
		damp = 0
	}
	for _, b := range w.bodies {
		if b.Type == BodyStatic {
			continue
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		b.AngularVelocity = b.AngularVelocity.Mul(damp)
		if b.AngularVelocity.Len() > 0 {
			spin := mgl64.Quat{W: 0, V: b.AngularVelocity}
			b.Orientation = b.Orientation.Add(spin.Mul(b.Orientation).Scale(0.5 * dt)).Normalize()
		}
	}

	w.correct()
}

// Energy returns the total kinetic energy of all dynamic bodies.
func (w *World) Energy() float64 {
	var e float64
	for _, b := range w.bodies {
		if b.Type == BodyStatic {
			continue
		}
		e += 0.5 * b.mass * b.Velocity.Dot(b.Velocity)
		for i := 0; i < 3; i++ {
			if b.invInertia[i] > 0 {
				e += 0.5 * b.AngularVelocity[i] * b.AngularVelocity[i] / b.invInertia[i]
			}
		}
	}
	return e
}

// mustOwn panics unless b belongs to this world.
func (w *World) mustOwn(b *Body, op string) {
	if b == nil {
		panic("towerstack: " + op + " on nil body")
	}
	if b.world != w {
		panic(fmt.Sprintf("towerstack: %s on body %d not in this world", op, b.ID))
	}
}
