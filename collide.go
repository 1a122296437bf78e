package towerstack

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// contact is a single box/box overlap found at the start of a Step.
// normal points from a to b.
type contact struct {
	a, b     *Body
	normal   mgl64.Vec3
	tangents [2]mgl64.Vec3
	depth    float64

	normalImpulse  float64
	tangentImpulse [2]float64
}

// unitAxes are the world axes a contact normal can take.
var unitAxes = [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// detect rebuilds the contact list. Naive broadphase: every dynamic body is
// tested against every other body; static pairs never collide.
func (w *World) detect(dt float64) {
	w.contacts = w.contacts[:0]
	for i, a := range w.bodies {
		for j, b := range w.bodies {
			if j == i {
				continue
			}
			// Visit each dynamic/dynamic pair once; dynamic/static pairs are
			// visited from the dynamic side only.
			if a.Type == BodyStatic {
				continue
			}
			if b.Type == BodyDynamic && j < i {
				continue
			}
			w.collide(a, b, dt)
		}
	}
}

// collide tests the oriented bounds of a and b and appends a contact on the
// axis of least penetration.
func (w *World) collide(a, b *Body, dt float64) {
	ha, hb := a.halfBounds(), b.halfBounds()
	d := b.Position.Sub(a.Position)

	axis := -1
	depth := math.Inf(1)
	for i := 0; i < 3; i++ {
		o := ha[i] + hb[i] - math.Abs(d[i])
		if o <= 0 {
			return
		}
		if o < depth {
			depth = o
			axis = i
		}
	}

	s := 1.0
	if d[axis] < 0 {
		s = -1
	}
	c := contact{
		a:      a,
		b:      b,
		normal: unitAxes[axis].Mul(s),
		depth:  depth,
	}
	c.tangents[0] = unitAxes[(axis+1)%3]
	c.tangents[1] = unitAxes[(axis+2)%3]
	w.contacts = append(w.contacts, c)

	if axis == 1 {
		// a rests on b when the normal points down from a.
		if s < 0 {
			w.tip(a, b, hb, dt)
		} else {
			w.tip(b, a, ha, dt)
		}
	}
}

// tip spins a dynamic body whose center hangs past the edge of the body it
// rests on, so debris rolls off ledges instead of balancing on a corner.
func (w *World) tip(top, support *Body, hs mgl64.Vec3, dt float64) {
	if top.Type == BodyStatic {
		return
	}
	rate := w.cfg.TipRate * dt
	supported := true

	dx := top.Position[0] - support.Position[0]
	if math.Abs(dx) > hs[0] {
		top.AngularVelocity[2] -= sign(dx) * rate
		supported = false
	}
	dz := top.Position[2] - support.Position[2]
	if math.Abs(dz) > hs[2] {
		top.AngularVelocity[0] += sign(dz) * rate
		supported = false
	}

	if supported {
		// Settle: a fully supported body sheds most of its spin.
		top.AngularVelocity = top.AngularVelocity.Mul(0.8)
	}
}

// solve applies one sequential-impulse pass to a contact. Impulses act
// through the body centers; accumulated impulses are clamped so a contact
// can push but never pull.
func (w *World) solve(c *contact) {
	k := c.a.invMass + c.b.invMass
	if k == 0 {
		return
	}

	rv := c.b.Velocity.Sub(c.a.Velocity)
	vn := rv.Dot(c.normal)
	lambda := -(1 + w.cfg.Restitution) * vn / k

	old := c.normalImpulse
	c.normalImpulse = math.Max(old+lambda, 0)
	lambda = c.normalImpulse - old
	w.applyImpulse(c, c.normal.Mul(lambda))

	limit := w.cfg.Friction * c.normalImpulse
	for i, t := range c.tangents {
		rv = c.b.Velocity.Sub(c.a.Velocity)
		lt := -rv.Dot(t) / k
		old := c.tangentImpulse[i]
		c.tangentImpulse[i] = mgl64.Clamp(old+lt, -limit, limit)
		lt = c.tangentImpulse[i] - old
		w.applyImpulse(c, t.Mul(lt))
	}
}

func (w *World) applyImpulse(c *contact, p mgl64.Vec3) {
	c.a.Velocity = c.a.Velocity.Sub(p.Mul(c.a.invMass))
	c.b.Velocity = c.b.Velocity.Add(p.Mul(c.b.invMass))
}

// correct pushes overlapping bodies apart by a fraction of the penetration
// measured at detection time.
func (w *World) correct() {
	for i := range w.contacts {
		c := &w.contacts[i]
		k := c.a.invMass + c.b.invMass
		if k == 0 {
			continue
		}
		excess := c.depth - w.cfg.Slop
		if excess <= 0 {
			continue
		}
		push := c.normal.Mul(excess * w.cfg.Correction / k)
		c.a.Position = c.a.Position.Sub(push.Mul(c.a.invMass))
		c.b.Position = c.b.Position.Add(push.Mul(c.b.invMass))
	}
}
