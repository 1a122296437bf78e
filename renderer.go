package towerstack

import "github.com/go-gl/mathgl/mgl64"

// Renderer owns the visuals of a game. The core creates one box visual per
// layer, overhang, foundation slab and perfect marker, then only ever moves,
// scales and rotates them; visuals are never destroyed.
type Renderer interface {
	// CreateBox creates a box visual centered at the origin.
	CreateBox(size mgl64.Vec3, c Color) Handle
	SetPosition(h Handle, pos mgl64.Vec3)
	SetScale(h Handle, scale mgl64.Vec3)
	SetOrientation(h Handle, q mgl64.Quat)
	// Render is called once at the end of every frame.
	Render()
}

// Headless returns a Renderer that issues handles and draws nothing.
func Headless() Renderer {
	return &headless{}
}

type headless struct {
	next Handle
}

func (h *headless) CreateBox(mgl64.Vec3, Color) Handle {
	h.next++
	return h.next
}

func (*headless) SetPosition(Handle, mgl64.Vec3)   {}
func (*headless) SetScale(Handle, mgl64.Vec3)      {}
func (*headless) SetOrientation(Handle, mgl64.Quat) {}
func (*headless) Render()                           {}
