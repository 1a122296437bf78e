package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/towerstack"
)

// Node is a box visual. The box is centered on Position; Size is its
// extent before Scale is applied.
type Node struct {
	ID          towerstack.Handle
	Size        mgl64.Vec3
	Color       towerstack.Color
	Position    mgl64.Vec3
	Scale       mgl64.Vec3
	Orientation mgl64.Quat
	Visible     bool
}

func newNode(id towerstack.Handle, size mgl64.Vec3, c towerstack.Color) *Node {
	return &Node{
		ID:          id,
		Size:        size,
		Color:       c,
		Scale:       mgl64.Vec3{1, 1, 1},
		Orientation: mgl64.QuatIdent(),
		Visible:     true,
	}
}

// corners returns the eight world-space corners. Bit 0 of the index selects
// +X, bit 1 +Y, bit 2 +Z.
func (n *Node) corners() [8]mgl64.Vec3 {
	h := mgl64.Vec3{
		n.Size[0] * n.Scale[0] / 2,
		n.Size[1] * n.Scale[1] / 2,
		n.Size[2] * n.Scale[2] / 2,
	}
	var out [8]mgl64.Vec3
	for i := range out {
		local := h
		if i&1 == 0 {
			local[0] = -local[0]
		}
		if i&2 == 0 {
			local[1] = -local[1]
		}
		if i&4 == 0 {
			local[2] = -local[2]
		}
		out[i] = n.Position.Add(n.Orientation.Rotate(local))
	}
	return out
}

// boxFace is one side of a box: its body-space normal and corner indices.
type boxFace struct {
	normal  mgl64.Vec3
	corners [4]int
}

var boxFaces = [6]boxFace{
	{mgl64.Vec3{1, 0, 0}, [4]int{1, 3, 7, 5}},
	{mgl64.Vec3{-1, 0, 0}, [4]int{0, 4, 6, 2}},
	{mgl64.Vec3{0, 1, 0}, [4]int{2, 6, 7, 3}},
	{mgl64.Vec3{0, -1, 0}, [4]int{0, 1, 5, 4}},
	{mgl64.Vec3{0, 0, 1}, [4]int{4, 5, 7, 6}},
	{mgl64.Vec3{0, 0, -1}, [4]int{0, 2, 3, 1}},
}
