package scene

import "github.com/hajimehoshi/ebiten/v2"

// Render layers. Background first, then boxes, then overlays.
const (
	LayerBackground uint8 = iota
	LayerBoxes
	LayerOverlay
)

// RenderCommand is one shaded box face ready for submission.
type RenderCommand struct {
	verts       [4]ebiten.Vertex
	RenderLayer uint8
	Depth       float64
	treeOrder   int // assigned during traversal for stable sort
}

// traverse emits one command per visible face of every visible node.
func (s *Scene) traverse() {
	s.commands = s.commands[:0]
	treeOrder := 0
	for _, n := range s.nodes {
		if !n.Visible {
			continue
		}
		s.emitBox(n, &treeOrder)
	}
}

func (s *Scene) emitBox(n *Node, treeOrder *int) {
	corners := n.corners()
	var projected [8][3]float64
	for i, c := range corners {
		x, y, d := s.camera.Project(c)
		projected[i] = [3]float64{x, y, d}
	}
	for _, f := range boxFaces {
		normal := n.Orientation.Rotate(f.normal)
		if !facesViewer(normal) {
			continue
		}
		light := float32(shade(normal))
		r := float32(n.Color.R) * light
		g := float32(n.Color.G) * light
		b := float32(n.Color.B) * light
		a := float32(n.Color.A)

		cmd := RenderCommand{RenderLayer: LayerBoxes, treeOrder: *treeOrder}
		*treeOrder++
		var depth float64
		for k, ci := range f.corners {
			p := projected[ci]
			depth += p[2]
			cmd.verts[k] = ebiten.Vertex{
				DstX:   float32(p[0]),
				DstY:   float32(p[1]),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: r * a,
				ColorG: g * a,
				ColorB: b * a,
				ColorA: a,
			}
		}
		cmd.Depth = depth / 4
		s.commands = append(s.commands, cmd)
	}
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same
// position as b. Farther faces draw first; treeOrder keeps ties stable.
func commandLessOrEqual(a, b RenderCommand) bool {
	if a.RenderLayer != b.RenderLayer {
		return a.RenderLayer < b.RenderLayer
	}
	if a.Depth != b.Depth {
		return a.Depth > b.Depth
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]RenderCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
