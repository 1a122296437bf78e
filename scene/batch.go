package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/towerstack"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Every face is an untextured quad tinted through vertex colors.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// emitBackground adds a full-viewport quad shaded from top to bottom.
func (s *Scene) emitBackground() {
	v := s.camera.Viewport
	top, bottom := s.background[0], s.background[1]
	cmd := RenderCommand{RenderLayer: LayerBackground, treeOrder: -1}
	xs := [4]float64{v.X, v.X + v.Width, v.X + v.Width, v.X}
	ys := [4]float64{v.Y, v.Y, v.Y + v.Height, v.Y + v.Height}
	for k := range cmd.verts {
		c := top
		if k >= 2 {
			c = bottom
		}
		cmd.verts[k] = ebiten.Vertex{
			DstX:   float32(xs[k]),
			DstY:   float32(ys[k]),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: 1,
		}
	}
	s.commands = append(s.commands, cmd)
}

// SetBackground sets the gradient colors of the top and bottom edge.
func (s *Scene) SetBackground(top, bottom towerstack.Color) {
	s.background = [2]towerstack.Color{top, bottom}
}

// submitBatches coalesces the sorted commands into a single DrawTriangles32
// call. All faces share the white pixel, so the batch key never changes.
func (s *Scene) submitBatches(target *ebiten.Image) {
	if len(s.commands) == 0 {
		return
	}
	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]
	for i := range s.commands {
		s.appendQuad(&s.commands[i])
	}
	s.flushBatch(target)
}

// appendQuad appends 4 vertices and 6 indices for a single face.
func (s *Scene) appendQuad(cmd *RenderCommand) {
	base := uint32(len(s.batchVerts))
	s.batchVerts = append(s.batchVerts, cmd.verts[:]...)
	s.batchInds = append(s.batchInds,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func (s *Scene) flushBatch(target *ebiten.Image) {
	if len(s.batchInds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	target.DrawTriangles32(s.batchVerts, s.batchInds, ensureWhitePixel(), &op)
	s.stats.batchCount++
	s.batchVerts = s.batchVerts[:0]
	s.batchInds = s.batchInds[:0]
}
