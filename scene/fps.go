package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget shows FPS and TPS in the bottom-left corner, refreshed every
// half second.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
}

// ShowFPS toggles the FPS overlay.
func (s *Scene) ShowFPS(on bool) {
	if !on {
		s.fps = nil
		return
	}
	if s.fps == nil {
		s.fps = &fpsWidget{lastUpdate: 0.5}
	}
}

func (w *fpsWidget) update() {
	w.lastUpdate += 1 / float64(ebiten.TPS())
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
	}
	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, float64(screen.Bounds().Dy()-36))
	screen.DrawImage(w.img, &op)
}
