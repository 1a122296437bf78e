package scene

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
}

// Run opens a resizable window and drives s until the window closes or
// the update callback returns an error.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 480
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	s.ShowFPS(cfg.ShowFPS)
	return ebiten.RunGame(&runner{scene: s})
}

// runner adapts a Scene to ebiten.Game.
type runner struct {
	scene *Scene
}

func (r *runner) Update() error {
	return r.scene.Update()
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.scene.Draw(screen)
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.scene.camera.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
