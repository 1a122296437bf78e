package towerstack

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette derives every color of a session from one start hue.
type Palette struct {
	// StartHue is in degrees; values beyond 360 wrap.
	StartHue       float64
	Step           float64
	FoundationStep float64
}

// Layer returns the color of the layer at the given stack index.
func (p Palette) Layer(index int) Color {
	return hsl(p.StartHue+float64(index)*p.Step, 1, 0.5)
}

// Foundation returns the color of a foundation slab depth units below the base.
func (p Palette) Foundation(depth float64) Color {
	return hsl(p.StartHue-depth*p.FoundationStep, 1, 0.5)
}

// Background returns the top and bottom colors of the backdrop gradient.
func (p Palette) Background() (top, bottom Color) {
	return hsl(p.StartHue, 1, 0.25), hsl(p.StartHue, 1, 0.75)
}

func hsl(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, s, l).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}
