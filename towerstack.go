package towerstack

import "github.com/go-gl/mathgl/mgl64"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the color of the perfect-placement marker.
var ColorWhite = Color{1, 1, 1, 1}

// Axis is a horizontal direction a layer slides and is clipped along.
// The value indexes directly into an mgl64.Vec3.
type Axis int

const (
	AxisX Axis = 0 // slides and clips along world X
	AxisZ Axis = 2 // slides and clips along world Z
)

// Other returns the perpendicular horizontal axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisZ
	}
	return AxisX
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisZ:
		return "z"
	default:
		return "invalid"
	}
}

// Handle identifies a visual owned by a Renderer. Renderers never issue the
// zero Handle.
type Handle uint32

// Outcome classifies a placement.
type Outcome uint8

const (
	OutcomeMiss    Outcome = iota // no overlap; the session ends
	OutcomePartial                // clipped; an overhang breaks off
	OutcomePerfect                // within the perfect threshold; snapped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomePartial:
		return "partial"
	case OutcomePerfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// State is the lifecycle of a Session. GameOver is terminal.
type State uint8

const (
	StateNotStarted State = iota // waiting for the first action
	StateRunning                 // placing layers
	StateGameOver                // a layer missed; only a new Game recovers
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// up returns a vertical offset vector.
func up(y float64) mgl64.Vec3 {
	return mgl64.Vec3{0, y, 0}
}

// sign returns -1, 0 or +1.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
