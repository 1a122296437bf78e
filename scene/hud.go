package scene

import (
	"bytes"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/towerstack"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay text.
const (
	instructionsText = "Stack the blocks\nClick, tap or press Space"
	gameOverText     = "Game over"
	restartText      = "Click, tap or press R to restart"
)

// hudFonts are the three sizes the HUD draws with, parsed on first draw.
type hudFonts struct {
	score, message, small *Font
}

// HUD tracks the score, the feedback message and the game phase from the
// game's event stream and draws them over the tower.
type HUD struct {
	score     int
	message   string
	messageID uint64
	state     towerstack.State

	// Color of all overlay text.
	Color towerstack.Color

	fonts *hudFonts
}

func newHUD() *HUD {
	return &HUD{Color: towerstack.Color{R: 0.2, G: 0.2, B: 0.2, A: 1}}
}

// EmitEvent implements towerstack.EventSink.
func (h *HUD) EmitEvent(e towerstack.Event) {
	switch e.Type {
	case towerstack.EventStart:
		h.state = towerstack.StateRunning
	case towerstack.EventScore:
		h.score = e.Score
	case towerstack.EventMessage:
		h.message = e.Message
		h.messageID = e.MessageID
	case towerstack.EventMessageHidden:
		// A hide for an older message must not clear a newer one.
		if e.MessageID == h.messageID {
			h.message = ""
		}
	case towerstack.EventGameOver:
		h.state = towerstack.StateGameOver
		h.score = e.Score
	}
}

// Score returns the score last reported.
func (h *HUD) Score() int { return h.score }

// Message returns the feedback message on screen, or "".
func (h *HUD) Message() string { return h.message }

// State returns the game phase the HUD is showing.
func (h *HUD) State() towerstack.State { return h.state }

// Reset returns the HUD to the instructions screen.
func (h *HUD) Reset() {
	h.score = 0
	h.message = ""
	h.messageID = 0
	h.state = towerstack.StateNotStarted
}

func (h *HUD) loadFonts() (*hudFonts, error) {
	if h.fonts != nil {
		return h.fonts, nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	h.fonts = &hudFonts{
		score:   newFont(source, 64),
		message: newFont(source, 32),
		small:   newFont(source, 18),
	}
	return h.fonts, nil
}

func (h *HUD) draw(screen *ebiten.Image) error {
	f, err := h.loadFonts()
	if err != nil {
		return err
	}
	w := float64(screen.Bounds().Dx())
	ht := float64(screen.Bounds().Dy())
	cx := w / 2

	switch h.state {
	case towerstack.StateNotStarted:
		f.small.drawCentered(screen, instructionsText, cx, ht*0.2, h.Color)
	case towerstack.StateGameOver:
		y := ht * 0.25
		f.message.drawCentered(screen, gameOverText, cx, y, h.Color)
		y += f.message.LineHeight()
		f.score.drawCentered(screen, strconv.Itoa(h.score), cx, y, h.Color)
		y += f.score.LineHeight()
		f.small.drawCentered(screen, restartText, cx, y, h.Color)
	default:
		f.score.drawCentered(screen, strconv.Itoa(h.score), cx, ht*0.05, h.Color)
		if h.message != "" {
			f.message.drawCentered(screen, h.message, cx, ht*0.05+f.score.LineHeight(), h.Color)
		}
	}
	return nil
}
