package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a player intent decoded from raw input.
type Action uint8

const (
	// ActionDrop places the moving block, or starts a game.
	ActionDrop Action = iota
	// ActionRestart begins a new game.
	ActionRestart
	// ActionVolumeDown lowers the sound volume.
	ActionVolumeDown
	// ActionVolumeUp raises the sound volume.
	ActionVolumeUp
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionDrop:
		return "drop"
	case ActionRestart:
		return "restart"
	case ActionVolumeDown:
		return "volume-down"
	case ActionVolumeUp:
		return "volume-up"
	default:
		return "unknown"
	}
}

// InputSource identifies the device that produced an action.
type InputSource uint8

const (
	SourceMouse InputSource = iota
	SourceTouch
	SourceKeyboard
	SourceInjected
)

// ActionContext carries an action and where on screen it happened.
// X and Y are zero for keyboard actions.
type ActionContext struct {
	Action Action
	Source InputSource
	X, Y   float64
}

// keyBindings maps keys to actions. Space and Enter both drop.
var keyBindings = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionDrop},
	{ebiten.KeyEnter, ActionDrop},
	{ebiten.KeyR, ActionRestart},
	{ebiten.KeyMinus, ActionVolumeDown},
	{ebiten.KeyEqual, ActionVolumeUp},
}

type actionHandler struct {
	id uint32
	fn func(ActionContext)
}

type handlerRegistry struct {
	actions []actionHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	for i, a := range h.reg.actions {
		if a.id == h.id {
			h.reg.actions = append(h.reg.actions[:i], h.reg.actions[i+1:]...)
			return
		}
	}
}

// OnAction registers a callback fired for every decoded action.
func (s *Scene) OnAction(fn func(ActionContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.actions = append(s.handlers.actions, actionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

func (s *Scene) fire(ctx ActionContext) {
	for _, h := range s.handlers.actions {
		h.fn(ctx)
	}
}

// processInput decodes this frame's input into actions. An injected event
// replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.fire(ActionContext{Action: ActionDrop, Source: SourceMouse, X: float64(x), Y: float64(y)})
	}

	s.touchBuf = inpututil.AppendJustPressedTouchIDs(s.touchBuf[:0])
	for _, id := range s.touchBuf {
		x, y := ebiten.TouchPosition(id)
		s.fire(ActionContext{Action: ActionDrop, Source: SourceTouch, X: float64(x), Y: float64(y)})
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			s.fire(ActionContext{Action: b.action, Source: SourceKeyboard})
		}
	}
}
