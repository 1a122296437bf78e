package scene

// syntheticEvent represents a single injected input event. Pointer events
// use screen coordinates, identical to real mouse input.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	key     bool
	action  Action
}

// InjectPress queues a pointer press at the given screen coordinates.
// The event is consumed on the next frame's processInput call and drops
// the current block.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectKey queues a key press that decodes to action. Consumes one frame.
func (s *Scene) InjectKey(action Action) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{key: true, action: action})
}

// PendingInput returns how many injected events are still queued.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and fires the
// action it stands for. Returns true if an event was consumed (real input
// should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch {
	case evt.key:
		s.fire(ActionContext{Action: evt.action, Source: SourceInjected})
	case evt.pressed:
		s.fire(ActionContext{Action: ActionDrop, Source: SourceInjected, X: evt.x, Y: evt.y})
	}
	return true
}
