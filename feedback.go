package towerstack

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// messageTimer hides the feedback message after a fixed number of frames.
// Showing a message replaces the pending timer, so a late hide can never
// clobber a newer message.
type messageTimer struct {
	frames float32
	seq    uint64
	tween  *gween.Tween
}

func newMessageTimer(seconds, timestep float64) messageTimer {
	frames := float32(math.Round(seconds / timestep))
	if frames < 1 {
		frames = 1
	}
	return messageTimer{frames: frames}
}

// show starts a new timer and returns the id of the message it guards.
func (m *messageTimer) show() uint64 {
	m.seq++
	m.tween = gween.New(0, 1, m.frames, ease.Linear)
	return m.seq
}

// visible reports whether a message is waiting to be hidden.
func (m *messageTimer) visible() bool {
	return m.tween != nil
}

// update advances one frame. It returns the id of the message to hide once
// its timer runs out.
func (m *messageTimer) update() (uint64, bool) {
	if m.tween == nil {
		return 0, false
	}
	if _, done := m.tween.Update(1); !done {
		return 0, false
	}
	m.tween = nil
	return m.seq, true
}
