package towerstack

import (
	"fmt"

	"github.com/google/uuid"
)

// Session holds the counters of one play-through. A Session is never reset;
// a new game gets a new Session.
type Session struct {
	ID uuid.UUID
	// Score counts placed layers; a perfect placement counts twice.
	Score int
	// Speed is the signed slide speed of the active layer.
	Speed float64
	// Perfect reports whether the latest placement was perfect.
	Perfect bool

	state State
}

// NewSession returns a session waiting for its first action.
func NewSession(speed float64) *Session {
	return &Session{ID: uuid.New(), Speed: speed}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Start moves NotStarted to Running.
func (s *Session) Start() {
	s.transition(StateNotStarted, StateRunning)
}

// Finish moves Running to GameOver.
func (s *Session) Finish() {
	s.transition(StateRunning, StateGameOver)
}

// AddScore adds n to the score. Only valid while running.
func (s *Session) AddScore(n int) {
	if s.state != StateRunning {
		panic(fmt.Sprintf("towerstack: AddScore in state %s", s.state))
	}
	s.Score += n
}

func (s *Session) transition(from, to State) {
	if s.state != from {
		panic(fmt.Sprintf("towerstack: illegal transition %s -> %s", s.state, to))
	}
	s.state = to
}
