package towerstack

import (
	"testing"

	"github.com/google/uuid"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(0.15)
	if s.ID == uuid.Nil {
		t.Error("session has no id")
	}
	if s.State() != StateNotStarted || s.Score != 0 || s.Speed != 0.15 {
		t.Errorf("new session = %+v", s)
	}

	s.Start()
	if s.State() != StateRunning {
		t.Errorf("State = %s, want running", s.State())
	}
	s.AddScore(1)
	s.AddScore(2)
	if s.Score != 3 {
		t.Errorf("Score = %d, want 3", s.Score)
	}

	s.Finish()
	if s.State() != StateGameOver {
		t.Errorf("State = %s, want game-over", s.State())
	}
}

func TestSessionIllegalTransitions(t *testing.T) {
	mustPanic(t, "finish before start", func() { NewSession(1).Finish() })
	mustPanic(t, "score before start", func() { NewSession(1).AddScore(1) })
	mustPanic(t, "start twice", func() {
		s := NewSession(1)
		s.Start()
		s.Start()
	})
	mustPanic(t, "score after game over", func() {
		s := NewSession(1)
		s.Start()
		s.Finish()
		s.AddScore(1)
	})
	mustPanic(t, "restart after game over", func() {
		s := NewSession(1)
		s.Start()
		s.Finish()
		s.Start()
	})
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateNotStarted: "not-started",
		StateRunning:    "running",
		StateGameOver:   "game-over",
		State(9):        "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
