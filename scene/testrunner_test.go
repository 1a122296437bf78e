package scene

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "key", "key": "r"},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Key != "r" {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "drag"}]}`,
		"unknown key":    `{"steps": [{"action": "key", "key": "q"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerStep(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 10, "y": 20},
		{"action": "key", "key": "space"},
		{"action": "wait", "frames": 2},
		{"action": "screenshot", "label": "end"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	var drops int
	s.OnAction(func(ctx ActionContext) {
		if ctx.Action == ActionDrop {
			drops++
		}
	})

	frame := func() {
		runner.step(s)
		if s.PendingInput() > 0 {
			s.processInput()
		}
	}

	frame() // click queued, press consumed
	if drops != 1 {
		t.Fatalf("drops after click = %d, want 1", drops)
	}
	frame() // release consumed, runner waits for the queue
	frame() // key queued and consumed
	if drops != 2 {
		t.Fatalf("drops after key = %d, want 2", drops)
	}
	frame() // wait 2: this frame
	frame() // wait 2: second frame
	if len(s.screenshotQueue) != 0 {
		t.Fatal("screenshot taken before the wait finished")
	}
	frame()
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "end" {
		t.Errorf("screenshotQueue = %v, want [end]", s.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner not done after the last step")
	}
}
