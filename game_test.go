package towerstack

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// --- Test doubles ---

type recordedBox struct {
	size   mgl64.Vec3
	color  Color
	pos    mgl64.Vec3
	scale  mgl64.Vec3
	orient mgl64.Quat
}

type recordingRenderer struct {
	boxes   []*recordedBox
	renders int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{}
}

func (r *recordingRenderer) CreateBox(size mgl64.Vec3, c Color) Handle {
	r.boxes = append(r.boxes, &recordedBox{
		size:   size,
		color:  c,
		scale:  mgl64.Vec3{1, 1, 1},
		orient: mgl64.QuatIdent(),
	})
	return Handle(len(r.boxes))
}

func (r *recordingRenderer) box(h Handle) *recordedBox {
	return r.boxes[h-1]
}

func (r *recordingRenderer) SetPosition(h Handle, p mgl64.Vec3)   { r.box(h).pos = p }
func (r *recordingRenderer) SetScale(h Handle, s mgl64.Vec3)      { r.box(h).scale = s }
func (r *recordingRenderer) SetOrientation(h Handle, q mgl64.Quat) { r.box(h).orient = q }
func (r *recordingRenderer) Render()                               { r.renders++ }

type eventLog struct {
	events []Event
}

func (l *eventLog) EmitEvent(e Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

func (l *eventLog) last(t EventType) (Event, bool) {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Type == t {
			return l.events[i], true
		}
	}
	return Event{}, false
}

func (l *eventLog) reset() {
	l.events = l.events[:0]
}

func newTestGame(t *testing.T) (*Game, *recordingRenderer, *eventLog) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	r := newRecordingRenderer()
	sink := &eventLog{}
	g, err := NewGame(cfg, r, sink)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, r, sink
}

// dropAt moves the active layer to offset along its axis from the layer
// beneath it and drops it.
func dropAt(g *Game, offset float64) {
	top, prev := g.Tower().Top(), g.Tower().Below()
	top.Position[0] = prev.Position[0]
	top.Position[2] = prev.Position[2]
	top.Position[top.Axis] += offset
	g.Action()
}

func sameTypes(a, b []EventType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Tests ---

func TestNewGameBuildsFoundationAndBase(t *testing.T) {
	g, r, sink := newTestGame(t)

	if g.State() != StateNotStarted {
		t.Errorf("State = %s, want not-started", g.State())
	}
	if g.Tower().Len() != 1 {
		t.Fatalf("Tower().Len = %d, want 1 (base only)", g.Tower().Len())
	}
	if got := len(g.World().Bodies()); got != 21 {
		t.Errorf("len(Bodies) = %d, want 21 (20 foundation + base)", got)
	}
	if len(r.boxes) != 21 {
		t.Errorf("visuals = %d, want 21", len(r.boxes))
	}
	for _, b := range g.World().Bodies() {
		if !b.IsStatic() {
			t.Errorf("body %d is dynamic before the game starts", b.ID)
		}
	}
	base := g.Tower().Top()
	if base.Position != (mgl64.Vec3{}) || base.Width != 3 || base.Depth != 3 {
		t.Errorf("base = %v %f x %f", base.Position, base.Width, base.Depth)
	}
	// Deepest slab sits 20 layers under the base.
	if got := r.boxes[19].pos.Y(); got != -10 {
		t.Errorf("deepest slab Y = %f, want -10", got)
	}
	if len(sink.events) != 0 {
		t.Errorf("events before start: %v", sink.types())
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoxHeight = 0
	if _, err := NewGame(cfg, nil, nil); err == nil {
		t.Fatal("NewGame accepted box_height 0")
	} else if !strings.Contains(err.Error(), "box_height") {
		t.Errorf("error %q does not name box_height", err)
	}
}

func TestNewGameNilCollaborators(t *testing.T) {
	g, err := NewGame(DefaultConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Action()
	g.Frame()
	dropAt(g, 0)
	if g.Score() != 2 {
		t.Errorf("Score = %d, want 2", g.Score())
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, _, _ := newTestGame(t)
	b, _, _ := newTestGame(t)
	if a.Palette().StartHue != b.Palette().StartHue {
		t.Errorf("same seed, hues %f and %f", a.Palette().StartHue, b.Palette().StartHue)
	}
	if h := a.Palette().StartHue; h < 360 || h > 720 {
		t.Errorf("StartHue = %f, want in [360, 720]", h)
	}
	if a.Session().ID == b.Session().ID {
		t.Error("two sessions share an id")
	}
}

func TestFrameBeforeStartOnlyRenders(t *testing.T) {
	g, r, _ := newTestGame(t)
	g.Frame()
	g.Frame()
	if r.renders != 2 {
		t.Errorf("renders = %d, want 2", r.renders)
	}
	if g.Frames() != 0 {
		t.Errorf("Frames = %d, want 0 before start", g.Frames())
	}
	if g.Tower().Len() != 1 {
		t.Errorf("Tower().Len = %d, want 1", g.Tower().Len())
	}
}

func TestFirstActionStarts(t *testing.T) {
	g, _, sink := newTestGame(t)
	g.Action()

	if g.State() != StateRunning {
		t.Fatalf("State = %s, want running", g.State())
	}
	top := g.Tower().Top()
	if g.Tower().Len() != 2 || top.Axis != AxisX {
		t.Fatalf("after start: len %d axis %s", g.Tower().Len(), top.Axis)
	}
	if top.Position != (mgl64.Vec3{-17, 0.5, 0}) {
		t.Errorf("first layer at %v, want (-17, 0.5, 0)", top.Position)
	}
	if !sameTypes(sink.types(), []EventType{EventStart, EventScore}) {
		t.Errorf("events = %v, want [start score]", sink.types())
	}
	if e := sink.events[0]; e.Session != g.Session().ID || e.Height != 1 {
		t.Errorf("start event = %+v", e)
	}
}

func TestFrameSlidesActiveLayer(t *testing.T) {
	g, r, _ := newTestGame(t)
	g.Action()
	top := g.Tower().Top()

	g.Frame()
	if !approxEqual(top.Position.X(), -17+0.15, epsilon) {
		t.Errorf("X after 1 frame = %f, want %f", top.Position.X(), -17+0.15)
	}
	if got := r.box(top.Visual).pos; got != top.Position {
		t.Errorf("visual at %v, want %v", got, top.Position)
	}
	if top.Body.Position != top.Position {
		t.Errorf("body at %v, want %v", top.Body.Position, top.Position)
	}
	for i := 0; i < 300; i++ {
		g.Frame()
	}
	if x := top.Position.X(); x < -5-epsilon || x > 5+epsilon {
		t.Errorf("X = %f escaped the [-5, 5] bounds", x)
	}
	if g.Frames() != 301 {
		t.Errorf("Frames = %d, want 301", g.Frames())
	}
}

func TestGamePartialPlacement(t *testing.T) {
	g, r, sink := newTestGame(t)
	g.Action()
	sink.reset()
	top := g.Tower().Top()

	dropAt(g, 1)

	if g.Score() != 1 || g.Session().Perfect {
		t.Errorf("Score = %d perfect=%v, want 1 false", g.Score(), g.Session().Perfect)
	}
	if !sameTypes(sink.types(), []EventType{EventPlaced, EventScore, EventMessage}) {
		t.Errorf("events = %v, want [placed score message]", sink.types())
	}
	if e, _ := sink.last(EventMessage); e.Message != MessageLate {
		t.Errorf("message = %q, want %q", e.Message, MessageLate)
	}
	if e, _ := sink.last(EventScore); e.Score != 1 {
		t.Errorf("score event = %d, want 1", e.Score)
	}

	g.Frame()
	// The clipped layer's visual is rescaled, not recreated.
	if got := r.box(top.Visual).scale; !got.ApproxEqual(mgl64.Vec3{2.0 / 3, 1, 1}) {
		t.Errorf("visual scale = %v, want (2/3, 1, 1)", got)
	}

	o := g.Tower().Overhangs()[0]
	startY := o.Body.Position.Y()
	for i := 0; i < 30; i++ {
		g.Frame()
	}
	if o.Body.Position.Y() >= startY-0.5 {
		t.Errorf("overhang Y = %f, want it falling from %f", o.Body.Position.Y(), startY)
	}
	if got := r.box(o.Visual).pos; got != o.Body.Position {
		t.Errorf("overhang visual at %v, body at %v", got, o.Body.Position)
	}
	if o.Position.Y() != top.Position.Y() {
		t.Errorf("Overhang.Position moved; it records where the piece broke off")
	}
}

func TestGamePerfectPlacement(t *testing.T) {
	g, r, sink := newTestGame(t)
	g.Action()
	sink.reset()
	boxes := len(r.boxes)

	dropAt(g, 0.05)

	if g.Score() != 2 || !g.Session().Perfect {
		t.Errorf("Score = %d perfect=%v, want 2 true", g.Score(), g.Session().Perfect)
	}
	if !sameTypes(sink.types(), []EventType{EventPerfect, EventScore, EventMessage}) {
		t.Errorf("events = %v, want [perfect score message]", sink.types())
	}
	if len(g.Tower().Overhangs()) != 0 {
		t.Error("overhang created on perfect placement")
	}
	// Next layer plus marker.
	if len(r.boxes) != boxes+2 {
		t.Fatalf("visuals = %d, want %d", len(r.boxes), boxes+2)
	}
	marker := r.boxes[len(r.boxes)-1]
	if marker.color != ColorWhite {
		t.Fatalf("last visual color = %v, want white marker", marker.color)
	}
	if !marker.size.ApproxEqual(mgl64.Vec3{4, 0, 4}) {
		t.Errorf("marker size = %v, want (4, 0, 4)", marker.size)
	}

	for i := 0; i < 50; i++ {
		g.Frame()
	}
	if !approxEqual(marker.scale.X(), 0.5, 1e-6) {
		t.Errorf("marker scale after 50 frames = %f, want 0.5", marker.scale.X())
	}
	for i := 0; i < 60; i++ {
		g.Frame()
	}
	if marker.scale.X() != 0 || marker.scale.Z() != 0 {
		t.Errorf("marker scale = %v, want zero", marker.scale)
	}
}

func TestGameMissEndsSession(t *testing.T) {
	g, r, sink := newTestGame(t)
	g.Action()
	sink.reset()
	top := g.Tower().Top()

	dropAt(g, 3.5)

	if g.State() != StateGameOver {
		t.Fatalf("State = %s, want game-over", g.State())
	}
	if g.Falling() != top || top.Body.IsStatic() {
		t.Fatal("missed layer not handed to the simulation")
	}
	if !sameTypes(sink.types(), []EventType{EventGameOver, EventMessage}) {
		t.Errorf("events = %v, want [game-over message]", sink.types())
	}
	if g.Score() != 0 || g.Tower().Len() != 2 {
		t.Errorf("score %d len %d after miss", g.Score(), g.Tower().Len())
	}

	sink.reset()
	g.Action()
	if g.Tower().Len() != 2 || len(sink.events) != 0 {
		t.Error("action after game over changed the game")
	}

	startY := top.Position.Y()
	for i := 0; i < 10; i++ {
		g.Frame()
	}
	if top.Position.Y() > startY-0.3 {
		t.Errorf("falling Y = %f, want below %f", top.Position.Y(), startY-0.3)
	}
	if top.Body.Orientation.W >= 1 {
		t.Error("falling layer is not tumbling")
	}
	vis := r.box(top.Visual)
	if vis.pos != top.Body.Position || vis.orient != top.Body.Orientation {
		t.Error("falling visual does not follow its body")
	}
}

func TestFeedbackHidesAfterOneSecond(t *testing.T) {
	g, _, sink := newTestGame(t)
	g.Action()
	dropAt(g, 0)
	shown, _ := sink.last(EventMessage)

	for i := 0; i < 59; i++ {
		g.Frame()
	}
	if _, ok := sink.last(EventMessageHidden); ok || !g.MessageVisible() {
		t.Fatal("message hidden before one second")
	}
	g.Frame()
	hidden, ok := sink.last(EventMessageHidden)
	if !ok || hidden.MessageID != shown.MessageID {
		t.Fatalf("hidden = %+v ok=%v, want id %d", hidden, ok, shown.MessageID)
	}
	if g.MessageVisible() {
		t.Error("MessageVisible after hide")
	}
}

func TestFeedbackNewMessageCancelsOldTimer(t *testing.T) {
	g, _, sink := newTestGame(t)
	g.Action()
	dropAt(g, 0)
	first, _ := sink.last(EventMessage)

	for i := 0; i < 30; i++ {
		g.Frame()
	}
	dropAt(g, 0)
	second, _ := sink.last(EventMessage)
	if second.MessageID == first.MessageID {
		t.Fatal("messages share an id")
	}

	// The first timer would have fired here.
	for i := 0; i < 30; i++ {
		g.Frame()
	}
	if _, ok := sink.last(EventMessageHidden); ok {
		t.Fatal("stale timer hid the newer message")
	}
	for i := 0; i < 30; i++ {
		g.Frame()
	}
	hidden, ok := sink.last(EventMessageHidden)
	if !ok || hidden.MessageID != second.MessageID {
		t.Errorf("hidden = %+v ok=%v, want id %d", hidden, ok, second.MessageID)
	}
}

func TestTowerGrowsWhileRunning(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Action()
	for i := 0; i < 10; i++ {
		dropAt(g, 0.3)
		g.Frame()
	}
	if g.Tower().Len() != 12 {
		t.Errorf("Tower().Len = %d, want 12", g.Tower().Len())
	}
	if g.Score() != 10 {
		t.Errorf("Score = %d, want 10", g.Score())
	}
	if len(g.Tower().Overhangs()) != 10 {
		t.Errorf("Overhangs = %d, want 10", len(g.Tower().Overhangs()))
	}
	if !approxEqual(g.Height(), 6, epsilon) {
		t.Errorf("Height = %f, want 6", g.Height())
	}
	for i, l := range g.Tower().Layers() {
		if !approxEqual(l.Position.Y(), float64(i)*0.5, epsilon) {
			t.Errorf("layer %d Y = %f", i, l.Position.Y())
		}
	}
}

func TestDebugLogsPlacements(t *testing.T) {
	var buf strings.Builder
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Debug = true
	g, err := NewGame(cfg, nil, nil, WithLogger(log.New(&buf)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Action()
	dropAt(g, 1)
	out := buf.String()
	if !strings.Contains(out, "placement") || !strings.Contains(out, "partial") {
		t.Errorf("debug log = %q, want a partial placement entry", out)
	}
}
