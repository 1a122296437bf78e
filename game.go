package towerstack

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger routes the game's logging to l. Placements are logged at debug
// level when Config.Debug is set.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// Game ties the tower, the physics world and the session together and runs
// the per-frame loop. It is not safe for concurrent use; call Action and
// Frame from the same goroutine.
type Game struct {
	cfg      Config
	log      *log.Logger
	renderer Renderer
	sink     EventSink
	rng      *rand.Rand
	seed     uint64

	world   *World
	tower   *Tower
	placer  *Placer
	mover   Mover
	session *Session
	palette Palette

	foundation []*Body
	feedback   messageTimer
	markers    []*perfectMarker
	falling    *Layer
	frames     uint64
}

// NewGame builds the foundation and the base layer and returns a game
// waiting for its first action. A nil Renderer draws nothing; a nil sink
// drops events.
func NewGame(cfg Config, r Renderer, sink EventSink, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("towerstack: invalid config: %w", err)
	}
	if r == nil {
		r = Headless()
	}
	if sink == nil {
		sink = nopSink{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g := &Game{
		cfg:      cfg,
		log:      log.NewWithOptions(io.Discard, log.Options{}),
		renderer: r,
		sink:     sink,
		rng:      rng,
		seed:     seed,
		mover:    Mover{Bound: cfg.Bound},
		palette: Palette{
			StartHue:       math.Round(rng.Float64()*360 + 360),
			Step:           cfg.HueStep,
			FoundationStep: cfg.FoundationHueStep,
		},
		feedback: newMessageTimer(cfg.FeedbackSeconds, cfg.Physics.Timestep),
	}
	for _, o := range opts {
		o(g)
	}
	if cfg.Debug {
		g.log.SetLevel(log.DebugLevel)
	}

	g.world = NewWorld(cfg.Physics)
	g.tower = newTower(cfg, g.world, r, g.palette)
	g.placer = newPlacer(cfg, g.tower, g.world)
	g.session = NewSession(cfg.Speed)

	g.buildFoundation()
	g.tower.AddLayer(0, 0, cfg.BoxSize, cfg.BoxSize, AxisZ)

	g.log.Debug("new game", "session", g.session.ID, "seed", seed, "hue", g.palette.StartHue)
	return g, nil
}

// buildFoundation stacks static slabs under the base layer.
func (g *Game) buildFoundation() {
	size := mgl64.Vec3{g.cfg.BoxSize, g.cfg.BoxHeight, g.cfg.BoxSize}
	for i := 1; i <= g.cfg.FoundationLayers; i++ {
		depth := g.cfg.BoxHeight * float64(i)
		pos := up(-depth)
		h := g.renderer.CreateBox(size, g.palette.Foundation(depth))
		g.renderer.SetPosition(h, pos)
		g.foundation = append(g.foundation, g.world.AddBody(NewBox(size[0], size[1], size[2]), pos, 0))
	}
}

// Action handles one player action: the first one starts the game, later
// ones drop the active layer. Actions after game over are ignored; the host
// restarts by building a new Game.
func (g *Game) Action() {
	switch g.session.State() {
	case StateNotStarted:
		g.session.Start()
		g.tower.AddLayer(g.cfg.FirstSpawn, 0, g.cfg.BoxSize, g.cfg.BoxSize, AxisX)
		g.emit(Event{Type: EventStart})
		g.emit(Event{Type: EventScore})
		g.log.Debug("game started", "session", g.session.ID)
	case StateRunning:
		g.place()
	}
}

func (g *Game) place() {
	top, prev := g.tower.Top(), g.tower.Below()
	if prev == nil {
		panic("towerstack: placement with fewer than two layers")
	}
	res := g.placer.Place(top, prev)

	switch res.Outcome {
	case OutcomeMiss:
		g.falling = top
		g.world.SetMass(top.Body, g.cfg.DebrisMass)
		g.session.Perfect = false
		g.session.Finish()
		g.emit(Event{Type: EventGameOver})
	case OutcomePerfect:
		g.session.Perfect = true
		g.session.AddScore(res.ScoreDelta)
		g.markers = append(g.markers, newPerfectMarker(g.renderer, top, g.cfg.MarkerFrames))
		g.emit(Event{Type: EventPerfect})
		g.emit(Event{Type: EventScore})
	case OutcomePartial:
		g.session.Perfect = false
		g.session.AddScore(res.ScoreDelta)
		g.emit(Event{Type: EventPlaced})
		g.emit(Event{Type: EventScore})
	}

	id := g.feedback.show()
	g.emit(Event{Type: EventMessage, Message: res.Message, MessageID: id})

	g.log.Debug("placement",
		"session", g.session.ID,
		"outcome", res.Outcome,
		"axis", top.Axis,
		"delta", res.Delta,
		"overlap", res.Overlap,
		"score", g.session.Score,
	)
}

// Frame runs one display refresh: motion tick, physics step, projection of
// physics transforms onto visuals, timers, render.
func (g *Game) Frame() {
	state := g.session.State()
	if state == StateNotStarted {
		g.renderer.Render()
		return
	}
	g.frames++

	if state == StateRunning {
		g.session.Speed = g.mover.Tick(g.tower.Top(), g.session.Speed)
	} else if g.falling != nil {
		g.perturbFalling()
	}

	g.world.Step()
	g.project()

	for _, m := range g.markers {
		m.update(g.renderer)
	}
	if id, ok := g.feedback.update(); ok {
		g.emit(Event{Type: EventMessageHidden, MessageID: id})
	}

	g.renderer.Render()
}

// perturbFalling keeps the missed layer tumbling downward.
func (g *Game) perturbFalling() {
	b := g.falling.Body
	b.Velocity[1] -= g.cfg.FallKick
	spin := mgl64.Vec3{
		g.rng.Float64()*2 - 1,
		g.rng.Float64()*2 - 1,
		g.rng.Float64()*2 - 1,
	}
	b.AngularVelocity = b.AngularVelocity.Add(spin.Mul(g.cfg.FallSpin))
}

// project copies simulated and kinematic transforms onto visuals. Data only
// flows from the model to the renderer.
func (g *Game) project() {
	r := g.renderer
	for _, l := range g.tower.Layers() {
		if !l.dirty {
			continue
		}
		r.SetPosition(l.Visual, l.Position)
		r.SetScale(l.Visual, l.scale())
		l.dirty = false
	}
	for _, o := range g.tower.Overhangs() {
		r.SetPosition(o.Visual, o.Body.Position)
		r.SetOrientation(o.Visual, o.Body.Orientation)
	}
	if f := g.falling; f != nil {
		f.Position = f.Body.Position
		r.SetPosition(f.Visual, f.Position)
		r.SetOrientation(f.Visual, f.Body.Orientation)
	}
}

func (g *Game) emit(e Event) {
	e.Session = g.session.ID
	e.Score = g.session.Score
	e.Height = g.tower.Len() - 1
	g.sink.EmitEvent(e)
}

// State returns the session state.
func (g *Game) State() State { return g.session.State() }

// Score returns the current score.
func (g *Game) Score() int { return g.session.Score }

// Height returns the height of the next free stack slot, the level a
// camera should follow.
func (g *Game) Height() float64 { return g.tower.Height() }

// Tower returns the tower model.
func (g *Game) Tower() *Tower { return g.tower }

// World returns the physics world.
func (g *Game) World() *World { return g.world }

// Session returns the session counters.
func (g *Game) Session() *Session { return g.session }

// Palette returns the session's colors.
func (g *Game) Palette() Palette { return g.palette }

// Seed returns the seed the game was built with.
func (g *Game) Seed() uint64 { return g.seed }

// Config returns the game's configuration.
func (g *Game) Config() Config { return g.cfg }

// Falling returns the layer that missed, or nil while the game is running.
func (g *Game) Falling() *Layer { return g.falling }

// Frames returns the number of frames run since the first action.
func (g *Game) Frames() uint64 { return g.frames }

// MessageVisible reports whether a feedback message is still showing.
func (g *Game) MessageVisible() bool { return g.feedback.visible() }
