package scene

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/towerstack"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the box nodes, the camera, the
// HUD, input state, and render buffers.
type Scene struct {
	nodes  []*Node
	camera *Camera
	hud    *HUD
	log    *log.Logger
	debug  bool

	background [2]towerstack.Color

	// Render state
	commands   []RenderCommand
	sortBuf    []RenderCommand
	batchVerts []ebiten.Vertex
	batchInds  []uint32
	stats      debugStats
	renders    uint64

	// Input state
	handlers     handlerRegistry
	injectQueue  []syntheticEvent
	touchBuf []ebiten.TouchID

	testRunner      *TestRunner
	screenshotQueue []string
	ScreenshotDir   string

	updateFunc func() error
	fps        *fpsWidget
}

// Option configures a Scene.
type Option func(*Scene)

// WithLogger routes scene diagnostics (screenshots, debug stats) to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Scene) { s.log = l }
}

// WithDebug enables per-frame timing stats, logged at debug level.
func WithDebug(on bool) Option {
	return func(s *Scene) { s.debug = on }
}

// NewScene creates an empty scene with a 480x720 viewport.
func NewScene(opts ...Option) *Scene {
	s := &Scene{
		camera:        newCamera(),
		hud:           newHUD(),
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:       make([]RenderCommand, 0, defaultCommandCap),
		ScreenshotDir: "screenshots",
		background:    [2]towerstack.Color{towerstack.ColorWhite, towerstack.ColorWhite},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.NewWithOptions(io.Discard, log.Options{Prefix: "scene"})
	}
	s.camera.SetViewport(480, 720)
	return s
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.camera }

// HUD returns the overlay that tracks score and messages. It is also the
// towerstack.EventSink that feeds it.
func (s *Scene) HUD() *HUD { return s.hud }

// Nodes returns the box nodes in creation order.
func (s *Scene) Nodes() []*Node { return s.nodes }

// Node returns the node behind a handle. It panics on a handle this scene
// never issued.
func (s *Scene) Node(h towerstack.Handle) *Node {
	i := int(h) - 1
	if i < 0 || i >= len(s.nodes) {
		panic(fmt.Sprintf("scene: unknown handle %d", h))
	}
	return s.nodes[i]
}

// Renders returns how many times the game asked for a redraw.
func (s *Scene) Renders() uint64 { return s.renders }

// SetUpdateFunc sets a callback run once per frame after input is processed.
func (s *Scene) SetUpdateFunc(fn func() error) { s.updateFunc = fn }

// Reset drops every node and returns camera and HUD to their initial state.
// Action callbacks, test runner and screenshot settings survive.
func (s *Scene) Reset() {
	s.nodes = s.nodes[:0]
	s.commands = s.commands[:0]
	s.camera.Reset()
	s.hud.Reset()
}

// --- towerstack.Renderer ---

// CreateBox adds a box node and returns its handle.
func (s *Scene) CreateBox(size mgl64.Vec3, c towerstack.Color) towerstack.Handle {
	h := towerstack.Handle(len(s.nodes) + 1)
	s.nodes = append(s.nodes, newNode(h, size, c))
	return h
}

// SetPosition moves the center of a box.
func (s *Scene) SetPosition(h towerstack.Handle, p mgl64.Vec3) {
	s.Node(h).Position = p
}

// SetScale scales a box about its center.
func (s *Scene) SetScale(h towerstack.Handle, scale mgl64.Vec3) {
	s.Node(h).Scale = scale
}

// SetOrientation rotates a box about its center.
func (s *Scene) SetOrientation(h towerstack.Handle, q mgl64.Quat) {
	s.Node(h).Orientation = q
}

// Render records a redraw request. ebiten draws every frame regardless.
func (s *Scene) Render() {
	s.renders++
}

// --- frame ---

// Update processes input, runs the update callback and advances the camera.
func (s *Scene) Update() error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.camera.update()
	if s.fps != nil {
		s.fps.update()
	}
	return nil
}

// Draw paints the background, every box and the HUD onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.stats = debugStats{}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.traverse()
	s.emitBackground()

	if s.debug {
		s.stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.mergeSort()

	if s.debug {
		s.stats.sortTime = time.Since(t0)
		s.stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	s.submitBatches(screen)
	if err := s.hud.draw(screen); err != nil {
		s.log.Error("hud", "err", err)
	}
	if s.fps != nil {
		s.fps.draw(screen)
	}

	if s.debug {
		s.stats.submitTime = time.Since(t0)
		s.stats.nodeCount = len(s.nodes)
		s.debugLog(s.stats)
	}

	s.flushScreenshots(screen)
}
