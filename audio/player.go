package audio

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/phanxgames/towerstack"
)

const (
	// SampleRate is the rate every cue is synthesized at.
	SampleRate = beep.SampleRate(44100)
	// DefaultVolume is the starting playback volume.
	DefaultVolume = 0.3
	// VolumeStep is how far VolumeUp and VolumeDown move the volume.
	VolumeStep = 0.1
	// maxCueFrames caps a cue at two seconds.
	maxCueFrames = 2 * 44100
)

// output plays PCM at a linear volume in [0, 1].
type output interface {
	play(pcm []byte, volume float64) error
}

// ebitenOutput plays through the process-wide ebiten audio context.
type ebitenOutput struct {
	ctx *ebaudio.Context
}

func newEbitenOutput() *ebitenOutput {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(SampleRate))
	}
	return &ebitenOutput{ctx: ctx}
}

func (o *ebitenOutput) play(pcm []byte, volume float64) error {
	p := o.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
	return nil
}

// Player turns game events into sound cues.
type Player struct {
	out    output
	volume float64
	cues   map[Cue][]byte
	log    *log.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithLogger routes playback errors to l.
func WithLogger(l *log.Logger) Option {
	return func(p *Player) { p.log = l }
}

// WithVolume sets the starting volume, clamped to [0, 1].
func WithVolume(v float64) Option {
	return func(p *Player) { p.volume = clampVolume(v) }
}

// NewPlayer synthesizes every cue and opens the ebiten audio context.
func NewPlayer(opts ...Option) *Player {
	return newPlayer(newEbitenOutput(), opts...)
}

func newPlayer(out output, opts ...Option) *Player {
	p := &Player{
		out:    out,
		volume: DefaultVolume,
		cues:   make(map[Cue][]byte),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = log.NewWithOptions(io.Discard, log.Options{Prefix: "audio"})
	}
	for _, c := range []Cue{CuePlace, CuePerfect, CueGameOver} {
		p.cues[c] = RenderPCM(Synthesize(c, SampleRate), maxCueFrames)
	}
	return p
}

// Play starts cue c. It is a no-op while muted.
func (p *Player) Play(c Cue) {
	pcm, ok := p.cues[c]
	if !ok || p.volume <= 0 {
		return
	}
	if err := p.out.play(pcm, p.volume); err != nil {
		p.log.Error("play", "cue", c, "err", err)
	}
}

// EmitEvent implements towerstack.EventSink.
func (p *Player) EmitEvent(e towerstack.Event) {
	switch e.Type {
	case towerstack.EventPlaced:
		p.Play(CuePlace)
	case towerstack.EventPerfect:
		p.Play(CuePerfect)
	case towerstack.EventGameOver:
		p.Play(CueGameOver)
	}
}

// Volume returns the playback volume in [0, 1].
func (p *Player) Volume() float64 { return p.volume }

// SetVolume sets the playback volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.volume = clampVolume(v)
	p.log.Debug("volume", "value", p.volume)
}

// VolumeUp raises the volume by one step.
func (p *Player) VolumeUp() { p.SetVolume(p.volume + VolumeStep) }

// VolumeDown lowers the volume by one step.
func (p *Player) VolumeDown() { p.SetVolume(p.volume - VolumeStep) }

// clampVolume limits v to [0, 1] and rounds off float drift from stepping.
func clampVolume(v float64) float64 {
	v = math.Round(v*100) / 100
	return math.Max(0, math.Min(1, v))
}
