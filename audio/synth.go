package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a raw wave at a fixed frequency.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf, so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one enveloped note.
func tone(freq float64, d time.Duration, wave WaveType, vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	shaped := NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
	return newVolume(shaped, vol)
}

// Cue identifies a sound.
type Cue int

const (
	CuePlace Cue = iota
	CuePerfect
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CuePlace:
		return "place"
	case CuePerfect:
		return "perfect"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Synthesize builds the streamer for a cue.
func Synthesize(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CuePlace:
		// Short wooden knock: a low triangle over a quieter fifth.
		d := 90 * time.Millisecond
		return beep.Mix(
			tone(196, d, WaveTriangle, 0.8, rate),
			tone(294, d, WaveSine, 0.3, rate),
		)
	case CuePerfect:
		// Rising major arpeggio, each note with an octave overtone.
		d := 80 * time.Millisecond
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		seq := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			seq = append(seq, beep.Mix(
				tone(f, d, WaveSine, 0.7, rate),
				tone(2*f, d, WaveSine, 0.2, rate),
			))
		}
		return beep.Seq(seq...)
	case CueGameOver:
		// Descending buzz.
		d := 180 * time.Millisecond
		return beep.Seq(
			tone(220, d, WaveSaw, 0.5, rate),
			tone(185, d, WaveSaw, 0.5, rate),
			tone(147, 2*d, WaveSaw, 0.5, rate),
		)
	default:
		return beep.Silence(0)
	}
}

// RenderPCM drains s into little-endian signed 16-bit stereo PCM, the
// format ebiten's audio context plays. At most limit frames are rendered.
func RenderPCM(s beep.Streamer, limit int) []byte {
	s = beep.Take(limit, s)
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
