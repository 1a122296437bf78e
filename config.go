package towerstack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a Game. Start from DefaultConfig; a YAML
// file loaded with LoadConfig only needs to name the fields it changes.
type Config struct {
	// BoxSize is the width and depth of the base layer.
	BoxSize float64 `yaml:"box_size"`
	// BoxHeight is the height of every layer; layer i rests at i*BoxHeight.
	BoxHeight float64 `yaml:"box_height"`
	// Speed is the initial slide speed in units per frame.
	Speed float64 `yaml:"speed"`
	// Bound is the absolute coordinate at which a sliding layer turns back.
	Bound float64 `yaml:"bound"`
	// PerfectThreshold is the largest misalignment still scored as perfect.
	PerfectThreshold float64 `yaml:"perfect_threshold"`
	// FirstSpawn is the X coordinate of the first active layer.
	FirstSpawn float64 `yaml:"first_spawn"`
	// Spawn is the coordinate, along its sliding axis, of every later layer.
	Spawn float64 `yaml:"spawn"`
	// FoundationLayers is the number of decorative slabs below the base.
	FoundationLayers int `yaml:"foundation_layers"`
	// DebrisMass is the mass of overhangs and of the final falling layer.
	DebrisMass float64 `yaml:"debris_mass"`
	// FallKick is the downward velocity added to the falling layer per frame.
	FallKick float64 `yaml:"fall_kick"`
	// FallSpin scales the random spin added to the falling layer per frame.
	FallSpin float64 `yaml:"fall_spin"`
	// FeedbackSeconds is how long a feedback message stays visible.
	FeedbackSeconds float64 `yaml:"feedback_seconds"`
	// MarkerFrames is how many frames the perfect marker takes to vanish.
	MarkerFrames int `yaml:"marker_frames"`
	// HueStep is the hue shift, in degrees, between consecutive layers.
	HueStep float64 `yaml:"hue_step"`
	// FoundationHueStep is the hue shift per unit of foundation depth.
	FoundationHueStep float64 `yaml:"foundation_hue_step"`
	// Seed seeds colors and the falling-layer tumble. 0 picks a random seed.
	Seed uint64 `yaml:"seed"`
	// Debug enables per-placement debug logging.
	Debug bool `yaml:"debug"`

	Physics WorldConfig `yaml:"physics"`
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() Config {
	return Config{
		BoxSize:           3,
		BoxHeight:         0.5,
		Speed:             0.15,
		Bound:             5,
		PerfectThreshold:  0.1,
		FirstSpawn:        -17,
		Spawn:             -15,
		FoundationLayers:  20,
		DebrisMass:        5,
		FallKick:          0.25,
		FallSpin:          0.6,
		FeedbackSeconds:   1,
		MarkerFrames:      100,
		HueStep:           4,
		FoundationHueStep: 8,
		Physics:           DefaultWorldConfig(),
	}
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("box_size", c.BoxSize)
	positive("box_height", c.BoxHeight)
	positive("bound", c.Bound)
	positive("debris_mass", c.DebrisMass)
	positive("feedback_seconds", c.FeedbackSeconds)
	positive("physics.timestep", c.Physics.Timestep)
	if c.Speed == 0 {
		errs = append(errs, errors.New("speed must be non-zero"))
	}
	if c.PerfectThreshold < 0 {
		errs = append(errs, fmt.Errorf("perfect_threshold must not be negative, got %v", c.PerfectThreshold))
	}
	if c.FoundationLayers < 0 {
		errs = append(errs, fmt.Errorf("foundation_layers must not be negative, got %d", c.FoundationLayers))
	}
	if c.MarkerFrames <= 0 {
		errs = append(errs, fmt.Errorf("marker_frames must be positive, got %d", c.MarkerFrames))
	}
	if c.Physics.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("physics.iterations must be positive, got %d", c.Physics.Iterations))
	}
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must not be negative, got %v", c.Physics.Gravity))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected. Empty input yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
