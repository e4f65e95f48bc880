// Package synth renders instrument notes to PCM. Instruments are described by
// presets: an oscillator shape, an ADSR envelope and a volume.
package synth

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

var (
	ErrUnknownOscillator = errors.New("unknown oscillator")
	ErrUnknownCurve      = errors.New("unknown envelope curve")
	ErrBadEnvelope       = errors.New("bad envelope")
)

// Envelope is an ADSR shape. Times are in seconds, Sustain is a level in
// [0,1]. Curve names select the easing used for each segment; empty means
// linear.
type Envelope struct {
	Attack       float64 `yaml:"attack"`
	Decay        float64 `yaml:"decay"`
	Sustain      float64 `yaml:"sustain"`
	Release      float64 `yaml:"release"`
	AttackCurve  string  `yaml:"attackCurve,omitempty"`
	DecayCurve   string  `yaml:"decayCurve,omitempty"`
	ReleaseCurve string  `yaml:"releaseCurve,omitempty"`
}

// Preset describes one instrument voice.
type Preset struct {
	Name       string   `yaml:"name"`
	Oscillator string   `yaml:"oscillator"`
	Volume     float64  `yaml:"volume"` // dB
	Envelope   Envelope `yaml:"envelope"`
}

type presetFile struct {
	Instruments []Preset `yaml:"instruments"`
}

var curves = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inSine":    ease.InSine,
	"outSine":   ease.OutSine,
	"inOutSine": ease.InOutSine,
	"inExpo":    ease.InExpo,
	"outExpo":   ease.OutExpo,
}

// Gain converts the preset volume from dB to a linear factor.
func (p Preset) Gain() float64 {
	return math.Pow(10, p.Volume/20)
}

// Validate checks that the oscillator and curves are known and the envelope
// is usable.
func (p Preset) Validate() error {
	if _, ok := oscillators[p.Oscillator]; !ok {
		return fmt.Errorf("%s: %w %q", p.Name, ErrUnknownOscillator, p.Oscillator)
	}
	e := p.Envelope
	for _, c := range []string{e.AttackCurve, e.DecayCurve, e.ReleaseCurve} {
		if _, ok := curves[c]; !ok {
			return fmt.Errorf("%s: %w %q", p.Name, ErrUnknownCurve, c)
		}
	}
	if e.Attack < 0 || e.Decay < 0 || e.Release < 0 || e.Sustain < 0 || e.Sustain > 1 {
		return fmt.Errorf("%s: %w: %+v", p.Name, ErrBadEnvelope, e)
	}
	return nil
}

// ReadPresets decodes a preset file and validates every instrument.
func ReadPresets(r io.Reader) ([]Preset, error) {
	var f presetFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	seen := make(map[string]bool, len(f.Instruments))
	for _, p := range f.Instruments {
		if p.Name == "" {
			return nil, errors.New("preset without a name")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Instruments, nil
}

// LoadPresets reads presets from a YAML file.
func LoadPresets(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPresets(f)
}

// DefaultPresets returns the built-in piano, violin and guitar.
func DefaultPresets() []Preset {
	p, err := ReadPresets(bytes.NewReader(defaultPresetsYAML))
	if err != nil {
		panic(fmt.Sprintf("synth: built-in presets: %v", err))
	}
	return p
}
