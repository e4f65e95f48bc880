package synth

import (
	"math"
	"time"

	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"
)

// headroom keeps a handful of overlapping full-velocity notes from clipping.
const headroom = 0.35

// oscillator returns one sample for a phase in [0,1).
type oscillator func(phase float32) float32

var oscillators = map[string]oscillator{
	"sine": func(ph float32) float32 {
		return math32.Sin(2 * math32.Pi * ph)
	},
	"triangle": func(ph float32) float32 {
		switch {
		case ph < 0.25:
			return 4 * ph
		case ph < 0.75:
			return 2 - 4*ph
		default:
			return 4*ph - 4
		}
	},
	"square": func(ph float32) float32 {
		if ph < 0.5 {
			return 1
		}
		return -1
	},
	"sawtooth": func(ph float32) float32 {
		return 2*ph - 1
	},
}

// Level returns the envelope amplitude t seconds after note on, for a note
// released after gate seconds.
func (e Envelope) Level(t, gate float64) float32 {
	if t < 0 {
		return 0
	}
	if t < gate {
		return e.held(t)
	}
	if e.Release <= 0 {
		return 0
	}
	rt := t - gate
	if rt >= e.Release {
		return 0
	}
	from := e.held(gate)
	return curves[e.ReleaseCurve](float32(rt), from, -from, float32(e.Release))
}

// held is the level while the note is still pressed.
func (e Envelope) held(t float64) float32 {
	if t < e.Attack {
		return curves[e.AttackCurve](float32(t), 0, 1, float32(e.Attack))
	}
	t -= e.Attack
	s := float32(e.Sustain)
	if t < e.Decay {
		return curves[e.DecayCurve](float32(t), 1, s-1, float32(e.Decay))
	}
	return s
}

// Render synthesizes one note of p as mono samples at full velocity. The
// buffer covers the gate plus the release tail.
func Render(p Preset, freq float64, gate time.Duration, sampleRate int) []float32 {
	osc, ok := oscillators[p.Oscillator]
	if !ok || sampleRate <= 0 {
		return nil
	}
	g := gate.Seconds()
	n := int(math.Ceil((g + p.Envelope.Release) * float64(sampleRate)))
	wave := make([]float32, n)
	env := make([]float32, n)
	step := freq / float64(sampleRate)
	phase := 0.0
	for i := range wave {
		wave[i] = osc(float32(phase))
		phase += step
		phase -= math.Floor(phase)
		env[i] = p.Envelope.Level(float64(i)/float64(sampleRate), g)
	}
	vek32.Mul_Inplace(wave, env)
	vek32.MulNumber_Inplace(wave, float32(p.Gain()*headroom))
	return wave
}

// PCM16Stereo converts mono samples to interleaved little-endian 16-bit
// stereo, the format the audio context plays.
func PCM16Stereo(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * math.MaxInt16)
		out[4*i] = byte(v)
		out[4*i+1] = byte(v >> 8)
		out[4*i+2] = byte(v)
		out[4*i+3] = byte(v >> 8)
	}
	return out
}
