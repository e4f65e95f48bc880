package synth

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/viterin/vek/vek32"

	"sounddraw/notes"
)

const testRate = 8000

func preset(t *testing.T, name string) Preset {
	t.Helper()
	for _, p := range DefaultPresets() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no built-in preset %q", name)
	return Preset{}
}

func TestDefaultPresets(t *testing.T) {
	ps := DefaultPresets()
	if len(ps) != 3 {
		t.Fatalf("got %d presets", len(ps))
	}
	g := preset(t, "guitar")
	if g.Oscillator != "triangle" || g.Envelope.Release != 1.8 || g.Volume != -2 {
		t.Fatalf("guitar preset %#v", g)
	}
	if v := preset(t, "violin"); v.Envelope.Attack != 0.15 {
		t.Fatalf("violin attack %v", v.Envelope.Attack)
	}
	if math.Abs(preset(t, "piano").Gain()-1) > 1e-12 {
		t.Fatalf("0 dB gain is not 1")
	}
}

func TestReadPresetsRejects(t *testing.T) {
	_, err := ReadPresets(strings.NewReader("instruments:\n  - name: organ\n    oscillator: pipe\n"))
	if !errors.Is(err, ErrUnknownOscillator) {
		t.Fatalf("err = %v", err)
	}
	_, err = ReadPresets(strings.NewReader(
		"instruments:\n  - name: organ\n    oscillator: sine\n    envelope: {decayCurve: wobble}\n"))
	if !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("err = %v", err)
	}
	_, err = ReadPresets(strings.NewReader(
		"instruments:\n  - name: organ\n    oscillator: sine\n    envelope: {sustain: 2}\n"))
	if !errors.Is(err, ErrBadEnvelope) {
		t.Fatalf("err = %v", err)
	}
	_, err = ReadPresets(strings.NewReader(
		"instruments:\n  - name: a\n    oscillator: sine\n  - name: a\n    oscillator: sine\n"))
	if err == nil {
		t.Fatalf("duplicate names accepted")
	}
}

func TestEnvelopeShape(t *testing.T) {
	e := Envelope{Attack: 0.1, Decay: 0.2, Sustain: 0.5, Release: 1}
	if e.Level(0, 1) != 0 {
		t.Fatalf("level at note on %v", e.Level(0, 1))
	}
	if l := e.Level(0.1, 1); math.Abs(float64(l)-1) > 1e-6 {
		t.Fatalf("peak %v", l)
	}
	if l := e.Level(0.5, 1); l != 0.5 {
		t.Fatalf("sustain %v", l)
	}
	if l := e.Level(1.5, 1); math.Abs(float64(l)-0.25) > 1e-6 {
		t.Fatalf("mid release %v", l)
	}
	if e.Level(2, 1) != 0 || e.Level(5, 1) != 0 {
		t.Fatalf("release did not end at zero")
	}
	// Released during the attack: the release starts from the reached level.
	if l := e.Level(0.05, 0.05); math.Abs(float64(l)-0.5) > 1e-6 {
		t.Fatalf("early release start %v", l)
	}
}

func TestRenderLength(t *testing.T) {
	p := preset(t, "piano")
	buf := Render(p, 440, 500*time.Millisecond, testRate)
	want := int(math.Ceil(1.5 * testRate))
	if len(buf) != want {
		t.Fatalf("len %d, want %d", len(buf), want)
	}
	if peak := vek32.Max(buf); peak <= 0 || peak > headroom+1e-6 {
		t.Fatalf("peak %v outside (0,%v]", peak, headroom)
	}
	if math.Abs(float64(buf[len(buf)-1])) > 1e-3 {
		t.Fatalf("tail not silent: %v", buf[len(buf)-1])
	}
	if Render(Preset{Oscillator: "pipe"}, 440, time.Second, testRate) != nil {
		t.Fatalf("unknown oscillator rendered")
	}
}

func TestPCM16Stereo(t *testing.T) {
	b := PCM16Stereo([]float32{0, 2, -2})
	if len(b) != 12 {
		t.Fatalf("len %d", len(b))
	}
	if b[4] != 0xff || b[5] != 0x7f || b[6] != 0xff || b[7] != 0x7f {
		t.Fatalf("clipped high sample % x", b[4:8])
	}
	if b[8] != 0x01 || b[9] != 0x80 {
		t.Fatalf("clipped low sample % x", b[8:10])
	}
}

func TestBankCaches(t *testing.T) {
	b := NewBank(DefaultPresets(), testRate)
	k := Key{Instrument: "guitar", Pitch: notes.Scale[0], Gate: 500 * time.Millisecond}
	first, err := b.PCM(k)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := b.PCM(k)
	if &first[0] != &second[0] {
		t.Fatalf("second lookup rendered again")
	}
	if _, err := b.PCM(Key{Instrument: "kazoo"}); err == nil {
		t.Fatalf("unknown instrument rendered")
	}
	if n, size := b.Stats(); n != 1 || size != len(first) {
		t.Fatalf("stats %d %d", n, size)
	}
}

func TestBankPrerender(t *testing.T) {
	b := NewBank(DefaultPresets(), testRate)
	var keys []Key
	for _, p := range notes.Scale[:5] {
		keys = append(keys, Key{Instrument: "violin", Pitch: p, Gate: time.Second})
	}
	keys = append(keys, Key{Instrument: "kazoo", Pitch: notes.Scale[0]})
	err := b.Prerender(keys, 3)
	if err == nil {
		t.Fatalf("missing instrument not reported")
	}
	if n, _ := b.Stats(); n != 5 {
		t.Fatalf("cached %d notes, want 5", n)
	}
}
