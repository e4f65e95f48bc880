package notes

import (
	"errors"
	"math"
	"testing"
)

func TestIndexRange(t *testing.T) {
	const w = 1280.0
	for x := 0.0; x < w; x += 0.5 {
		i := Index(x, w)
		if i < 0 || i > Size-1 {
			t.Fatalf("Index(%v) = %d out of range", x, i)
		}
	}
	if i := Index(0, w); i != 0 {
		t.Fatalf("Index(0) = %d", i)
	}
	if i := Index(math.Nextafter(w, 0), w); i != Size-1 {
		t.Fatalf("Index(W-) = %d", i)
	}
}

func TestIndexClamps(t *testing.T) {
	if Index(-50, 100) != 0 || Index(500, 100) != Size-1 || Index(100, 100) != Size-1 {
		t.Fatalf("out of view positions not clamped")
	}
	if Index(10, 0) != 0 {
		t.Fatalf("zero width not handled")
	}
}

func TestScale(t *testing.T) {
	if Scale[0].Name != "C3" || Scale[Size-1].Name != "C6" || Scale[7].Name != "C4" {
		t.Fatalf("unexpected scale ends: %v %v %v", Scale[0], Scale[7], Scale[Size-1])
	}
	for i := 1; i < Size; i++ {
		if Scale[i].MIDI <= Scale[i-1].MIDI {
			t.Fatalf("scale not ascending at %d", i)
		}
	}
	if Scale[Size-1].MIDI-Scale[0].MIDI != 36 {
		t.Fatalf("scale does not span three octaves")
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("A4")
	if err != nil || p.MIDI != 69 || math.Abs(p.Frequency()-440) > 1e-9 {
		t.Fatalf("A4 = %#v, %v", p, err)
	}
	p, err = Parse("c")
	if err != nil || p.Name != "C4" || p.MIDI != 60 {
		t.Fatalf("c = %#v, %v", p, err)
	}
	p, err = Parse("F#3")
	if err != nil || p.MIDI != 54 {
		t.Fatalf("F#3 = %#v, %v", p, err)
	}
	if _, err := Parse("H2"); !errors.Is(err, ErrBadNote) {
		t.Fatalf("H2 err = %v", err)
	}
	if _, err := Parse("C-x"); !errors.Is(err, ErrBadNote) {
		t.Fatalf("C-x err = %v", err)
	}
}

func TestAbove(t *testing.T) {
	if Above(3, 4) != 7 {
		t.Fatalf("Above(3,4) = %d", Above(3, 4))
	}
	if Above(19, 6) != Size-1 {
		t.Fatalf("Above did not clamp: %d", Above(19, 6))
	}
	if At(-3) != Scale[0] || At(12) != Scale[12] || At(40) != Scale[Size-1] {
		t.Fatalf("At did not clamp")
	}
}
