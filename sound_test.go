package main

import (
	"testing"
	"time"

	"sounddraw/notes"
	"sounddraw/playback"
	"sounddraw/strokes"
)

func TestBankKeysCoverEveryNote(t *testing.T) {
	keys := bankKeys()
	if len(keys) != 3*notes.Size {
		t.Fatalf("got %d keys", len(keys))
	}
	seen := make(map[string]int)
	for _, k := range keys {
		seen[k.Instrument]++
		want := 500 * time.Millisecond
		if k.Instrument == "violin" {
			want = time.Second
		}
		if k.Gate != want {
			t.Fatalf("%s gate %v, want %v", k.Instrument, k.Gate, want)
		}
	}
	for _, m := range strokes.Modes() {
		if seen[m.String()] != notes.Size {
			t.Fatalf("%s has %d keys", m, seen[m.String()])
		}
	}
}

// Harmony notes must hit the prerendered bank too.
func TestHarmonyKeyIsPrerendered(t *testing.T) {
	keys := make(map[string]bool)
	for _, k := range bankKeys() {
		keys[k.Instrument+k.Pitch.Name+k.Gate.String()] = true
	}
	for _, m := range strokes.Modes() {
		p := m.Partner()
		n := playback.Note{Mode: p, Pitch: notes.Scale[notes.Size-1], Duration: playback.NoteLength(p), Harmony: true}
		k := noteKey(n)
		if !keys[k.Instrument+k.Pitch.Name+k.Gate.String()] {
			t.Fatalf("harmony key %#v not in bank", k)
		}
	}
}

type countSink struct{ n int }

func (c *countSink) Play(playback.Note) { c.n++ }

func TestTeeSink(t *testing.T) {
	a, b := &countSink{}, &countSink{}
	teeSink{a, b}.Play(playback.Note{})
	if a.n != 1 || b.n != 1 {
		t.Fatalf("tee delivered %d and %d", a.n, b.n)
	}
}

func TestClampVolume(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{{-1, 0}, {0.3, 0.3}, {2, 1}} {
		if got := clampVolume(tc.in); got != tc.want {
			t.Fatalf("clampVolume(%v) = %v", tc.in, got)
		}
	}
}
