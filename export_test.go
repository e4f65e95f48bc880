package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/gomidi/midi/v2/smf"

	"sounddraw/notes"
	"sounddraw/playback"
	"sounddraw/record"
	"sounddraw/strokes"
)

func TestSessionSummary(t *testing.T) {
	s := sessionSummary(playback.Stats{Strokes: 2, Points: 1200, Notes: 1500, Harmonies: 3, Elapsed: 1500 * time.Millisecond})
	for _, want := range []string{"2 strokes", "1,200 points", "1,500 notes", "3 harmonies"} {
		if !strings.Contains(s, want) {
			t.Fatalf("%q missing %q", s, want)
		}
	}
}

func TestSaveSessionWritesInBackground(t *testing.T) {
	r := record.New()
	r.Begin(time.Now())
	r.Record(0, playback.Note{Mode: strokes.Piano, Pitch: notes.Scale[7], Duration: playback.Quarter, Velocity: 0.5})
	path := filepath.Join(t.TempDir(), "session.mid")

	select {
	case <-saveSession(r.Session(), path):
	case <-time.After(5 * time.Second):
		t.Fatalf("session write did not finish")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("no file written: %v", err)
	}
	if _, err := smf.ReadFile(path); err != nil {
		t.Fatalf("written file is not a MIDI file: %v", err)
	}
}
