package playback

import (
	"math"
	"time"

	"sounddraw/notes"
	"sounddraw/strokes"
)

// Tempo is the beat rate note lengths are measured against.
const Tempo = 120.0

// Duration is a musical note length.
type Duration uint8

const (
	Quarter Duration = iota
	Half
)

func (d Duration) String() string {
	if d == Half {
		return "2n"
	}
	return "4n"
}

// Time converts d to wall-clock time at the given tempo in beats per minute.
func (d Duration) Time(bpm float64) time.Duration {
	if bpm <= 0 {
		bpm = Tempo
	}
	beats := 1.0
	if d == Half {
		beats = 2
	}
	return time.Duration(beats * 60 / bpm * float64(time.Second))
}

// Note is one sound trigger produced by a playback tick.
type Note struct {
	Mode     strokes.Mode
	Pitch    notes.Pitch
	Index    int // scale index of Pitch
	Duration Duration
	Velocity float64
	Harmony  bool
}

// NoteLength returns how long the instrument holds a note.
func NoteLength(m strokes.Mode) Duration {
	if m == strokes.Violin {
		return Half
	}
	return Quarter
}

// ModeGain scales velocity per instrument to even out their loudness.
func ModeGain(m strokes.Mode) float64 {
	switch m {
	case strokes.Violin:
		return 0.8
	case strokes.Guitar:
		return 0.9
	default:
		return 1
	}
}

// Velocity maps a vertical position to loudness: lower on screen is louder,
// capped at 0.6.
func Velocity(y, height float64) float64 {
	if height <= 0 {
		return 0
	}
	return math.Max(0, math.Min(y/height*0.8, 0.6))
}
