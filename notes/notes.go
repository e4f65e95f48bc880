// Package notes maps horizontal screen position onto a fixed three octave
// scale.
package notes

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size is the number of pitches in Scale.
const Size = 22

// ErrBadNote is returned by Parse for names it cannot read.
var ErrBadNote = errors.New("bad note name")

// Pitch is a named equal-tempered note.
type Pitch struct {
	Name string
	MIDI int
}

// Frequency returns the pitch in Hz, tuned to A4 = 440.
func (p Pitch) Frequency() float64 {
	return 440 * math.Pow(2, float64(p.MIDI-69)/12)
}

func (p Pitch) String() string { return p.Name }

// Scale is the C major scale from C3 to C6, low to high.
var Scale = mustScale(
	"C3", "D3", "E3", "F3", "G3", "A3", "B3",
	"C4", "D4", "E4", "F4", "G4", "A4", "B4",
	"C5", "D5", "E5", "F5", "G5", "A5", "B5", "C6",
)

func mustScale(names ...string) [Size]Pitch {
	var s [Size]Pitch
	if len(names) != Size {
		panic(fmt.Sprintf("notes: scale has %d names, want %d", len(names), Size))
	}
	for i, n := range names {
		p, err := Parse(n)
		if err != nil {
			panic(err)
		}
		s[i] = p
	}
	return s
}

// Index maps x within a view of the given width to a scale index in
// [0, Size-1]. Positions outside the view clamp to the ends.
func Index(x, width float64) int {
	if width <= 0 || math.IsNaN(x) {
		return 0
	}
	f := math.Floor(x / width * Size)
	if f < 0 {
		return 0
	}
	if f > Size-1 {
		return Size - 1
	}
	return int(f)
}

// FromPosition returns the scale pitch under x.
func FromPosition(x, width float64) Pitch {
	return Scale[Index(x, width)]
}

// At returns Scale[i], clamping i to the scale.
func At(i int) Pitch {
	return Scale[clamp(i)]
}

// Above returns the index steps scale degrees above i, held at the top.
func Above(i, steps int) int {
	return clamp(i + steps)
}

func clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > Size-1 {
		return Size - 1
	}
	return i
}

// Parse reads a note name such as "C4", "f#3" or "Bb5". The octave defaults
// to 4 when omitted.
func Parse(s string) (Pitch, error) {
	if s == "" {
		return Pitch{}, ErrBadNote
	}
	offsets := map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}
	up := strings.ToUpper(s[:1]) + s[1:]
	base, ok := offsets[up[0]]
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrBadNote, s)
	}
	rest := up[1:]
	name := up[:1]
	if rest != "" {
		switch rest[0] {
		case '#':
			base++
			name += "#"
			rest = rest[1:]
		case 'b':
			base--
			name += "b"
			rest = rest[1:]
		}
	}
	octave := 4
	if rest != "" {
		o, err := strconv.Atoi(rest)
		if err != nil {
			return Pitch{}, fmt.Errorf("%w: %q", ErrBadNote, s)
		}
		octave = o
	}
	return Pitch{
		Name: name + strconv.Itoa(octave),
		MIDI: base + (octave+1)*12,
	}, nil
}
