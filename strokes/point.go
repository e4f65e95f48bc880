package strokes

import (
	"image/color"
	"math"
)

// Mode is the instrument voice a point was drawn with.
type Mode uint8

const (
	Piano Mode = iota
	Violin
	Guitar

	numModes = 3
)

var modeNames = [numModes]string{"piano", "violin", "guitar"}

func (m Mode) String() string {
	if m < numModes {
		return modeNames[m]
	}
	return "unknown"
}

// Modes lists every instrument in rotation order.
func Modes() []Mode { return []Mode{Piano, Violin, Guitar} }

// Color returns the ink the mode draws with.
func (m Mode) Color() color.RGBA {
	switch m {
	case Violin:
		return color.RGBA{138, 43, 226, 0xff}
	case Guitar:
		return color.RGBA{255, 140, 0, 0xff}
	default:
		return color.RGBA{235, 115, 221, 0xff}
	}
}

// Partner is the instrument that answers m with a harmony note:
// piano -> violin -> guitar -> piano.
func (m Mode) Partner() Mode {
	return (m + 1) % numModes
}

// Line weights and the playback enlargement factor for drawn marks.
const (
	NormalWeight     = 0.75
	EmphasizedWeight = 3
	EmphasisScale    = 1.5
)

// Point is one sampled mark of a stroke. Color and Mode are copied from the
// drawing state when the point is made and never change afterwards.
type Point struct {
	X, Y  float64
	Angle float64 // degrees
	Color color.RGBA
	Size  float64
	Mode  Mode
}

// Segment returns the end points of the line drawn for p. The mark starts at
// (X, Y) and runs to (Size, Size) in a frame rotated by Angle.
func (p Point) Segment(emphasized bool) (x0, y0, x1, y1 float64) {
	s := p.Size
	if emphasized {
		s *= EmphasisScale
	}
	sin, cos := math.Sincos(p.Angle * math.Pi / 180)
	return p.X, p.Y, p.X + s*cos - s*sin, p.Y + s*sin + s*cos
}

// Weight is the stroke width used for normal or emphasized marks.
func Weight(emphasized bool) float64 {
	if emphasized {
		return EmphasizedWeight
	}
	return NormalWeight
}
