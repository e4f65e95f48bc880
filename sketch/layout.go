package sketch

// Control bar geometry.
const (
	BarHeight    = 80
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonRadius = 8
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Layout is the window size and the regions derived from it.
type Layout struct {
	Width, Height float64
}

// DrawingHeight is the height of the drawable region above the control bar.
func (l Layout) DrawingHeight() float64 {
	return l.Height - BarHeight
}

// InDrawing reports whether y is above the control bar.
func (l Layout) InDrawing(y float64) bool {
	return y < l.DrawingHeight()
}

// ReplayButton is the centered button in the control bar.
func (l Layout) ReplayButton() Rect {
	return Rect{
		X: l.Width/2 - ButtonWidth/2,
		Y: l.Height - BarHeight/2 - ButtonHeight/2,
		W: ButtonWidth,
		H: ButtonHeight,
	}
}
