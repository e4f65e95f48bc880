package strokes

// View is a frozen picture of the store: the strokes that were sealed when it
// was taken, with their lengths fixed. Appending to or clearing the store does
// not change an existing view.
type View struct {
	strokes []Stroke
}

// Len returns the number of strokes in the view.
func (v View) Len() int { return len(v.strokes) }

// Empty reports whether the view holds no strokes.
func (v View) Empty() bool { return len(v.strokes) == 0 }

// Stroke returns the i'th stroke.
func (v View) Stroke(i int) Stroke { return v.strokes[i] }

// Points returns the total number of points across all strokes.
func (v View) Points() int {
	n := 0
	for _, s := range v.strokes {
		n += len(s.Points)
	}
	return n
}

// Modes returns the distinct instruments used by the view's points, in order
// of first appearance.
func (v View) Modes() []Mode {
	var seen [numModes]bool
	var out []Mode
	for _, s := range v.strokes {
		for _, p := range s.Points {
			if p.Mode < numModes && !seen[p.Mode] {
				seen[p.Mode] = true
				out = append(out, p.Mode)
			}
		}
	}
	return out
}

// Each calls fn for every point in store order.
func (v View) Each(fn func(Point)) {
	for _, s := range v.strokes {
		for _, p := range s.Points {
			fn(p)
		}
	}
}
