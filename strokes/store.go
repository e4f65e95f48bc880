// Package strokes holds the drawn points, grouped into strokes, and the
// append-only store they are kept in.
package strokes

// Stroke is one continuous drag gesture. Point order is drawing order and
// playback order.
type Stroke struct {
	Points []Point
}

// Len returns the number of points in the stroke.
func (s Stroke) Len() int { return len(s.Points) }

// Store is the ordered list of sealed strokes plus the stroke currently being
// drawn. Sealed strokes are never modified; the store only grows until Clear.
type Store struct {
	strokes []Stroke
	current *Stroke
}

// Begin starts a new in-progress stroke, discarding any unsealed one.
func (s *Store) Begin() {
	s.current = &Stroke{}
}

// Drawing reports whether a stroke is in progress.
func (s *Store) Drawing() bool { return s.current != nil }

// Current returns the points of the in-progress stroke.
func (s *Store) Current() []Point {
	if s.current == nil {
		return nil
	}
	return s.current.Points
}

// AppendPoint adds p to the in-progress stroke. It reports false when no
// stroke is in progress.
func (s *Store) AppendPoint(p Point) bool {
	if s.current == nil {
		return false
	}
	s.current.Points = append(s.current.Points, p)
	return true
}

// Seal moves the in-progress stroke into the store and clears the slot.
// Strokes without points are dropped. It reports whether a stroke was added.
func (s *Store) Seal() bool {
	cur := s.current
	s.current = nil
	if cur == nil || len(cur.Points) == 0 {
		return false
	}
	n := len(cur.Points)
	s.strokes = append(s.strokes, Stroke{Points: cur.Points[:n:n]})
	return true
}

// Clear empties the store and cancels the in-progress stroke. Views taken
// before the call keep their contents.
func (s *Store) Clear() {
	s.strokes = nil
	s.current = nil
}

// Len returns the number of sealed strokes.
func (s *Store) Len() int { return len(s.strokes) }

// Empty reports whether no stroke has been sealed.
func (s *Store) Empty() bool { return len(s.strokes) == 0 }

// Snapshot returns an immutable view of the sealed strokes.
func (s *Store) Snapshot() View {
	n := len(s.strokes)
	return View{strokes: s.strokes[:n:n]}
}
