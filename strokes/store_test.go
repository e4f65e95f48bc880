package strokes

import (
	"math"
	"testing"
)

func pt(x, y float64, m Mode) Point {
	return Point{X: x, Y: y, Color: m.Color(), Size: 100, Mode: m}
}

func TestSealDropsEmptyStroke(t *testing.T) {
	var s Store
	s.Begin()
	if s.Seal() {
		t.Fatalf("empty stroke was sealed")
	}
	if !s.Empty() || s.Drawing() {
		t.Fatalf("store not empty after sealing nothing: len=%d drawing=%v", s.Len(), s.Drawing())
	}
	if s.Seal() {
		t.Fatalf("seal without a stroke reported success")
	}
}

func TestAppendWithoutStroke(t *testing.T) {
	var s Store
	if s.AppendPoint(pt(1, 1, Piano)) {
		t.Fatalf("append succeeded with no stroke in progress")
	}
}

func TestSealKeepsOrder(t *testing.T) {
	var s Store
	for i := 0; i < 3; i++ {
		s.Begin()
		for j := 0; j <= i; j++ {
			s.AppendPoint(pt(float64(i), float64(j), Piano))
		}
		if !s.Seal() {
			t.Fatalf("stroke %d not sealed", i)
		}
	}
	v := s.Snapshot()
	if v.Len() != 3 || v.Points() != 6 {
		t.Fatalf("got %d strokes / %d points", v.Len(), v.Points())
	}
	for i := 0; i < 3; i++ {
		st := v.Stroke(i)
		if st.Len() != i+1 || st.Points[0].X != float64(i) {
			t.Fatalf("stroke %d: %#v", i, st)
		}
	}
}

func TestSnapshotIsFrozen(t *testing.T) {
	var s Store
	s.Begin()
	s.AppendPoint(pt(0, 0, Piano))
	s.AppendPoint(pt(1, 0, Piano))
	s.Seal()
	v := s.Snapshot()

	s.Begin()
	s.AppendPoint(pt(5, 5, Violin))
	s.Seal()
	if v.Len() != 1 || v.Points() != 2 {
		t.Fatalf("view changed after append: %d strokes %d points", v.Len(), v.Points())
	}

	s.Clear()
	if v.Len() != 1 || v.Stroke(0).Points[1].X != 1 {
		t.Fatalf("view changed after clear")
	}
	if !s.Empty() {
		t.Fatalf("store not empty after clear")
	}
}

func TestClearCancelsInProgress(t *testing.T) {
	var s Store
	for i := 0; i < 2; i++ {
		s.Begin()
		s.AppendPoint(pt(0, 0, Piano))
		s.Seal()
	}
	s.Begin()
	s.AppendPoint(pt(3, 3, Guitar))
	s.Clear()
	if s.Len() != 0 || s.Drawing() || len(s.Current()) != 0 {
		t.Fatalf("clear left state behind: len=%d drawing=%v", s.Len(), s.Drawing())
	}
}

func TestViewModes(t *testing.T) {
	var s Store
	s.Begin()
	s.AppendPoint(pt(0, 0, Violin))
	s.AppendPoint(pt(0, 0, Violin))
	s.Seal()
	if got := s.Snapshot().Modes(); len(got) != 1 || got[0] != Violin {
		t.Fatalf("modes %v", got)
	}
	s.Begin()
	s.AppendPoint(pt(0, 0, Piano))
	s.Seal()
	if got := s.Snapshot().Modes(); len(got) != 2 || got[0] != Violin || got[1] != Piano {
		t.Fatalf("modes %v", got)
	}
}

func TestPartnerRotation(t *testing.T) {
	want := map[Mode]Mode{Piano: Violin, Violin: Guitar, Guitar: Piano}
	for m, p := range want {
		if m.Partner() != p {
			t.Fatalf("%v partner = %v, want %v", m, m.Partner(), p)
		}
	}
}

func TestSegment(t *testing.T) {
	p := Point{X: 10, Y: 20, Size: 4}
	x0, y0, x1, y1 := p.Segment(false)
	if x0 != 10 || y0 != 20 || x1 != 14 || y1 != 24 {
		t.Fatalf("unrotated segment (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}

	p.Angle = 90
	_, _, x1, y1 = p.Segment(true)
	// (6,6) rotated by 90 degrees is (-6,6).
	if math.Abs(x1-4) > 1e-9 || math.Abs(y1-26) > 1e-9 {
		t.Fatalf("rotated emphasized end (%v,%v)", x1, y1)
	}
	if Weight(true) != 3 || Weight(false) != 0.75 {
		t.Fatalf("weights %v %v", Weight(true), Weight(false))
	}
}
