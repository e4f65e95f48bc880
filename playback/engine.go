// Package playback replays a snapshot of strokes as an animation, advancing
// one point per stroke per tick and producing the notes that go with it.
package playback

import (
	"math/rand/v2"
	"time"

	"sounddraw/notes"
	"sounddraw/strokes"
)

const (
	// DefaultInterval is the minimum time between two ticks.
	DefaultInterval = 20 * time.Millisecond
	// HarmonyChance is the probability that a sounding point also plays a
	// harmony note, when harmony is allowed at all.
	HarmonyChance = 0.12
	// HarmonyVelocity scales the unweighted velocity of a harmony note.
	HarmonyVelocity = 0.2
)

// Config controls an Engine. A zero Interval or nil Rand takes the default.
// HarmonyChance is used as given, so zero turns harmony off; pass
// HarmonyChance for the usual behaviour.
type Config struct {
	Interval      time.Duration
	HarmonyChance float64
	Rand          *rand.Rand
}

// Frame is the result of one tick.
type Frame struct {
	Tick  int
	Marks []strokes.Point // points to draw emphasized, in stroke order
	Notes []Note
	Done  bool // the session ended on this tick
}

// Stats summarizes a session.
type Stats struct {
	Strokes   int
	Points    int
	Ticks     int
	Notes     int
	Harmonies int
	Started   time.Time
	Elapsed   time.Duration
}

// Engine runs at most one playback session at a time. It is not safe for
// concurrent use.
type Engine struct {
	interval time.Duration
	chance   float64
	rng      *rand.Rand

	width, height float64

	view     strokes.View
	cursors  []int
	active   bool
	harmony  bool
	lastTick time.Time
	stats    Stats
}

// New returns an idle engine.
func New(cfg Config) *Engine {
	e := &Engine{
		interval: cfg.Interval,
		chance:   cfg.HarmonyChance,
		rng:      cfg.Rand,
	}
	if e.interval <= 0 {
		e.interval = DefaultInterval
	}
	if e.chance < 0 {
		e.chance = 0
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// SetViewSize sets the dimensions used to map positions to notes and
// velocities.
func (e *Engine) SetViewSize(w, h float64) {
	e.width, e.height = w, h
}

// Interval returns the tick interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// Active reports whether a session is running.
func (e *Engine) Active() bool { return e.active }

// Snapshot returns the strokes of the running session.
func (e *Engine) Snapshot() strokes.View { return e.view }

// Cursor returns the next point index of stroke i in the running session,
// or 0 when i is not a stroke of it.
func (e *Engine) Cursor(i int) int {
	if i < 0 || i >= len(e.cursors) {
		return 0
	}
	return e.cursors[i]
}

// HarmonyAllowed reports whether the running session mixes instruments.
func (e *Engine) HarmonyAllowed() bool { return e.harmony }

// Stats returns the figures of the current or last session.
func (e *Engine) Stats() Stats { return e.stats }

// Start begins a session over v. It does nothing and returns false when v is
// empty or a session is already running.
func (e *Engine) Start(v strokes.View, now time.Time) bool {
	if e.active || v.Empty() {
		return false
	}
	e.view = v
	e.cursors = make([]int, v.Len())
	e.harmony = len(v.Modes()) >= 2
	e.active = true
	e.lastTick = now
	e.stats = Stats{
		Strokes: v.Len(),
		Points:  v.Points(),
		Started: now,
	}
	return true
}

// Stop ends a running session without completing it.
func (e *Engine) Stop() bool {
	if !e.active {
		return false
	}
	e.finish(e.lastTick)
	return true
}

// Advance runs a tick when at least one interval has passed since the last
// one. The second result is false when no tick ran.
func (e *Engine) Advance(now time.Time) (Frame, bool) {
	if !e.active || now.Sub(e.lastTick) < e.interval {
		return Frame{}, false
	}
	return e.Tick(now), true
}

// Tick advances every unfinished stroke by one point regardless of the
// interval.
func (e *Engine) Tick(now time.Time) Frame {
	if !e.active {
		return Frame{}
	}
	e.lastTick = now
	e.stats.Ticks++
	f := Frame{Tick: e.stats.Ticks}

	finished := true
	for i := range e.cursors {
		st := e.view.Stroke(i)
		c := e.cursors[i]
		if c >= st.Len() {
			continue
		}
		p := st.Points[c]
		f.Marks = append(f.Marks, p)
		if c%2 == 0 {
			f.Notes = e.sound(f.Notes, p)
		}
		e.cursors[i]++
		if e.cursors[i] < st.Len() {
			finished = false
		}
	}

	if finished {
		f.Done = true
		e.finish(now)
	}
	return f
}

// sound appends the note for p and, sometimes, a harmony note on the partner
// instrument.
func (e *Engine) sound(out []Note, p strokes.Point) []Note {
	idx := notes.Index(p.X, e.width)
	vel := Velocity(p.Y, e.height)
	out = append(out, Note{
		Mode:     p.Mode,
		Pitch:    notes.At(idx),
		Index:    idx,
		Duration: NoteLength(p.Mode),
		Velocity: vel * ModeGain(p.Mode),
	})
	e.stats.Notes++

	if !e.harmony || e.chance <= 0 || e.rng.Float64() >= e.chance {
		return out
	}
	hi := notes.Above(idx, 4+e.rng.IntN(3))
	partner := p.Mode.Partner()
	e.stats.Harmonies++
	return append(out, Note{
		Mode:     partner,
		Pitch:    notes.At(hi),
		Index:    hi,
		Duration: NoteLength(partner),
		Velocity: vel * HarmonyVelocity,
		Harmony:  true,
	})
}

func (e *Engine) finish(now time.Time) {
	e.stats.Elapsed = now.Sub(e.stats.Started)
	e.view = strokes.View{}
	e.cursors = nil
	e.harmony = false
	e.active = false
}
