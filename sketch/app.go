// Package sketch is the drawing toy itself: it owns the strokes, the current
// instrument, and the playback session, and reacts to input events. Drawing
// and sound are delegated to a Canvas and a Sink.
package sketch

import (
	"image/color"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"sounddraw/playback"
	"sounddraw/strokes"
)

const (
	// PlayingStatus is shown while a session runs.
	PlayingStatus = "♪ Playing Symphony..."

	// AngleStep is how far the shared angle accumulator turns per sample.
	AngleStep = 1.0

	MinStrokeSize = 50.0
	MaxStrokeSize = 160.0

	// DefaultReadyTimeout bounds the wait for audio before a requested
	// session is dropped.
	DefaultReadyTimeout = 5 * time.Second
)

// Canvas receives drawing operations. Redraw clears the drawable region and
// paints every point of v at normal weight plus the control bar separator.
type Canvas interface {
	Redraw(v strokes.View)
	DrawPoint(p strokes.Point, emphasized bool)
}

// Sink plays notes.
type Sink interface {
	Play(n playback.Note)
}

// Options configures an App. Canvas and Sink are required.
type Options struct {
	Canvas Canvas
	Sink   Sink
	Logger *zap.Logger
	Rand   *rand.Rand

	// Interval is the playback tick interval.
	Interval time.Duration
	// Ready is closed once audio can play. A nil channel means ready.
	Ready <-chan struct{}
	// ReadyTimeout bounds how long a requested session waits for Ready.
	ReadyTimeout time.Duration

	OnSessionStart func(now time.Time)
	OnSessionEnd   func(st playback.Stats)
}

// App holds all drawing and playback state. Every method must be called from
// the same goroutine.
type App struct {
	canvas Canvas
	sink   Sink
	log    *zap.Logger
	rng    *rand.Rand

	ready        <-chan struct{}
	readyOpen    bool
	readyTimeout time.Duration
	onStart      func(time.Time)
	onEnd        func(playback.Stats)

	layout Layout
	queue  Queue
	store  strokes.Store
	engine *playback.Engine

	mode  strokes.Mode
	color color.RGBA
	angle float64
	size  float64

	pending      bool
	pendingSince time.Time
	status       string
}

// New returns an app sized to layout, in piano mode.
func New(opts Options, layout Layout) *App {
	a := &App{
		canvas:       opts.Canvas,
		sink:         opts.Sink,
		log:          opts.Logger,
		rng:          opts.Rand,
		ready:        opts.Ready,
		readyOpen:    opts.Ready == nil,
		readyTimeout: opts.ReadyTimeout,
		onStart:      opts.OnSessionStart,
		onEnd:        opts.OnSessionEnd,
		layout:       layout,
		size:         MinStrokeSize,
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if a.readyTimeout <= 0 {
		a.readyTimeout = DefaultReadyTimeout
	}
	a.engine = playback.New(playback.Config{
		Interval:      opts.Interval,
		HarmonyChance: playback.HarmonyChance,
		Rand:          a.rng,
	})
	a.engine.SetViewSize(layout.Width, layout.Height)
	a.setMode(strokes.Piano)
	return a
}

// Push queues ev for the next Update.
func (a *App) Push(ev Event) { a.queue.Push(ev) }

// Update dispatches queued events in order, then resolves a pending session
// and advances playback.
func (a *App) Update(now time.Time) {
	a.queue.Drain(func(ev Event) { a.dispatch(ev, now) })
	a.checkPending(now)
	a.advance(now)
}

// Layout returns the current window layout.
func (a *App) Layout() Layout { return a.layout }

// Mode returns the instrument new points are drawn with.
func (a *App) Mode() strokes.Mode { return a.mode }

// Color returns the ink new points are drawn with.
func (a *App) Color() color.RGBA { return a.color }

// Status returns the status line text.
func (a *App) Status() string { return a.status }

// Playing reports whether a session is running.
func (a *App) Playing() bool { return a.engine.Active() }

// Pending reports whether a session is waiting for audio.
func (a *App) Pending() bool { return a.pending }

// Busy reports whether a session is running or waiting to start. New strokes
// and replays are refused while busy.
func (a *App) Busy() bool { return a.engine.Active() || a.pending }

// ReplayEnabled reports whether the replay button would start a session.
func (a *App) ReplayEnabled() bool { return !a.store.Empty() && !a.Busy() }

// Snapshot returns the sealed strokes.
func (a *App) Snapshot() strokes.View { return a.store.Snapshot() }

// Drawing reports whether a stroke is in progress.
func (a *App) Drawing() bool { return a.store.Drawing() }

// Engine exposes the playback engine for inspection.
func (a *App) Engine() *playback.Engine { return a.engine }

func (a *App) setMode(m strokes.Mode) {
	a.mode = m
	a.color = m.Color()
}

// requestPlayback starts a session now, or marks one pending until audio is
// ready.
func (a *App) requestPlayback(now time.Time) {
	if a.Busy() || a.store.Empty() {
		return
	}
	if a.isReady() {
		a.startSession(now)
		return
	}
	a.pending = true
	a.pendingSince = now
	a.log.Info("waiting for audio before playback", zap.Duration("timeout", a.readyTimeout))
}

func (a *App) isReady() bool {
	if a.readyOpen {
		return true
	}
	select {
	case <-a.ready:
		a.readyOpen = true
	default:
	}
	return a.readyOpen
}

func (a *App) checkPending(now time.Time) {
	if !a.pending {
		return
	}
	if a.isReady() {
		a.pending = false
		a.startSession(now)
		return
	}
	if now.Sub(a.pendingSince) >= a.readyTimeout {
		a.pending = false
		a.log.Warn("audio not ready, playback cancelled", zap.Duration("waited", now.Sub(a.pendingSince)))
	}
}

func (a *App) startSession(now time.Time) {
	v := a.store.Snapshot()
	if !a.engine.Start(v, now) {
		return
	}
	a.status = PlayingStatus
	a.log.Debug("playback started",
		zap.Int("strokes", v.Len()),
		zap.Int("points", v.Points()),
		zap.Bool("harmony", a.engine.HarmonyAllowed()))
	if a.onStart != nil {
		a.onStart(now)
	}
}

func (a *App) advance(now time.Time) {
	f, ok := a.engine.Advance(now)
	if !ok {
		return
	}
	a.canvas.Redraw(a.store.Snapshot())
	for _, p := range f.Marks {
		a.canvas.DrawPoint(p, true)
	}
	for _, n := range f.Notes {
		a.sink.Play(n)
	}
	if !f.Done {
		return
	}
	a.canvas.Redraw(a.store.Snapshot())
	a.status = ""
	st := a.engine.Stats()
	a.log.Debug("playback finished",
		zap.Int("ticks", st.Ticks),
		zap.Int("notes", st.Notes),
		zap.Int("harmonies", st.Harmonies))
	if a.onEnd != nil {
		a.onEnd(st)
	}
}
