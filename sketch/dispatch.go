package sketch

import (
	"time"

	"go.uber.org/zap"

	"sounddraw/strokes"
)

// dispatch routes one event to exactly one handler.
func (a *App) dispatch(ev Event, now time.Time) {
	switch ev.Kind {
	case EventPointerDown:
		a.pointerDown(ev.X, ev.Y, now)
	case EventPointerMove:
		a.pointerMove(ev.X, ev.Y)
	case EventPointerUp:
		a.pointerUp(now)
	case EventCommand:
		a.command(ev.Command, now)
	case EventResize:
		a.resize(ev.X, ev.Y)
	default:
		a.log.Debug("unknown event", zap.Uint8("kind", uint8(ev.Kind)))
	}
}

func (a *App) pointerDown(x, y float64, now time.Time) {
	if a.layout.ReplayButton().Contains(x, y) && a.ReplayEnabled() {
		a.requestPlayback(now)
		return
	}
	if !a.layout.InDrawing(y) || a.Busy() {
		return
	}
	a.store.Begin()
	a.size = MinStrokeSize + a.rng.Float64()*(MaxStrokeSize-MinStrokeSize)
}

func (a *App) pointerMove(x, y float64) {
	if !a.store.Drawing() {
		return
	}
	p := strokes.Point{
		X:     x,
		Y:     y,
		Angle: a.angle,
		Color: a.color,
		Size:  a.size,
		Mode:  a.mode,
	}
	a.store.AppendPoint(p)
	a.canvas.DrawPoint(p, false)
	a.angle += AngleStep
}

func (a *App) pointerUp(now time.Time) {
	if !a.store.Drawing() {
		return
	}
	if a.store.Seal() {
		a.requestPlayback(now)
	}
}

func (a *App) command(c Command, now time.Time) {
	switch c {
	case CommandClear:
		a.clear()
	case CommandPiano:
		a.setMode(strokes.Piano)
	case CommandViolin:
		a.setMode(strokes.Violin)
	case CommandGuitar:
		a.setMode(strokes.Guitar)
	case CommandReplay:
		a.requestPlayback(now)
	}
}

// clear stops any running or pending session before emptying the store, so
// playback never animates strokes that are gone.
func (a *App) clear() {
	if a.engine.Stop() {
		a.log.Debug("playback cancelled by clear")
	}
	a.pending = false
	a.status = ""
	a.store.Clear()
	a.canvas.Redraw(a.store.Snapshot())
}

func (a *App) resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	a.layout = Layout{Width: w, Height: h}
	a.engine.SetViewSize(w, h)
	a.canvas.Redraw(a.store.Snapshot())
}
