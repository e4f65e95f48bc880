package main

import (
	"context"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	dark "github.com/thiagokokada/dark-mode-go"

	"sounddraw/playback"
	"sounddraw/record"
	"sounddraw/sketch"
	"sounddraw/synth"
)

const windowTitle = "Sound Drawing"

var (
	gameCtx context.Context
	once    sync.Once
)

type Game struct {
	app      *sketch.App
	canvas   *imageCanvas
	recorder *record.Recorder
	last     record.Session
	theme    theme

	w, h           int // size the app was last laid out for
	outerW, outerH int
	title          string
}

func newGame(bank *synth.Bank, ready <-chan struct{}) *Game {
	g := &Game{
		recorder: record.New(),
		theme:    pickTheme(gs.Theme),
		w:        gs.WindowWidth,
		h:        gs.WindowHeight,
	}
	g.outerW, g.outerH = g.w, g.h
	g.canvas = newImageCanvas(g.w, g.h, g.theme.background)

	sink := newAudioSink(bank, gs.Volume, logger.Named("audio"))
	g.app = sketch.New(sketch.Options{
		Canvas:         g.canvas,
		Sink:           teeSink{sink, g.recorder},
		Logger:         logger.Named("sketch"),
		Interval:       gs.tickInterval(),
		Ready:          ready,
		ReadyTimeout:   gs.audioTimeout(),
		OnSessionStart: g.recorder.Begin,
		OnSessionEnd:   g.sessionEnded,
	}, sketch.Layout{Width: float64(g.w), Height: float64(g.h)})
	g.canvas.Redraw(g.app.Snapshot())
	return g
}

func (g *Game) sessionEnded(st playback.Stats) {
	g.last = g.recorder.Session()
	logInfo("%s", sessionSummary(st))
	if gs.MidiPath != "" {
		saveSession(g.last, gs.MidiPath)
	}
}

func (g *Game) Update() error {
	select {
	case <-gameCtx.Done():
		return ebiten.Termination
	default:
	}
	once.Do(initGame)

	if g.outerW != g.w || g.outerH != g.h {
		g.w, g.h = g.outerW, g.outerH
		g.canvas.resize(g.w, g.h)
		g.app.Push(sketch.Resize(float64(g.w), float64(g.h)))
		setWindowSize(g.w, g.h)
	}

	pollInput(g.app)
	if exportRequested() {
		exportSession(g.last)
	}
	g.app.Update(time.Now())

	mx, my := ebiten.CursorPosition()
	ebiten.SetCursorShape(cursorShape(g.app, float64(mx), float64(my)))
	g.updateTitle()
	return nil
}

// updateTitle mirrors the status text into the window title.
func (g *Game) updateTitle() {
	title := windowTitle
	if s := g.app.Status(); s != "" {
		title += " - " + s
	}
	if title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.img, nil)
	mx, my := ebiten.CursorPosition()
	drawControlBar(screen, g.app, g.theme, float64(mx), float64(my))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outerW, g.outerH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func pickTheme(name string) theme {
	switch name {
	case "dark":
		return darkTheme
	case "light":
		return lightTheme
	}
	darkMode, err := dark.IsDarkMode()
	if err != nil {
		logDebug("detect dark mode: %v", err)
		return lightTheme
	}
	if darkMode {
		return darkTheme
	}
	return lightTheme
}

// runGame blocks until the window closes or ctx ends.
func runGame(ctx context.Context, bank *synth.Bank, ready <-chan struct{}) error {
	gameCtx = ctx

	ebiten.SetWindowSize(gs.WindowWidth, gs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(windowTitle)

	g := newGame(bank, ready)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}

func initGame() {
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	initFont()
}
