package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sounddraw/sketch"
)

var commandKeys = map[ebiten.Key]sketch.Command{
	ebiten.KeyDelete:    sketch.CommandClear,
	ebiten.KeyBackspace: sketch.CommandClear,
	ebiten.KeyDigit1:    sketch.CommandPiano,
	ebiten.KeyDigit2:    sketch.CommandViolin,
	ebiten.KeyDigit3:    sketch.CommandGuitar,
	ebiten.KeyNumpad1:   sketch.CommandPiano,
	ebiten.KeyNumpad2:   sketch.CommandViolin,
	ebiten.KeyNumpad3:   sketch.CommandGuitar,
}

// pointerState is what the mouse did this frame.
type pointerState struct {
	x, y     float64
	pressed  bool // went down this frame
	held     bool
	released bool // went up this frame
}

func readPointer() pointerState {
	mx, my := ebiten.CursorPosition()
	return pointerState{
		x:        float64(mx),
		y:        float64(my),
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		held:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// pointerEvents turns one frame of mouse state into app events. A point is
// sampled on every frame the button is held, including the first.
func pointerEvents(p pointerState) []sketch.Event {
	var evs []sketch.Event
	if p.pressed {
		evs = append(evs, sketch.PointerDown(p.x, p.y))
	}
	if p.held || p.pressed {
		evs = append(evs, sketch.PointerMove(p.x, p.y))
	}
	if p.released {
		evs = append(evs, sketch.PointerUp(p.x, p.y))
	}
	return evs
}

// pollInput queues this frame's mouse and keyboard input on app.
func pollInput(app *sketch.App) {
	for _, ev := range pointerEvents(readPointer()) {
		app.Push(ev)
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if c, ok := commandKeys[k]; ok {
			app.Push(sketch.Key(c))
		}
	}
}

// exportRequested reports whether the export key went down this frame.
func exportRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyE)
}

// cursorShape is crosshair over the drawing and a pointer over a clickable
// replay button.
func cursorShape(app *sketch.App, x, y float64) ebiten.CursorShapeType {
	if app.Layout().ReplayButton().Contains(x, y) && app.ReplayEnabled() {
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeCrosshair
}
