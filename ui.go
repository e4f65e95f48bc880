package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sounddraw/sketch"
)

const barPad = 16

var (
	whiteImage = ebiten.NewImage(1, 1)
	titleCaser = cases.Title(language.English)

	buttonHover    = color.Gray{Y: 100}
	buttonDisabled = color.Gray{Y: 200}
	buttonIdle     = color.Gray{Y: 150}
	buttonText     = color.White
)

func init() {
	whiteImage.Fill(color.White)
}

// theme holds the colors that follow the light or dark setting.
type theme struct {
	background color.Color
	label      color.Color
}

var (
	lightTheme = theme{background: color.White, label: color.Gray{Y: 80}}
	darkTheme  = theme{background: color.Gray{Y: 24}, label: color.Gray{Y: 200}}
)

// buttonLabel is the replay button text for the current state.
func buttonLabel(playing bool) string {
	if playing {
		return "Playing..."
	}
	return "Replay"
}

// buttonFill picks the replay button color: darker when it can be clicked
// under the pointer, light while disabled.
func buttonFill(hovered, enabled bool) color.Gray {
	switch {
	case hovered && enabled:
		return buttonHover
	case !enabled:
		return buttonDisabled
	}
	return buttonIdle
}

func modeLabel(app *sketch.App) string {
	return titleCaser.String(app.Mode().String())
}

// drawControlBar draws the replay button, the status text on the left and
// the current instrument on the right of the bar.
func drawControlBar(screen *ebiten.Image, app *sketch.App, th theme, mx, my float64) {
	l := app.Layout()
	b := l.ReplayButton()
	enabled := app.ReplayEnabled()
	fillRoundRect(screen, b, sketch.ButtonRadius, buttonFill(b.Contains(mx, my), enabled))

	if uiFace == nil {
		return
	}
	cy := l.Height - sketch.BarHeight/2
	drawText(screen, buttonLabel(app.Busy()), b.X+b.W/2, cy, text.AlignCenter, buttonText)
	if s := app.Status(); s != "" {
		drawText(screen, s, barPad, cy, text.AlignStart, th.label)
	}
	drawText(screen, modeLabel(app), l.Width-barPad, cy, text.AlignEnd, app.Color())
}

func drawText(dst *ebiten.Image, s string, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, uiFace, op)
}

// fillRoundRect fills r with rounded corners of the given radius.
func fillRoundRect(dst *ebiten.Image, r sketch.Rect, radius float64, clr color.Color) {
	left, top := float32(r.X), float32(r.Y)
	right, bottom := float32(r.X+r.W), float32(r.Y+r.H)
	rad := float32(radius)

	var path vector.Path
	path.MoveTo(left+rad, top)
	path.LineTo(right-rad, top)
	path.Arc(right-rad, top+rad, rad, -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(right, bottom-rad)
	path.Arc(right-rad, bottom-rad, rad, 0, math.Pi/2, vector.Clockwise)
	path.LineTo(left+rad, bottom)
	path.Arc(left+rad, bottom-rad, rad, math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(left, top+rad)
	path.Arc(left+rad, top+rad, rad, math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()

	cr, cg, cb, ca := clr.RGBA()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	dst.DrawTriangles(vs, is, whiteImage, op)
}
