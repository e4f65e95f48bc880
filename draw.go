package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sounddraw/sketch"
	"sounddraw/strokes"
)

var separatorColor = color.RGBA{220, 220, 220, 255}

// imageCanvas keeps the drawing in an offscreen image so marks persist
// between frames.
type imageCanvas struct {
	img  *ebiten.Image
	bg   color.Color
	w, h int
}

func newImageCanvas(w, h int, bg color.Color) *imageCanvas {
	c := &imageCanvas{bg: bg}
	c.resize(w, h)
	return c
}

// resize replaces the backing image. The caller redraws afterwards.
func (c *imageCanvas) resize(w, h int) {
	if w < 1 || h < 1 || (w == c.w && h == c.h) {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
	c.w, c.h = w, h
	c.img.Fill(c.bg)
}

// Redraw repaints the whole store at normal weight.
func (c *imageCanvas) Redraw(v strokes.View) {
	c.img.Fill(c.bg)
	drawSeparator(c.img, c.w, c.h)
	v.Each(func(p strokes.Point) {
		drawPoint(c.img, p, false)
	})
}

func (c *imageCanvas) DrawPoint(p strokes.Point, emphasized bool) {
	drawPoint(c.img, p, emphasized)
}

func drawPoint(dst *ebiten.Image, p strokes.Point, emphasized bool) {
	x0, y0, x1, y1 := p.Segment(emphasized)
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1),
		float32(strokes.Weight(emphasized)), p.Color, true)
}

func drawSeparator(dst *ebiten.Image, w, h int) {
	y := float32(h - sketch.BarHeight)
	vector.StrokeLine(dst, 0, y, float32(w), y, 1, separatorColor, false)
}
