package main

import (
	"bytes"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const uiFontSize = 16

var uiFace text.Face

func initFont() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logError("failed to parse font: %v", err)
		return
	}
	uiFace = &text.GoTextFace{
		Source: src,
		Size:   uiFontSize,
	}
}
