package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// click simulates a left-button release at (x,y) and runs one frame.
func click(g *Game, x, y int) error {
	restore := SetInputForTest(
		func() (int, int) { return x, y },
		func() bool { return true },
		func() []image.Point { return nil },
		func() bool { return false },
	)
	defer restore()
	return g.Update()
}

// idle runs one frame without input.
func idle(g *Game) error {
	restore := SetInputForTest(
		func() (int, int) { return 0, 0 },
		func() bool { return false },
		func() []image.Point { return nil },
		func() bool { return false },
	)
	defer restore()
	return g.Update()
}

type drawCall struct {
	kind string
	at   image.Point
	img  image.Image
	text string
	col  color.Color
}

// captureDraws swaps the drawing primitives for recorders.
func captureDraws(calls *[]drawCall) func() {
	oldFill, oldBlit, oldRect, oldText := fillScreen, blit, drawRect, drawText
	fillScreen = func(_ *ebiten.Image, c color.Color) {
		*calls = append(*calls, drawCall{kind: "fill", col: c})
	}
	blit = func(_ *ebiten.Image, src image.Image, at image.Point) {
		*calls = append(*calls, drawCall{kind: "blit", at: at, img: src})
	}
	drawRect = func(_ *ebiten.Image, r image.Rectangle, c color.Color, _ float32) {
		*calls = append(*calls, drawCall{kind: "rect", at: r.Min, col: c})
	}
	drawText = func(_ *ebiten.Image, s string, at image.Point, _ float64, fg, _ color.Color) {
		*calls = append(*calls, drawCall{kind: "text", at: at, text: s, col: fg})
	}
	return func() {
		fillScreen, blit, drawRect, drawText = oldFill, oldBlit, oldRect, oldText
	}
}
