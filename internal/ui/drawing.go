package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var uiFace font.Face = basicfont.Face7x13

var spriteCache = newSprites()

// The drawing primitives below are variables so tests can override them to
// capture draw calls.

// fillScreen clears dst to c.
var fillScreen = func(dst *ebiten.Image, c color.Color) {
	dst.Fill(c)
}

// blit draws src with its top-left corner at at.
var blit = func(dst *ebiten.Image, src image.Image, at image.Point) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	dst.DrawImage(spriteCache.get(src), op)
}

// drawRect strokes the outline of r, width px wide, inside r.
var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, width float32) {
	inset := width / 2
	vector.StrokeRect(dst, float32(r.Min.X)+inset, float32(r.Min.Y)+inset,
		float32(r.Dx())-width, float32(r.Dy())-width, width, c, false)
}

// drawText renders s with its top-left corner at at on a bg box.
var drawText = func(dst *ebiten.Image, s string, at image.Point, scale float64, fg, bg color.Color) {
	w, h := textSize(s, scale)
	vector.DrawFilledRect(dst, float32(at.X), float32(at.Y), float32(w), float32(h), bg, false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(at.X), float64(at.Y)+float64(uiFace.Metrics().Ascent.Ceil())*scale)
	op.ColorScale.ScaleWithColor(fg)
	text.DrawWithOptions(dst, s, uiFace, op)
}

// textSize is the box drawText fills for s.
func textSize(s string, scale float64) (w, h int) {
	adv := font.MeasureString(uiFace, s).Ceil()
	height := uiFace.Metrics().Height.Ceil()
	return int(float64(adv) * scale), int(float64(height) * scale)
}
