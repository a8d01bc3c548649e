package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorPosition = ebiten.CursorPosition
	mouseReleased  = func() bool { return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) }
	touchReleases  = justReleasedTouches
	quitPressed    = func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyEscape) }
)

func justReleasedTouches() []image.Point {
	var pts []image.Point
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

// pointerReleases drains this tick's left-button and touch releases.
func pointerReleases() []image.Point {
	var pts []image.Point
	if mouseReleased() {
		x, y := cursorPosition()
		pts = append(pts, image.Pt(x, y))
	}
	return append(pts, touchReleases()...)
}

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	released func() bool,
	touches func() []image.Point,
	quit func() bool,
) func() {
	oldCursor := cursorPosition
	oldReleased := mouseReleased
	oldTouches := touchReleases
	oldQuit := quitPressed
	cursorPosition = cursor
	mouseReleased = released
	touchReleases = touches
	quitPressed = quit
	return func() {
		cursorPosition = oldCursor
		mouseReleased = oldReleased
		touchReleases = oldTouches
		quitPressed = oldQuit
	}
}
