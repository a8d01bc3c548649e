package ui

import (
	"errors"
	"image"
	"io"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/roadsign/core/clock"
	"github.com/ingyamilmolinar/roadsign/core/engine"
	"github.com/ingyamilmolinar/roadsign/core/model"
	"github.com/ingyamilmolinar/roadsign/internal/assets"
	"github.com/ingyamilmolinar/roadsign/internal/audio"
	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(io.Discard, game_log.LevelError)
}

type recordingSounder struct{ cues []audio.Cue }

func (r *recordingSounder) Play(c audio.Cue) { r.cues = append(r.cues, c) }

var testFaces = []model.FaceID{5, 5, 1, 1, 2, 2, 3, 3, 4, 4, 6, 6, 7, 7, 8, 8}

func newTestGame(t *testing.T) (*Game, *clock.Fake, *recordingSounder) {
	t.Helper()
	b, err := model.NewBoardFromFaces(testFaces, 100, 100, testLogger)
	if err != nil {
		t.Fatal(err)
	}
	art, err := assets.Load(assets.GeneratedProvider{}, b, testLogger)
	if err != nil {
		t.Fatal(err)
	}
	fake := clock.NewFake()
	snd := &recordingSounder{}
	g := New(engine.New(b, fake, testLogger), art, snd, testLogger)
	return g, fake, snd
}

func TestLayoutIsFixed(t *testing.T) {
	g, _, _ := newTestGame(t)
	w, h := g.Layout(1280, 720)
	if w != ScreenWidth || h != ScreenHeight {
		t.Fatalf("layout=%dx%d want %dx%d", w, h, ScreenWidth, ScreenHeight)
	}
}

func TestClickRevealsAndMatches(t *testing.T) {
	g, _, snd := newTestGame(t)
	if err := click(g, 10, 10); err != nil {
		t.Fatal(err)
	}
	if err := click(g, 110, 10); err != nil {
		t.Fatal(err)
	}
	if g.engine.Matched() != 2 || g.engine.Pending() != 0 {
		t.Fatalf("matched=%d pending=%d", g.engine.Matched(), g.engine.Pending())
	}
	want := []audio.Cue{audio.CueFlip, audio.CueFlip, audio.CueMatch}
	if len(snd.cues) != len(want) {
		t.Fatalf("cues=%v want %v", snd.cues, want)
	}
	for i := range want {
		if snd.cues[i] != want[i] {
			t.Fatalf("cues=%v want %v", snd.cues, want)
		}
	}
}

func TestTouchReleaseCounts(t *testing.T) {
	g, _, _ := newTestGame(t)
	restore := SetInputForTest(
		func() (int, int) { return 0, 0 },
		func() bool { return false },
		func() []image.Point { return []image.Point{image.Pt(250, 250)} },
		func() bool { return false },
	)
	defer restore()
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.board.Tiles[2][2].Hidden() {
		t.Fatalf("touch release did not reveal tile")
	}
}

func TestMismatchPlaysMissAndHides(t *testing.T) {
	g, fake, snd := newTestGame(t)
	click(g, 10, 10)
	click(g, 210, 10)
	if snd.cues[len(snd.cues)-1] != audio.CueMiss {
		t.Fatalf("cues=%v, want miss last", snd.cues)
	}
	fake.Advance(engine.MismatchDelay)
	idle(g)
	if !g.board.Tiles[0][0].Hidden() || !g.board.Tiles[0][2].Hidden() {
		t.Fatalf("mismatched tiles still shown")
	}
}

func TestQuitReturnsTermination(t *testing.T) {
	g, _, _ := newTestGame(t)
	restore := SetInputForTest(
		func() (int, int) { return 0, 0 },
		func() bool { return false },
		func() []image.Point { return nil },
		func() bool { return true },
	)
	defer restore()
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err=%v want ebiten.Termination", err)
	}
}

func TestDrawPlayingBoard(t *testing.T) {
	g, fake, _ := newTestGame(t)
	click(g, 10, 10)
	fake.Advance(9 * time.Second)
	idle(g)

	var calls []drawCall
	restore := captureDraws(&calls)
	defer restore()
	g.Draw(nil)

	if len(calls) == 0 || calls[0].kind != "fill" {
		t.Fatalf("first call=%v want fill", calls)
	}
	var blits, rects int
	for i, c := range calls {
		switch c.kind {
		case "blit":
			blits++
			r, col := (blits-1)/model.Cols, (blits-1)%model.Cols
			tl := g.board.Tiles[r][col]
			if c.at != tl.Rect.Min {
				t.Fatalf("blit %d at %v want %v", blits, c.at, tl.Rect.Min)
			}
			if c.img != g.art.Face(tl) {
				t.Fatalf("blit %d drew the wrong picture", blits)
			}
			if calls[i+1].kind != "rect" {
				t.Fatalf("tile %d not followed by border", blits)
			}
		case "rect":
			rects++
		}
	}
	if blits != 16 || rects != 16 {
		t.Fatalf("blits=%d rects=%d want 16,16", blits, rects)
	}
	if g.art.Face(g.board.Tiles[0][0]) == g.art.Hidden {
		t.Fatalf("revealed tile drawn face down")
	}
	last := calls[len(calls)-1]
	if last.kind != "text" || last.text != "2" {
		t.Fatalf("last call=%+v want score 2", last)
	}
	w, _ := textSize("2", scoreTextScale)
	if last.at != image.Pt(ScreenWidth-w, 0) {
		t.Fatalf("score at %v want right aligned", last.at)
	}
}

func TestWinFrameDrawsFinalTile(t *testing.T) {
	g, _, snd := newTestGame(t)
	var calls []drawCall
	restore := captureDraws(&calls)
	defer restore()

	// Draw after every frame, as the game loop does.
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < model.Cols; c++ {
			click(g, c*100+50, r*100+50)
			calls = calls[:0]
			g.Draw(nil)
		}
	}
	if !g.engine.Over() {
		t.Fatalf("game not won, matched=%d", g.engine.Matched())
	}
	if snd.cues[len(snd.cues)-1] != audio.CueWin {
		t.Fatalf("cues=%v want win last", snd.cues)
	}

	last := g.board.Tiles[3][3]
	face := g.art.Faces["8i.jpg"]
	if face == nil || last.ImageName() != "8i.jpg" {
		t.Fatalf("unexpected last tile %v", last)
	}
	var blits int
	drewLast := false
	for _, c := range calls {
		if c.kind != "blit" {
			continue
		}
		blits++
		if c.img == g.art.Hidden {
			t.Fatalf("tile at %v drawn face down on the winning frame", c.at)
		}
		if c.at == last.Rect.Min && c.img == face {
			drewLast = true
		}
	}
	if blits != 16 || !drewLast {
		t.Fatalf("blits=%d drewLast=%t want 16,true", blits, drewLast)
	}
	n := len(calls)
	if calls[n-2].text != bannerText || calls[n-2].at != bannerPos || calls[n-2].col != colBannerText {
		t.Fatalf("banner missing after board: %+v", calls[n-2])
	}
	if calls[n-1].kind != "text" {
		t.Fatalf("score not drawn last: %+v", calls[n-1])
	}
}

func TestDrawAfterWinKeepsBoard(t *testing.T) {
	g, _, _ := newTestGame(t)
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < model.Cols; c++ {
			click(g, c*100+50, r*100+50)
		}
	}
	var calls []drawCall
	restore := captureDraws(&calls)
	defer restore()
	g.Draw(nil) // final board
	calls = calls[:0]
	g.Draw(nil)
	for _, c := range calls {
		if c.kind == "fill" || c.kind == "blit" {
			t.Fatalf("board redrawn after the winning frame: %+v", c)
		}
	}
	if len(calls) != 2 || calls[0].text != bannerText || calls[0].at != bannerPos {
		t.Fatalf("calls=%+v want banner then score", calls)
	}
}
