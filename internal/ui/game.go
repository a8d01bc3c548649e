package ui

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/roadsign/core/engine"
	"github.com/ingyamilmolinar/roadsign/core/model"
	"github.com/ingyamilmolinar/roadsign/internal/assets"
	"github.com/ingyamilmolinar/roadsign/internal/audio"
	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

const (
	ScreenWidth  = 500
	ScreenHeight = 400

	Title = "Road Sign Master"

	// TPS is the target frame rate of the game loop.
	TPS = 60

	bannerText = "Good Job!"
)

// bannerPos is where the win message is drawn.
var bannerPos = image.Pt(100, 100)

// Sounder plays audio cues.
type Sounder interface {
	Play(audio.Cue)
}

type Game struct {
	engine *engine.Engine
	board  *model.Board
	art    *assets.Set
	sound  Sounder
	logger *game_log.Logger

	frame      int64
	winW, winH int
	announced  bool
	boardFinal bool // board drawn once after the win
}

// New wires the engine's events to sound cues. sound may be nil.
func New(e *engine.Engine, art *assets.Set, sound Sounder, logger *game_log.Logger) *Game {
	g := &Game{
		engine: e,
		board:  e.Board,
		art:    art,
		sound:  sound,
		logger: logger,
	}
	e.OnEvent = g.onEvent
	return g
}

func (g *Game) onEvent(ev engine.Event) {
	var cue audio.Cue
	switch ev.Kind {
	case engine.EventReveal:
		cue = audio.CueFlip
	case engine.EventMatch:
		cue = audio.CueMatch
	case engine.EventMismatch:
		cue = audio.CueMiss
	case engine.EventWon:
		cue = audio.CueWin
	default:
		return
	}
	if g.sound != nil {
		g.sound.Play(cue)
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.logger.Debugf("[GAME] Layout: outside=%dx%d logical=%dx%d", w, h, ScreenWidth, ScreenHeight)
	}
	return ScreenWidth, ScreenHeight
}

/* ─────────────── Update ───────────────────────────────────────────────── */

func (g *Game) Update() error {
	g.frame++
	if quitPressed() {
		g.logger.Infof("[GAME] Quit requested at frame %d", g.frame)
		return ebiten.Termination
	}

	clicks := pointerReleases()
	for _, p := range clicks {
		g.logger.Debugf("[GAME] Pointer released at %v", p)
	}
	g.engine.Update(clicks)

	if g.engine.Over() && !g.announced {
		g.announced = true
		g.logger.Infof("[GAME] Won at frame %d with score %d", g.frame, g.engine.Score())
	}
	return nil
}

/* ─────────────── Draw ─────────────────────────────────────────────────── */

// Draw repaints the board while playing, and once more on the first won
// frame so the final pair shows. After that only the banner and score are
// drawn, on top of the last board frame.
func (g *Game) Draw(screen *ebiten.Image) {
	over := g.engine.Over()
	if !over || !g.boardFinal {
		fillScreen(screen, colBackground)
		g.board.Each(func(_, _ int, t *model.Tile) {
			g.drawTile(screen, t)
		})
		g.boardFinal = over
	}
	if over {
		drawText(screen, bannerText, bannerPos, bannerTextScale, colBannerText, colBannerBG)
	}
	g.drawScore(screen)
}

func (g *Game) drawTile(dst *ebiten.Image, t *model.Tile) {
	if img := g.art.Face(t); img != nil {
		blit(dst, img, t.Rect.Min)
	}
	drawRect(dst, t.Rect, colTileBorder, tileBorderWidth)
}

// drawScore right-aligns the score in the top-right corner.
func (g *Game) drawScore(dst *ebiten.Image) {
	s := strconv.Itoa(g.engine.Score())
	w, _ := textSize(s, scoreTextScale)
	drawText(dst, s, image.Pt(ScreenWidth-w, 0), scoreTextScale, colScoreText, colScoreBG)
}
