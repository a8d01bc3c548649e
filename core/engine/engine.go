package engine

import (
	"image"
	"time"

	"github.com/ingyamilmolinar/roadsign/core/clock"
	"github.com/ingyamilmolinar/roadsign/core/model"
	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

const (
	// MismatchDelay is how long a wrong pair stays face up.
	MismatchDelay = 400 * time.Millisecond

	// ScoreOffset is subtracted from elapsed seconds to give the score.
	ScoreOffset = 7

	// WinCount is the matched-face count that ends the game.
	WinCount = model.Rows * model.Cols
)

type State int

const (
	StatePlaying State = iota
	StateResolving
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateResolving:
		return "RESOLVING_MISMATCH"
	case StateWon:
		return "WON"
	default:
		return "UNKNOWN"
	}
}

type EventKind int

const (
	EventReveal EventKind = iota
	EventMatch
	EventMismatch
	EventHide
	EventWon
)

func (k EventKind) String() string {
	switch k {
	case EventReveal:
		return "reveal"
	case EventMatch:
		return "match"
	case EventMismatch:
		return "mismatch"
	case EventHide:
		return "hide"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event describes a state change. Tiles holds the tiles involved, if any.
type Event struct {
	Kind  EventKind
	Tiles []*model.Tile
}

// Engine runs the turn state machine for one board. It is driven by Update
// once per frame and is not safe for concurrent use.
type Engine struct {
	Board   *model.Board
	OnEvent func(Event)

	clock    clock.Clock
	watch    *clock.Stopwatch
	mismatch clock.Deadline
	logger   *game_log.Logger

	state   State
	pending []*model.Tile
	matched int
	score   int
}

// New starts the score clock immediately.
func New(b *model.Board, c clock.Clock, logger *game_log.Logger) *Engine {
	e := &Engine{
		Board:   b,
		clock:   c,
		watch:   clock.NewStopwatch(c),
		logger:  logger,
		pending: make([]*model.Tile, 0, 2),
	}
	e.watch.Start()
	e.score = -ScoreOffset
	return e
}

func (e *Engine) State() State { return e.state }
func (e *Engine) Matched() int { return e.matched }
func (e *Engine) Score() int   { return e.score }
func (e *Engine) Pending() int { return len(e.pending) }
func (e *Engine) Over() bool   { return e.state == StateWon }
func (e *Engine) Elapsed() int { return e.watch.ElapsedSeconds() }

// PendingTiles returns a copy of the tiles awaiting comparison.
func (e *Engine) PendingTiles() []*model.Tile {
	return append([]*model.Tile(nil), e.pending...)
}

// Update advances one frame: finish an expired mismatch, apply the clicks of
// this frame, resolve a full pair, recompute the score and check for a win.
func (e *Engine) Update(clicks []image.Point) {
	if e.state == StateWon {
		return
	}
	now := e.clock.Now()

	if e.state == StateResolving {
		if !e.mismatch.Expired(now) {
			if len(clicks) > 0 {
				e.logger.Debugf("[ENGINE] Dropping %d click(s) during mismatch delay", len(clicks))
			}
			e.updateScore()
			return
		}
		for _, t := range e.pending {
			t.Hide()
		}
		e.emit(Event{Kind: EventHide, Tiles: e.PendingTiles()})
		e.pending = e.pending[:0]
		e.state = StatePlaying
	}

	for _, p := range clicks {
		e.Click(p)
	}
	e.resolve(now)
	e.updateScore()

	if e.matched >= WinCount {
		e.state = StateWon
		e.logger.Infof("[ENGINE] All pairs found: score=%d", e.score)
		e.emit(Event{Kind: EventWon})
	}
}

// Click reveals the tile under p if the turn allows it. It reports whether a
// tile was revealed.
func (e *Engine) Click(p image.Point) bool {
	if e.state != StatePlaying {
		e.logger.Debugf("[ENGINE] Ignoring click at %v in state %v", p, e.state)
		return false
	}
	t := e.Board.TileAt(p)
	if t == nil {
		e.logger.Debugf("[ENGINE] Click at %v hit no tile", p)
		return false
	}
	if !t.Hidden() || len(e.pending) >= 2 {
		e.logger.Debugf("[ENGINE] Ignoring click on %v (pending=%d)", t, len(e.pending))
		return false
	}
	t.Reveal()
	e.pending = append(e.pending, t)
	e.logger.Debugf("[ENGINE] Revealed %v (pending=%d)", t, len(e.pending))
	e.emit(Event{Kind: EventReveal, Tiles: []*model.Tile{t}})
	return true
}

func (e *Engine) resolve(now time.Time) {
	if len(e.pending) < 2 {
		return
	}
	a, b := e.pending[0], e.pending[1]
	if a.Matches(b) {
		e.matched += 2
		e.logger.Infof("[ENGINE] Match %v / %v: matched=%d", a, b, e.matched)
		e.emit(Event{Kind: EventMatch, Tiles: e.PendingTiles()})
		e.pending = e.pending[:0]
		return
	}
	e.logger.Debugf("[ENGINE] Mismatch %v / %v", a, b)
	e.mismatch.Arm(now, MismatchDelay)
	e.state = StateResolving
	e.emit(Event{Kind: EventMismatch, Tiles: e.PendingTiles()})
}

func (e *Engine) updateScore() {
	e.score = e.watch.ElapsedSeconds() - ScoreOffset
}

func (e *Engine) emit(ev Event) {
	if e.OnEvent != nil {
		e.OnEvent(ev)
	}
}
