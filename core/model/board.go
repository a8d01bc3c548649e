package model

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

const (
	Rows = 4
	Cols = 4

	// Pairs is the number of distinct faces on a board.
	Pairs = Rows * Cols / 2

	// FacePoolSize is how many faces the asset set provides (1..FacePoolSize).
	FacePoolSize = 18
)

var ErrInvalidLayout = errors.New("invalid board layout")

type Board struct {
	Tiles  [Rows][Cols]*Tile
	TileW  int
	TileH  int
	logger *game_log.Logger
}

type card struct {
	face    FaceID
	variant Variant
}

// NewBoard deals a random board: Pairs faces drawn from the pool without
// repetition, each placed twice, shuffled and laid out row-major.
func NewBoard(rng *rand.Rand, tileW, tileH int, logger *game_log.Logger) *Board {
	picked := rng.Perm(FacePoolSize)[:Pairs]
	deck := make([]card, 0, Rows*Cols)
	for _, n := range picked {
		f := FaceID(n + 1)
		deck = append(deck, card{f, VariantOuter}, card{f, VariantInner})
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	b := layout(deck, tileW, tileH, logger)
	logger.Infof("[BOARD] Dealt board: faces=%v", b.Faces())
	return b
}

// NewBoardFromFaces lays out faces row-major. Every face must appear exactly
// twice; the first occurrence gets the outer picture, the second the inner.
func NewBoardFromFaces(faces []FaceID, tileW, tileH int, logger *game_log.Logger) (*Board, error) {
	if len(faces) != Rows*Cols {
		return nil, fmt.Errorf("%w: got %d faces, want %d", ErrInvalidLayout, len(faces), Rows*Cols)
	}
	seen := map[FaceID]int{}
	deck := make([]card, 0, len(faces))
	for _, f := range faces {
		v := VariantOuter
		if seen[f] > 0 {
			v = VariantInner
		}
		seen[f]++
		if seen[f] > 2 {
			return nil, fmt.Errorf("%w: face %d appears more than twice", ErrInvalidLayout, f)
		}
		deck = append(deck, card{f, v})
	}
	for f, n := range seen {
		if n != 2 {
			return nil, fmt.Errorf("%w: face %d appears %d time(s)", ErrInvalidLayout, f, n)
		}
	}
	return layout(deck, tileW, tileH, logger), nil
}

func layout(deck []card, w, h int, logger *game_log.Logger) *Board {
	b := &Board{TileW: w, TileH: h, logger: logger}
	idx := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			rect := image.Rect(c*w, r*h, (c+1)*w, (r+1)*h)
			b.Tiles[r][c] = NewTile(rect, deck[idx].face, deck[idx].variant)
			idx++
		}
	}
	return b
}

// TileAt returns the first tile in row-major order containing p, or nil.
func (b *Board) TileAt(p image.Point) *Tile {
	for r := range b.Tiles {
		for _, t := range b.Tiles[r] {
			if t.Contains(p) {
				return t
			}
		}
	}
	return nil
}

// Each calls fn for every tile in row-major order.
func (b *Board) Each(fn func(row, col int, t *Tile)) {
	for r := range b.Tiles {
		for c, t := range b.Tiles[r] {
			fn(r, c, t)
		}
	}
}

// Bounds is the screen area covered by the grid.
func (b *Board) Bounds() image.Rectangle {
	return image.Rect(0, 0, Cols*b.TileW, Rows*b.TileH)
}

// Faces returns the faces in row-major order.
func (b *Board) Faces() []FaceID {
	out := make([]FaceID, 0, Rows*Cols)
	b.Each(func(_, _ int, t *Tile) { out = append(out, t.Face) })
	return out
}

// Hidden counts the face-down tiles.
func (b *Board) Hidden() int {
	n := 0
	b.Each(func(_, _ int, t *Tile) {
		if t.Hidden() {
			n++
		}
	})
	return n
}
