package model

import (
	"fmt"
	"image"
)

// FaceID identifies the sign shown on a pair of tiles.
type FaceID int

// Variant selects which of the two pictures of a pair a tile displays.
type Variant int

const (
	VariantOuter Variant = iota // "o" picture
	VariantInner                // "i" picture
)

func (v Variant) suffix() string {
	if v == VariantInner {
		return "i"
	}
	return "o"
}

// HiddenImageName is the face-down picture shared by every tile.
const HiddenImageName = "image0.bmp"

// FaceImageName returns the asset name for a face and variant, e.g. "5o.jpg".
func FaceImageName(f FaceID, v Variant) string {
	return fmt.Sprintf("%d%s.jpg", f, v.suffix())
}

type Tile struct {
	Rect    image.Rectangle
	Face    FaceID
	Variant Variant
	hidden  bool
}

func NewTile(r image.Rectangle, f FaceID, v Variant) *Tile {
	return &Tile{Rect: r, Face: f, Variant: v, hidden: true}
}

// Contains reports whether p lies inside the tile.
func (t *Tile) Contains(p image.Point) bool { return p.In(t.Rect) }

func (t *Tile) Reveal() { t.hidden = false }
func (t *Tile) Hide()   { t.hidden = true }

func (t *Tile) Hidden() bool { return t.hidden }

func (t *Tile) Identity() FaceID { return t.Face }

func (t *Tile) Matches(o *Tile) bool { return t.Identity() == o.Identity() }

// ImageName is the asset drawn when the tile is face up.
func (t *Tile) ImageName() string { return FaceImageName(t.Face, t.Variant) }

func (t *Tile) String() string {
	state := "hidden"
	if !t.hidden {
		state = "shown"
	}
	return fmt.Sprintf("%s@(%d,%d) %s", t.ImageName(), t.Rect.Min.X, t.Rect.Min.Y, state)
}
