package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// sprites converts decoded pictures to GPU images once and keeps them.
type sprites struct {
	cache map[image.Image]*ebiten.Image
}

func newSprites() *sprites {
	return &sprites{cache: map[image.Image]*ebiten.Image{}}
}

func (s *sprites) get(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	if e, ok := s.cache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	s.cache[img] = e
	return e
}
