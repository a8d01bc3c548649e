// Package assets resolves the pictures drawn on tiles.
//
// Face pictures are named "<face><variant>.jpg" (for example "12o.jpg" and
// "12i.jpg" are the two pictures of face 12) and the shared face-down
// picture is "image0.bmp". A Provider either decodes them from a directory
// or generates them.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"

	"github.com/ingyamilmolinar/roadsign/core/model"
	game_log "github.com/ingyamilmolinar/roadsign/internal/log"
)

var ErrMissing = errors.New("asset missing")

// Provider returns the decoded picture for an asset name.
type Provider interface {
	Image(name string) (image.Image, error)
}

// DirProvider decodes assets from a file system, usually os.DirFS.
type DirProvider struct {
	FS fs.FS
}

func (p DirProvider) Image(name string) (image.Image, error) {
	f, err := p.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, name)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Set holds every picture a board needs.
type Set struct {
	Hidden image.Image
	Faces  map[string]image.Image
}

// TileSize reads the tile size off the face-down picture.
func TileSize(p Provider) (w, h int, err error) {
	img, err := p.Image(model.HiddenImageName)
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Load fetches the face-down picture and the face of every tile on b. The
// first failure is returned.
func Load(p Provider, b *model.Board, logger *game_log.Logger) (*Set, error) {
	hidden, err := p.Image(model.HiddenImageName)
	if err != nil {
		return nil, err
	}
	s := &Set{Hidden: hidden, Faces: make(map[string]image.Image, model.Rows*model.Cols)}
	var loadErr error
	b.Each(func(_, _ int, t *model.Tile) {
		if loadErr != nil {
			return
		}
		name := t.ImageName()
		img, err := p.Image(name)
		if err != nil {
			loadErr = err
			return
		}
		if sz := img.Bounds().Size(); sz.X != b.TileW || sz.Y != b.TileH {
			logger.Warnf("[ASSETS] %s is %dx%d, tiles are %dx%d", name, sz.X, sz.Y, b.TileW, b.TileH)
		}
		s.Faces[name] = img
	})
	if loadErr != nil {
		return nil, loadErr
	}
	logger.Infof("[ASSETS] Loaded %d face pictures", len(s.Faces))
	return s, nil
}

// Face returns the picture shown for t in its current state.
func (s *Set) Face(t *model.Tile) image.Image {
	if t.Hidden() {
		return s.Hidden
	}
	return s.Faces[t.ImageName()]
}
