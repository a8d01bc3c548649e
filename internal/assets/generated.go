package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ingyamilmolinar/roadsign/core/model"
)

// DefaultTileSize matches the 100x100 pictures of the photographed sign set.
const DefaultTileSize = 100

var signColors = []color.RGBA{
	{200, 30, 30, 255},  // red
	{20, 90, 200, 255},  // blue
	{240, 190, 0, 255},  // yellow
	{20, 140, 60, 255},  // green
	{230, 110, 10, 255}, // orange
	{110, 40, 150, 255}, // purple
}

var (
	colCardBack   = color.RGBA{35, 45, 70, 255}
	colCardStripe = color.RGBA{55, 70, 105, 255}
	colWhite      = color.RGBA{255, 255, 255, 255}
)

// GeneratedProvider draws a sign for every face in the pool, so the game can
// run without a picture directory.
type GeneratedProvider struct {
	Size int
}

func (g GeneratedProvider) size() int {
	if g.Size <= 0 {
		return DefaultTileSize
	}
	return g.Size
}

func (g GeneratedProvider) Image(name string) (image.Image, error) {
	if name == model.HiddenImageName {
		return g.back(), nil
	}
	face, v, err := ParseFaceName(name)
	if err != nil {
		return nil, err
	}
	return g.sign(face, v), nil
}

// ParseFaceName splits "<face><o|i>.jpg" into its parts. Names outside the
// pool report ErrMissing.
func ParseFaceName(name string) (model.FaceID, model.Variant, error) {
	base, ok := strings.CutSuffix(name, ".jpg")
	if !ok || len(base) < 2 {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	var v model.Variant
	switch base[len(base)-1] {
	case 'o':
		v = model.VariantOuter
	case 'i':
		v = model.VariantInner
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	n, err := strconv.Atoi(base[:len(base)-1])
	if err != nil || n < 1 || n > model.FacePoolSize {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	return model.FaceID(n), v, nil
}

func (g GeneratedProvider) back() *image.RGBA {
	s := g.size()
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			c := colCardBack
			if ((x+y)/8)%2 == 0 {
				c = colCardStripe
			}
			img.SetRGBA(x, y, c)
		}
	}
	drawLabel(img, "?", colWhite, 4)
	return img
}

// sign draws the face as a road sign. The outer picture is a coloured sign on
// white, the inner picture the same sign inverted.
func (g GeneratedProvider) sign(f model.FaceID, v model.Variant) *image.RGBA {
	s := g.size()
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	ink := signColors[int(f-1)%len(signColors)]
	bg, fg, label := colWhite, ink, colWhite
	if v == model.VariantInner {
		bg, fg, label = ink, colWhite, ink
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	c := float64(s) / 2
	r := float64(s) * 0.42
	var pts [][2]float32
	switch (int(f) - 1) % 4 {
	case 0:
		pts = polygon(c, c, r, 32, 0)
	case 1:
		pts = polygon(c, c+r*0.2, r, 3, -math.Pi/2)
	case 2:
		pts = polygon(c, c, r, 4, 0)
	default:
		pts = polygon(c, c, r, 8, math.Pi/8)
	}
	fillPolygon(img, pts, fg)
	drawLabel(img, strconv.Itoa(int(f)), label, 3)
	return img
}

func polygon(cx, cy, r float64, n int, rot float64) [][2]float32 {
	pts := make([][2]float32, n)
	for i := range pts {
		a := rot + 2*math.Pi*float64(i)/float64(n)
		pts[i] = [2]float32{float32(cx + r*math.Cos(a)), float32(cy + r*math.Sin(a))}
	}
	return pts
}

func fillPolygon(dst *image.RGBA, pts [][2]float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawLabel renders s with the 7x13 bitmap face, scaled up and centred.
func drawLabel(dst *image.RGBA, s string, c color.Color, scale int) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	b := dst.Bounds()
	sw, sh := w*scale, h*scale
	x0 := b.Min.X + (b.Dx()-sw)/2
	y0 := b.Min.Y + (b.Dy()-sh)/2
	draw.NearestNeighbor.Scale(dst, image.Rect(x0, y0, x0+sw, y0+sh), small, small.Bounds(), draw.Over, nil)
}
