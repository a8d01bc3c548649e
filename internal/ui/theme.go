package ui

import "image/color"

var (
	colBackground = color.RGBA{0, 0, 0, 255}

	colTileBorder = color.RGBA{0, 0, 0, 255}

	colScoreText = color.RGBA{255, 255, 255, 255}
	colScoreBG   = colBackground

	colBannerText = color.RGBA{255, 0, 0, 255}
	colBannerBG   = color.RGBA{255, 255, 255, 255}
)

const (
	tileBorderWidth = 3

	// Bitmap font scale factors; the 7x13 face is scaled up to the size of
	// the 63pt score and banner text.
	scoreTextScale  = 4
	bannerTextScale = 4
)
