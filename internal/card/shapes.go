package card

import (
	"image"
	"image/color"
	"image/draw"
)

// Rectangles use inclusive corner coordinates: (x0, y0)-(x1, y1) covers
// x1-x0+1 by y1-y0+1 pixels.

func fillRect(dst draw.Image, x0, y0, x1, y1 int, c color.Color) {
	r := image.Rect(x0, y0, x1+1, y1+1)
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws an outline of the given width inside the rectangle.
func strokeRect(dst draw.Image, x0, y0, x1, y1, width int, c color.Color) {
	fillRect(dst, x0, y0, x1, y0+width-1, c)
	fillRect(dst, x0, y1-width+1, x1, y1, c)
	fillRect(dst, x0, y0, x0+width-1, y1, c)
	fillRect(dst, x1-width+1, y0, x1, y1, c)
}

const (
	dotSpacing = 10
	dotOffset  = 5
)

// fillDots covers dst with a half-tone grid: one small dot every dotSpacing
// pixels, odd rows shifted right by dotOffset.
func fillDots(dst *image.RGBA, bg, dot color.Color) {
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)

	for y := 0; y < b.Dy(); y += dotSpacing {
		start := (y / dotSpacing) % 2 * dotOffset
		for x := start; x < b.Dx(); x += dotSpacing {
			drawDot(dst, b.Min.X+x, b.Min.Y+y, dot)
		}
	}
}

// drawDot fills the 3x3 cell at (x, y) without its corners.
func drawDot(dst *image.RGBA, x, y int, c color.Color) {
	fillRect(dst, x+1, y, x+1, y+2, c)
	fillRect(dst, x, y+1, x+2, y+1, c)
}
