// Package preview renders images as 24-bit ANSI half-block art for terminal
// display.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const halfBlock = '▀'

// ImageToAnsi renders img as width x height character cells. Each cell is an
// upper half block: the top two pixels set the foreground, the bottom two
// the background. Transparent pixels blend onto bg.
func ImageToAnsi(img image.Image, width, height int, bg color.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)
	backdrop, _ := colorful.MakeColor(bg)

	var b strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			top := averageColor(
				blendAt(resized, x, y, backdrop),
				blendAt(resized, x+1, y, backdrop),
			)
			bottom := averageColor(
				blendAt(resized, x, y+1, backdrop),
				blendAt(resized, x+1, y+1, backdrop),
			)
			b.WriteString(cell(halfBlock, top, bottom))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// blendAt returns the pixel at (x, y) composited over backdrop. Pixels
// outside the image are the backdrop.
func blendAt(img image.Image, x, y int, backdrop colorful.Color) colorful.Color {
	bounds := img.Bounds()
	p := image.Pt(bounds.Min.X+x, bounds.Min.Y+y)
	if !p.In(bounds) {
		return backdrop
	}

	r, g, bl, a := img.At(p.X, p.Y).RGBA()
	if a == 0 {
		return backdrop
	}
	alpha := float64(a) / 0xffff
	// RGBA() is alpha-premultiplied.
	return colorful.Color{
		R: float64(r)/0xffff + backdrop.R*(1-alpha),
		G: float64(g)/0xffff + backdrop.G*(1-alpha),
		B: float64(bl)/0xffff + backdrop.B*(1-alpha),
	}
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}.Clamped()
}

func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// StripAnsi removes SGR escape sequences from s.
func StripAnsi(s string) string {
	var b strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			if c == 'm' {
				inEscape = false
			}
		case c == '\x1b':
			inEscape = true
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// VisibleWidth is the number of runes s occupies once escapes are removed.
func VisibleWidth(s string) int {
	return len([]rune(StripAnsi(s)))
}
