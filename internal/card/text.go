package card

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Align is the horizontal anchor of a text run relative to its x position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// fonts holds the parsed font programs. Parsed fonts are safe for concurrent
// use; faces are not, so each draw gets its own faceSet.
type fonts struct {
	regular *opentype.Font
	bold    *opentype.Font
}

func loadFonts() (*fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &fonts{regular: regular, bold: bold}, nil
}

type faceKey struct {
	size float64
	bold bool
}

type faceSet struct {
	fonts *fonts
	faces map[faceKey]font.Face
}

func (f *fonts) newFaceSet() *faceSet {
	return &faceSet{fonts: f, faces: make(map[faceKey]font.Face)}
}

func (s *faceSet) face(size float64, bold bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold}
	if face, ok := s.faces[key]; ok {
		return face, nil
	}

	src := s.fonts.regular
	if bold {
		src = s.fonts.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %.0fpt face: %w", size, err)
	}
	s.faces[key] = face
	return face, nil
}

func (s *faceSet) Close() {
	for _, face := range s.faces {
		face.Close()
	}
}

// textStyle describes one text run.
type textStyle struct {
	size  float64
	bold  bool
	align Align
	color color.Color
}

// measure returns the ink width of text.
func measure(face font.Face, text string) (int, fixed.Int26_6) {
	bounds, _ := font.BoundString(face, text)
	return (bounds.Max.X - bounds.Min.X).Ceil(), bounds.Min.X
}

// drawText draws text with its top edge at y. x is the left edge, center or
// right edge depending on the alignment.
func drawText(dst draw.Image, faces *faceSet, text string, x, y int, style textStyle) error {
	face, err := faces.face(style.size, style.bold)
	if err != nil {
		return err
	}

	width, offset := measure(face, text)
	switch style.align {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.color),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - offset,
			Y: fixed.I(y) + face.Metrics().Ascent,
		},
	}
	d.DrawString(text)
	return nil
}
