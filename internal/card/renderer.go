// Package card renders the fixed-layout trading card for a creature record.
package card

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/pokecard/internal"
	"github.com/arcanaland/pokecard/internal/creature"
)

// Card geometry. Vertical advances are measured from the top of the section
// they follow.
const (
	Width  = 400
	Height = 700

	borderWidth = 6
	margin      = borderWidth + 15

	nameSize        = 28
	typeSize        = 20
	statSize        = 16
	numberSize      = 16
	placeholderSize = 18

	nameAdvance   = 40
	badgeHeight   = 35
	badgeTextY    = 8
	badgeBorder   = 2
	sectionGap    = 20
	dividerHeight = 4

	spriteBox    = 180
	spriteInset  = 5
	spriteBorder = 3

	numberAdvance = 30
	headerAdvance = 30
	rowHeight     = 22
	rowInset      = 10

	PlaceholderText = "NO IMAGE"
	StatsHeader     = "STATS"
)

var (
	background = color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}
	ink        = color.RGBA{A: 0xFF}
)

// Renderer draws cards and writes them as PNG files. It is safe for
// concurrent use; concurrent renders of the same name race on the output
// file and the last completed write wins.
type Renderer struct {
	outputDir string
	suffix    string
	sprites   SpriteSource
	fonts     *fonts
	logger    *zap.Logger
}

type Option func(*Renderer)

// WithSuffix appends suffix to every output file name, before the extension.
func WithSuffix(suffix string) Option {
	return func(r *Renderer) {
		r.suffix = suffix
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

func NewRenderer(outputDir string, sprites SpriteSource, opts ...Option) (*Renderer, error) {
	if outputDir == "" {
		return nil, internal.NewMissingParamError("NewRenderer.outputDir")
	}

	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		outputDir: outputDir,
		sprites:   sprites,
		fonts:     f,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// OutputPath is where Render writes the card for name.
func (r *Renderer) OutputPath(name string) string {
	return filepath.Join(r.outputDir, FileName(name, r.suffix))
}

// Render draws the card for rec and writes it to OutputPath, replacing any
// existing file. The output directory is created if needed.
func (r *Renderer) Render(ctx context.Context, rec *creature.Record) (*Card, error) {
	img, c, err := r.Draw(ctx, rec)
	if err != nil {
		return nil, err
	}

	path := r.OutputPath(rec.Name)
	if err := writePNG(path, img); err != nil {
		return nil, fmt.Errorf("saving card %s: %w", path, err)
	}
	c.Path = path

	r.logger.Debug("card saved", zap.String("name", rec.Name), zap.String("path", path))
	return c, nil
}

// Draw lays out the card for rec. The result depends only on rec and on
// whether its sprite could be loaded.
func (r *Renderer) Draw(ctx context.Context, rec *creature.Record) (*image.RGBA, *Card, error) {
	if err := checkRecord(rec); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	primary := rec.PrimaryType()
	pal := paletteFor(primary)

	faces := r.fonts.newFaceSet()
	defer faces.Close()

	c := &Card{
		Name:        strings.ToUpper(rec.Name),
		Number:      FormatNumber(rec.ID),
		PrimaryType: primary,
	}

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillRect(img, 0, 0, Width-1, Height-1, background)
	strokeRect(img, 0, 0, Width-1, Height-1, borderWidth, ink)

	l := &layout{img: img, faces: faces, y: margin}

	l.text(c.Name, Width/2, l.y, textStyle{size: nameSize, bold: true, align: AlignCenter, color: ink})
	l.y += nameAdvance

	fillRect(img, margin, l.y, Width-margin, l.y+badgeHeight, pal.light)
	strokeRect(img, margin, l.y, Width-margin, l.y+badgeHeight, badgeBorder, ink)
	l.text(strings.ToUpper(primary), Width/2, l.y+badgeTextY, textStyle{size: typeSize, bold: true, align: AlignCenter, color: ink})
	l.y += badgeHeight + sectionGap

	l.divider()

	drawn, err := r.drawSprite(ctx, l, rec, pal)
	if err != nil {
		return nil, nil, err
	}
	c.Placeholder = !drawn
	l.y += spriteBox + sectionGap

	l.divider()

	l.text(c.Number, Width/2, l.y, textStyle{size: numberSize, bold: true, align: AlignCenter, color: ink})
	l.y += numberAdvance

	l.text(StatsHeader, Width/2, l.y, textStyle{size: typeSize, bold: true, align: AlignCenter, color: ink})
	l.y += headerAdvance

	for i, s := range rec.OrderedStats() {
		row := StatRow{
			Key:    s.Key,
			Label:  creature.StatLabel(s.Key),
			Value:  s.Value,
			Shaded: i%2 == 0,
		}
		y := l.y + i*rowHeight
		if row.Shaded {
			fillRect(img, margin, y-1, Width-margin, y+rowHeight-1, pal.light)
		}
		l.text(row.Label, margin+rowInset, y+2, textStyle{size: statSize, align: AlignLeft, color: ink})
		l.text(fmt.Sprint(row.Value), Width-margin-rowInset, y+2, textStyle{size: statSize, bold: true, align: AlignRight, color: ink})
		c.Rows = append(c.Rows, row)
	}

	if l.err != nil {
		return nil, nil, fmt.Errorf("drawing card for %s: %w", rec.Name, l.err)
	}
	return img, c, nil
}

// drawSprite fills the sprite region and reports whether the sprite itself
// was drawn. On failure the region shows PlaceholderText instead, unless ctx
// ended during the fetch, which aborts the render.
func (r *Renderer) drawSprite(ctx context.Context, l *layout, rec *creature.Record, pal palette) (bool, error) {
	x := (Width - spriteBox) / 2
	y := l.y
	box := image.Rect(x, y, x+spriteBox, y+spriteBox)

	sprite, err := loadSprite(ctx, r.sprites, rec.SpriteURL, spriteBox-2*spriteInset)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		r.logger.Warn("sprite unavailable, drawing placeholder",
			zap.String("name", rec.Name),
			zap.String("url", rec.SpriteURL),
			zap.Error(err))

		draw.Draw(l.img, box, image.NewUniform(background), image.Point{}, draw.Src)
		strokeRect(l.img, x, y, x+spriteBox, y+spriteBox, spriteBorder, ink)
		l.text(PlaceholderText, Width/2, y+spriteBox/2, textStyle{size: placeholderSize, align: AlignCenter, color: ink})
		return false, nil
	}

	region := image.NewRGBA(image.Rect(0, 0, spriteBox, spriteBox))
	fillDots(region, pal.base, pal.dark)
	inset := image.Rect(spriteInset, spriteInset, spriteBox-spriteInset, spriteBox-spriteInset)
	draw.Draw(region, inset, sprite, sprite.Bounds().Min, draw.Over)

	draw.Draw(l.img, box, region, image.Point{}, draw.Src)
	strokeRect(l.img, x, y, x+spriteBox, y+spriteBox, spriteBorder, ink)
	return true, nil
}

// FormatNumber renders an id as the zero-padded card number.
func FormatNumber(id int) string {
	return fmt.Sprintf("No. %03d", id)
}

func checkRecord(rec *creature.Record) error {
	if rec == nil {
		return internal.NewMalformedRecordError("record is nil")
	}
	if rec.Name == "" {
		return internal.NewMalformedRecordError("name is required")
	}
	if strings.ContainsAny(rec.Name, `/\`) || rec.Name == "." || rec.Name == ".." {
		return internal.NewMalformedRecordError(fmt.Sprintf("name %q cannot be used as a file name", rec.Name))
	}
	if rec.ID <= 0 {
		return internal.NewMalformedRecordError(fmt.Sprintf("id must be positive, got %d", rec.ID))
	}
	return nil
}

// layout tracks the running cursor and the first drawing error.
type layout struct {
	img   *image.RGBA
	faces *faceSet
	y     int
	err   error
}

func (l *layout) text(s string, x, y int, style textStyle) {
	if l.err != nil {
		return
	}
	l.err = drawText(l.img, l.faces, s, x, y, style)
}

func (l *layout) divider() {
	fillRect(l.img, margin, l.y, Width-margin, l.y+dividerHeight, ink)
	l.y += sectionGap
}

// cardMode is the permission of written cards; temp files start out 0600.
const cardMode = 0644

// writePNG replaces path atomically so readers never see a partial card.
func writePNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := tmp.Chmod(cardMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
