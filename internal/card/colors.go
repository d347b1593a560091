package card

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/pokecard/internal/creature"
)

const (
	DarkenFactor  = 0.6
	LightenFactor = 1.5
)

// TypeColors maps a primary type to its card color. The "default" entry is
// used for records without types and for unknown types.
var TypeColors = map[string]string{
	"electric":           "#FFEA70",
	"normal":             "#B09398",
	"fire":               "#FF675C",
	"water":              "#0596C7",
	"ice":                "#AFEAFD",
	"rock":               "#999799",
	"flying":             "#7AE7C7",
	"grass":              "#4A9681",
	"psychic":            "#FFC6D9",
	"ghost":              "#561D25",
	"bug":                "#A2FAA3",
	"poison":             "#795663",
	"ground":             "#D2B074",
	"dragon":             "#DA627D",
	"steel":              "#1D8A99",
	"fighting":           "#2F2F2F",
	creature.DefaultType: "#2A1A1F",
}

var typePalette = buildPalette(TypeColors)

func buildPalette(table map[string]string) map[string]color.RGBA {
	palette := make(map[string]color.RGBA, len(table))
	for name, hex := range table {
		c, err := parseHex(hex)
		if err != nil {
			panic(fmt.Sprintf("card: invalid color for type %s: %v", name, err))
		}
		palette[name] = c
	}
	return palette
}

func parseHex(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ColorFor returns the base color of a type, falling back to the default
// entry for unknown types.
func ColorFor(typeName string) color.RGBA {
	if c, ok := typePalette[strings.ToLower(typeName)]; ok {
		return c
	}
	return typePalette[creature.DefaultType]
}

// Scale multiplies each channel by factor, truncating and clamping to 255.
func Scale(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
		A: c.A,
	}
}

func Darken(c color.RGBA) color.RGBA {
	return Scale(c, DarkenFactor)
}

func Lighten(c color.RGBA) color.RGBA {
	return Scale(c, LightenFactor)
}

func scaleChannel(v uint8, factor float64) uint8 {
	return uint8(math.Min(255, math.Trunc(float64(v)*factor)))
}

// palette is the set of colors one card is drawn with.
type palette struct {
	base  color.RGBA
	dark  color.RGBA
	light color.RGBA
}

func paletteFor(typeName string) palette {
	base := ColorFor(typeName)
	return palette{
		base:  base,
		dark:  Darken(base),
		light: Lighten(base),
	}
}
