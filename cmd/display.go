package cmd

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/pokecard/internal/card"
	"github.com/arcanaland/pokecard/internal/creature"
	"github.com/arcanaland/pokecard/internal/generator"
	"github.com/arcanaland/pokecard/internal/preview"
)

const (
	// Preview cells for a 400x700 card; each cell covers two pixel rows.
	previewWidth  = 32
	previewHeight = 28

	barWidth = 20
	maxStat  = 255
)

var titleCaser = cases.Title(language.English)

func title(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func label(s string) string {
	return colorize.CyanString("%-10s", s)
}

// reportMatch prints how the input was resolved.
func reportMatch(res *generator.Result) {
	if res.Exact {
		fmt.Printf("✅ Found exact match: %s\n", colorize.HiWhiteString(title(res.Name)))
		return
	}
	fmt.Printf("📝 Using closest match: %s (you searched for '%s')\n",
		colorize.HiWhiteString(title(res.Name)), res.Input)
}

func noMatch(input string) error {
	colorize.Yellow("💡 Try checking the spelling or try a different name.")
	return fmt.Errorf("no match found for '%s'", input)
}

// statBar draws value as a bar of barWidth cells, colored by strength.
func statBar(value int) string {
	filled := value * barWidth / maxStat
	if filled > barWidth {
		filled = barWidth
	}
	if value > 0 && filled == 0 {
		filled = 1
	}

	c := colorize.New(colorize.FgGreen)
	switch {
	case value < 60:
		c = colorize.New(colorize.FgRed)
	case value < 90:
		c = colorize.New(colorize.FgYellow)
	}
	return c.Sprint(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
}

// recordLines formats a record and its optional species for display, with
// long text wrapped to width.
func recordLines(rec *creature.Record, species *creature.Species, width int) []string {
	lines := []string{
		label("Name:") + colorize.HiWhiteString(title(rec.Name)),
		label("Number:") + colorize.HiWhiteString(card.FormatNumber(rec.ID)),
		label("Types:") + colorize.HiWhiteString(typeList(rec)),
		label("Height:") + colorize.HiWhiteString("%.1f m", rec.HeightMeters()),
		label("Weight:") + colorize.HiWhiteString("%.1f kg", rec.WeightKilograms()),
		label("Base exp:") + colorize.HiWhiteString("%d", rec.BaseExperience),
	}

	if len(rec.Abilities) > 0 {
		abilities := make([]string, len(rec.Abilities))
		for i, a := range rec.Abilities {
			abilities[i] = title(a)
		}
		lines = append(lines, label("Abilities:")+colorize.HiWhiteString(strings.Join(abilities, ", ")))
	}

	if stats := rec.OrderedStats(); len(stats) > 0 {
		lines = append(lines, "", colorize.CyanString("Stats:"))
		for _, s := range stats {
			lines = append(lines, fmt.Sprintf("  %-9s %3d %s", creature.StatLabel(s.Key), s.Value, statBar(s.Value)))
		}
	}

	if species != nil {
		lines = append(lines, "")
		if species.Genus != "" {
			lines = append(lines, label("Genus:")+colorize.HiWhiteString(species.Genus))
		}
		if species.GrowthRate != "" {
			lines = append(lines, label("Growth:")+colorize.HiWhiteString(title(species.GrowthRate)))
		}
		if species.Habitat != "" {
			lines = append(lines, label("Habitat:")+colorize.HiWhiteString(title(species.Habitat)))
		}
		switch {
		case species.IsMythical:
			lines = append(lines, colorize.MagentaString("★ Mythical"))
		case species.IsLegendary:
			lines = append(lines, colorize.MagentaString("★ Legendary"))
		}
		if species.FlavorText != "" {
			lines = append(lines, "", colorize.CyanString("Description:"))
			lines = append(lines, preview.WrapText(species.FlavorText, width)...)
		}
	}

	return lines
}

func typeList(rec *creature.Record) string {
	if len(rec.Types) == 0 {
		return title(creature.DefaultType)
	}
	types := make([]string, len(rec.Types))
	for i, t := range rec.Types {
		types[i] = title(t)
	}
	return strings.Join(types, " · ")
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return img, nil
}

// printPreview shows the card image at path next to the given info lines.
func printPreview(path string, info func(width int) []string) error {
	img, err := loadImage(path)
	if err != nil {
		return err
	}

	art := preview.ImageToAnsi(img, previewWidth, previewHeight, color.White)
	lines := info(preview.InfoWidth(previewWidth, terminalWidth()))

	fmt.Println()
	fmt.Print(preview.SideBySide(art, lines))
	fmt.Println()
	return nil
}
