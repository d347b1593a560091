package cmd

import (
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pokecard/internal/card"
	"github.com/arcanaland/pokecard/internal/catalog"
	"github.com/arcanaland/pokecard/internal/finder"
)

var showCmd = &cobra.Command{
	Use:   "show name",
	Short: "Display a generated card with ANSI art",
	Long: `Show renders a card from the output directory in the terminal using
24-bit color half blocks. The name is matched against the generated cards,
so close spellings work. No network access is needed.

Examples:
  pokecard show charizard
  pokecard show charizard_brutalist`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")

		entries, err := card.List(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("error listing cards: %v", err)
		}
		if len(entries) == 0 {
			return fmt.Errorf("no cards in %s, generate one with 'pokecard card'", cfg.OutputDir)
		}

		entry, ok := findEntry(entries, input)
		if !ok {
			return noMatch(input)
		}

		return printPreview(entry.Path, func(width int) []string {
			return entryLines(entry)
		})
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// findEntry resolves input against the generated card names. Catalog names
// are lowercased, so file names are compared case-insensitively.
func findEntry(entries []card.Entry, input string) (card.Entry, bool) {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	name, ok := finder.New(catalog.New(names)).Resolve(input)
	if !ok {
		return card.Entry{}, false
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return card.Entry{}, false
}

func entryLines(e card.Entry) []string {
	lines := []string{
		label("Card:") + colorize.HiWhiteString(title(e.Name)),
		label("File:") + colorize.HiWhiteString(e.Path),
	}
	if info, err := os.Stat(e.Path); err == nil {
		lines = append(lines,
			label("Size:")+colorize.HiWhiteString("%d KB", (info.Size()+1023)/1024),
			label("Created:")+colorize.HiWhiteString(info.ModTime().Format("2006-01-02 15:04")),
		)
	}
	return lines
}
