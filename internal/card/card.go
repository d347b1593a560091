package card

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Card describes a rendered card file
type Card struct {
	Path        string    // Written PNG, empty until the card is saved
	Name        string    // Upper-cased display name
	Number      string    // e.g. "No. 006"
	PrimaryType string    // Type used for the badge and colors
	Placeholder bool      // Sprite was absent or could not be loaded
	Rows        []StatRow // Stat rows in display order
}

// StatRow is one line of the stats table
type StatRow struct {
	Key    string
	Label  string
	Value  int
	Shaded bool // Even rows get the light tint
}

// Entry is a card file found in an output directory
type Entry struct {
	Name string // Base name without extension, e.g. "charizard_brutalist"
	Path string
}

// FileName derives the output file name for a record name.
func FileName(name, suffix string) string {
	return strings.ToLower(name) + suffix + ".png"
}

// List returns the cards in dir sorted by name. A missing directory holds no
// cards.
func List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cards []Entry
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".png" || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		cards = append(cards, Entry{
			Name: strings.TrimSuffix(entry.Name(), ".png"),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Name < cards[j].Name
	})

	return cards, nil
}
