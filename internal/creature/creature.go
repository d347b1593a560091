// Package creature holds the typed records fetched for a single creature.
package creature

import (
	"strings"
)

// DefaultType is used when a record carries no type tags.
const DefaultType = "default"

// Stat is a named base-stat value (e.g. hp, special-attack)
type Stat struct {
	Key   string
	Value int
}

// Record is the attribute record of one creature
type Record struct {
	ID             int
	Name           string   // Canonical lowercase name
	Height         int      // Decimetres
	Weight         int      // Hectograms
	BaseExperience int
	Types          []string // Ordered; the first entry is the primary type
	Stats          []Stat   // Ordered as returned by the source
	Abilities      []string
	SpriteURL      string // Empty when the source has no sprite
	SpeciesURL     string
}

// Species is the auxiliary species record, used for supplementary display only
type Species struct {
	Name        string
	GrowthRate  string
	Genus       string
	Habitat     string
	IsLegendary bool
	IsMythical  bool
	FlavorText  string
}

// PrimaryType returns the first type tag, or DefaultType when there is none.
func (r *Record) PrimaryType() string {
	if len(r.Types) == 0 {
		return DefaultType
	}
	return r.Types[0]
}

// HeightMeters converts the stored height to meters.
func (r *Record) HeightMeters() float64 {
	return float64(r.Height) / 10
}

// WeightKilograms converts the stored weight to kilograms.
func (r *Record) WeightKilograms() float64 {
	return float64(r.Weight) / 10
}

// StatOrder is the canonical display order of base stats.
var StatOrder = []string{
	"hp",
	"attack",
	"defense",
	"special-attack",
	"special-defense",
	"speed",
}

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "ATTACK",
	"defense":         "DEFENSE",
	"special-attack":  "SP.ATK",
	"special-defense": "SP.DEF",
	"speed":           "SPEED",
}

// StatLabel returns the card label for a stat key. Unknown keys fall back to
// their raw key, dashes replaced by spaces, upper-cased.
func StatLabel(key string) string {
	if label, ok := statLabels[key]; ok {
		return label
	}
	return strings.ToUpper(strings.ReplaceAll(key, "-", " "))
}

// IsCanonicalStat reports whether key is one of StatOrder.
func IsCanonicalStat(key string) bool {
	_, ok := statLabels[key]
	return ok
}

// OrderedStats returns the record's stats with canonical keys first, in
// StatOrder, followed by any other keys in source order.
func (r *Record) OrderedStats() []Stat {
	ordered := make([]Stat, 0, len(r.Stats))
	for _, key := range StatOrder {
		for _, s := range r.Stats {
			if s.Key == key {
				ordered = append(ordered, s)
			}
		}
	}
	for _, s := range r.Stats {
		if !IsCanonicalStat(s.Key) {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

// Stat looks up a stat value by key.
func (r *Record) Stat(key string) (int, bool) {
	for _, s := range r.Stats {
		if s.Key == key {
			return s.Value, true
		}
	}
	return 0, false
}
