// Package finder resolves free-text input to a canonical catalog name.
package finder

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/arcanaland/pokecard/internal/catalog"
)

// DefaultCutoff is the minimum similarity ratio a candidate needs to match.
const DefaultCutoff = 0.6

// Match is a catalog entry scored against an input.
type Match struct {
	Name  string
	Score float64
}

// Finder scores input against every catalog entry with the sequence-matcher
// ratio 2*M/T, where M is the number of characters in the matching blocks
// and T the combined length of both strings.
type Finder struct {
	catalog *catalog.Catalog
	cutoff  float64
}

type Option func(*Finder)

// WithCutoff overrides DefaultCutoff. Thresholds are calibrated for the
// sequence-matcher ratio; changing the metric requires recalibrating them.
func WithCutoff(cutoff float64) Option {
	return func(f *Finder) {
		f.cutoff = cutoff
	}
}

func New(c *catalog.Catalog, opts ...Option) *Finder {
	f := &Finder{
		catalog: c,
		cutoff:  DefaultCutoff,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Catalog is the catalog the finder scores against.
func (f *Finder) Catalog() *catalog.Catalog {
	return f.catalog
}

// Resolve returns the best-scoring entry at or above the cutoff. Ties go to
// the earliest catalog entry. The second result is false when nothing
// qualifies, including for empty input.
func (f *Finder) Resolve(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || f.catalog == nil {
		return "", false
	}

	m := difflib.NewMatcher(nil, splitRunes(input))

	best, bestScore := "", f.cutoff
	found := false
	for i := 0; i < f.catalog.Len(); i++ {
		name := f.catalog.At(i)
		m.SetSeq1(splitRunes(name))
		// A later entry must score strictly higher to displace the current best.
		if !f.canBeat(m, bestScore, found) {
			continue
		}
		score := m.Ratio()
		if score < f.cutoff || (found && score <= bestScore) {
			continue
		}
		best, bestScore, found = name, score, true
	}
	return best, found
}

// canBeat reports whether the upper bounds of m leave room for a score at
// least floor, or above it once a best match exists.
func (f *Finder) canBeat(m *difflib.SequenceMatcher, floor float64, strict bool) bool {
	for _, bound := range []func() float64{m.RealQuickRatio, m.QuickRatio} {
		b := bound()
		if b < floor || (strict && b <= floor) {
			return false
		}
	}
	return true
}

// Rank returns up to n matches at or above the cutoff, best first, ties in
// catalog order. n <= 0 returns every qualifying match.
func (f *Finder) Rank(input string, n int) []Match {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || f.catalog == nil {
		return nil
	}

	// seq2 holds the input so its index is built once for the whole catalog.
	m := difflib.NewMatcher(nil, splitRunes(input))

	var matches []Match
	for i := 0; i < f.catalog.Len(); i++ {
		name := f.catalog.At(i)
		m.SetSeq1(splitRunes(name))
		if m.RealQuickRatio() < f.cutoff || m.QuickRatio() < f.cutoff {
			continue
		}
		if score := m.Ratio(); score >= f.cutoff {
			matches = append(matches, Match{Name: name, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Ratio is the similarity of a and b on a 0-1 scale, 1 meaning identical.
// It is not case-folded.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	return strings.Split(s, "")
}
