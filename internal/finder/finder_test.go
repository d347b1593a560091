package finder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arcanaland/pokecard/internal/catalog"
)

var standard = catalog.New([]string{
	"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon", "charizard",
	"squirtle", "wartortle", "blastoise", "pikachu", "raichu", "zubat",
	"xatu", "eevee", "vaporeon", "mewtwo", "mew", "gengar", "lucario",
})

func TestRatio(t *testing.T) {
	assert.InDelta(t, 1.0, Ratio("pikachu", "pikachu"), 1e-9)
	assert.InDelta(t, 16.0/17.0, Ratio("charizard", "charzard"), 1e-9)
	assert.InDelta(t, 0.0, Ratio("abc", "xyz"), 1e-9)
	// Matching blocks, not LCS: "abcd" vs "bcda" only matches "bcd".
	assert.InDelta(t, 6.0/8.0, Ratio("abcd", "bcda"), 1e-9)
}

func TestResolve(t *testing.T) {
	f := New(standard)

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"charzard", "charizard", true},
		{"CHARIZARD", "charizard", true},
		{"  Pikachu ", "pikachu", true},
		{"pikachoo", "pikachu", true},
		{"gengr", "gengar", true},
		{"xyzzy123", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := f.Resolve(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_TieGoesToCatalogOrder(t *testing.T) {
	got, ok := New(catalog.New([]string{"abcd", "abce"})).Resolve("abc")
	require.True(t, ok)
	assert.Equal(t, "abcd", got)

	got, ok = New(catalog.New([]string{"abce", "abcd"})).Resolve("abc")
	require.True(t, ok)
	assert.Equal(t, "abce", got)
}

func TestResolve_CutoffIsInclusive(t *testing.T) {
	// "abc" vs "abcxy": 2*3/8 = 0.75; "ab" vs "abxyz": 2*2/7 ~ 0.571.
	f := New(catalog.New([]string{"abcxy"}), WithCutoff(0.75))

	got, ok := f.Resolve("abc")
	assert.True(t, ok)
	assert.Equal(t, "abcxy", got)

	_, ok = New(catalog.New([]string{"abxyz"})).Resolve("ab")
	assert.False(t, ok)
}

func TestResolve_NilCatalog(t *testing.T) {
	_, ok := New(nil).Resolve("pikachu")
	assert.False(t, ok)
}

func TestRank(t *testing.T) {
	matches := New(standard).Rank("charmeleo", 3)

	require.NotEmpty(t, matches)
	assert.Equal(t, "charmeleon", matches[0].Name)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Score, DefaultCutoff)
	}
}

func TestRank_Unlimited(t *testing.T) {
	all := New(standard).Rank("char", 0)
	limited := New(standard).Rank("char", 1)

	assert.GreaterOrEqual(t, len(all), len(limited))
	assert.Len(t, limited, 1)
}

func TestResolve_ExactEntryAlwaysWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,10}`), 1, 30).Draw(t, "names")
		c := catalog.New(names)
		entry := c.At(rapid.IntRange(0, c.Len()-1).Draw(t, "index"))

		got, ok := New(c).Resolve(strings.ToUpper(entry))
		if !ok || got != entry {
			t.Fatalf("Resolve(%q) = %q, %v; want %q", strings.ToUpper(entry), got, ok, entry)
		}
	})
}

func TestResolve_BestScoreOrNoMatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalog.New(rapid.SliceOfN(rapid.StringMatching(`[a-e]{1,8}`), 1, 20).Draw(t, "names"))
		input := rapid.StringMatching(`[a-e]{1,8}`).Draw(t, "input")

		best, bestIdx := -1.0, -1
		for i := 0; i < c.Len(); i++ {
			if s := Ratio(c.At(i), input); s > best {
				best, bestIdx = s, i
			}
		}

		got, ok := New(c).Resolve(input)
		if best < DefaultCutoff {
			if ok {
				t.Fatalf("Resolve(%q) = %q, want no match (best %.3f)", input, got, best)
			}
			return
		}
		if !ok || got != c.At(bestIdx) {
			t.Fatalf("Resolve(%q) = %q, %v; want %q (%.3f)", input, got, ok, c.At(bestIdx), best)
		}
	})
}
