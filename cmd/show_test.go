package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pokecard/internal/card"
)

func TestFindEntry(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Charizard.png", "pikachu.png", "pikachu_brutalist.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	entries, err := card.List(dir)
	require.NoError(t, err)

	tests := []struct {
		input string
		path  string
	}{
		{"charizard", "Charizard.png"},
		{"charzard", "Charizard.png"},
		{"Pikachu", "pikachu.png"},
		{"pikachu_brutalist", "pikachu_brutalist.png"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, ok := findEntry(entries, tt.input)
			require.True(t, ok)
			assert.Equal(t, filepath.Join(dir, tt.path), e.Path)
		})
	}

	_, ok := findEntry(entries, "xyzzy123")
	assert.False(t, ok)
}
