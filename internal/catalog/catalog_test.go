package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pokecard/internal"
)

type fakeSource struct {
	names []string
	err   error
}

func (f fakeSource) FetchAllNames(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

func TestNew_DedupFirstOccurrence(t *testing.T) {
	c := New([]string{"bulbasaur", "Ivysaur", "", "bulbasaur", "venusaur", "IVYSAUR"})

	assert.Equal(t, []string{"bulbasaur", "ivysaur", "venusaur"}, c.Names())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "ivysaur", c.At(1))
}

func TestContains(t *testing.T) {
	c := New([]string{"pikachu"})

	assert.True(t, c.Contains("pikachu"))
	assert.True(t, c.Contains(" PIKACHU "))
	assert.False(t, c.Contains("raichu"))
}

func TestNames_ReturnsCopy(t *testing.T) {
	c := New([]string{"mew"})
	names := c.Names()
	names[0] = "mewtwo"

	assert.Equal(t, "mew", c.At(0))
}

func TestLoad(t *testing.T) {
	c, err := Load(context.Background(), fakeSource{names: []string{"eevee", "vaporeon"}})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoad_SourceFailure(t *testing.T) {
	cause := errors.New("connection refused")

	_, err := Load(context.Background(), fakeSource{err: cause})

	require.Error(t, err)
	assert.ErrorIs(t, err, internal.ErrSourceUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestLoad_SourceUnavailableNotWrappedTwice(t *testing.T) {
	cause := internal.NewSourceUnavailableError("listing names", errors.New("connection refused"))

	_, err := Load(context.Background(), fakeSource{err: cause})

	assert.ErrorIs(t, err, internal.ErrSourceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "loading name catalog: source unavailable: listing names: connection refused", err.Error())
}

func TestLoad_NilSource(t *testing.T) {
	_, err := Load(context.Background(), nil)
	assert.ErrorIs(t, err, internal.ErrMissingParam)
}
