package generator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arcanaland/pokecard/internal"
	"github.com/arcanaland/pokecard/internal/card"
	"github.com/arcanaland/pokecard/internal/catalog"
	"github.com/arcanaland/pokecard/internal/creature"
	"github.com/arcanaland/pokecard/internal/finder"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchByName(ctx context.Context, name string) (*creature.Record, *creature.Species, error) {
	args := m.Called(ctx, name)
	rec, _ := args.Get(0).(*creature.Record)
	species, _ := args.Get(1).(*creature.Species)
	return rec, species, args.Error(2)
}

func (m *mockFetcher) FetchNameByID(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context, rec *creature.Record) (*card.Card, error) {
	args := m.Called(ctx, rec)
	c, _ := args.Get(0).(*card.Card)
	return c, args.Error(1)
}

var names = []string{"bulbasaur", "charmander", "charizard", "pikachu"}

func record(id int, name string) *creature.Record {
	return &creature.Record{ID: id, Name: name, Types: []string{"fire"}}
}

func newGenerator(fetcher Fetcher, renderer Renderer, opts ...Option) *Generator {
	return New(finder.New(catalog.New(names)), fetcher, renderer, opts...)
}

func TestGenerate_Exact(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)
	rec := record(6, "charizard")
	species := &creature.Species{Name: "charizard", Genus: "Flame Pokémon"}
	c := &card.Card{Path: "output/charizard.png", Name: "CHARIZARD"}

	fetcher.On("FetchByName", mock.Anything, "charizard").Return(rec, species, nil)
	renderer.On("Render", mock.Anything, rec).Return(c, nil)

	res, err := newGenerator(fetcher, renderer).Generate(context.Background(), "  Charizard ")
	require.NoError(t, err)

	assert.True(t, res.Matched)
	assert.True(t, res.Exact)
	assert.Equal(t, "charizard", res.Name)
	assert.Same(t, c, res.Card)
	assert.Same(t, species, res.Species)
	fetcher.AssertExpectations(t)
	renderer.AssertExpectations(t)
}

func TestGenerate_ClosestMatch(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)
	rec := record(6, "charizard")

	fetcher.On("FetchByName", mock.Anything, "charizard").Return(rec, nil, nil)
	renderer.On("Render", mock.Anything, rec).Return(&card.Card{}, nil)

	res, err := newGenerator(fetcher, renderer).Generate(context.Background(), "charzard")
	require.NoError(t, err)

	assert.True(t, res.Matched)
	assert.False(t, res.Exact)
	assert.Equal(t, "charizard", res.Name)
	assert.Nil(t, res.Species)
}

func TestGenerate_NoMatch(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)

	res, err := newGenerator(fetcher, renderer).Generate(context.Background(), "xyzzy")
	require.NoError(t, err)

	assert.False(t, res.Matched)
	assert.Equal(t, "xyzzy", res.Input)
	assert.Empty(t, res.Name)
	fetcher.AssertNotCalled(t, "FetchByName", mock.Anything, mock.Anything)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestGenerate_FetchError(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)
	fetcher.On("FetchByName", mock.Anything, "pikachu").Return(nil, nil, internal.NewNotFoundError("pikachu"))

	res, err := newGenerator(fetcher, renderer).Generate(context.Background(), "pikachu")

	assert.ErrorIs(t, err, internal.ErrNotFound)
	assert.True(t, res.Matched)
	assert.Nil(t, res.Card)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestGenerate_RenderError(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)
	rec := record(25, "pikachu")
	fetcher.On("FetchByName", mock.Anything, "pikachu").Return(rec, nil, nil)
	renderer.On("Render", mock.Anything, rec).Return(nil, errors.New("disk full"))

	res, err := newGenerator(fetcher, renderer).Generate(context.Background(), "pikachu")

	assert.EqualError(t, err, "disk full")
	assert.Same(t, rec, res.Record)
}

func TestRandom(t *testing.T) {
	fixed := func(v int) Option {
		return WithPicker(func(n int) int { return v % n })
	}

	t.Run("remote id", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchNameByID", mock.Anything, 151).Return("mew", nil)

		assert.Equal(t, "mew", newGenerator(fetcher, nil, fixed(150)).Random(context.Background()))
		fetcher.AssertExpectations(t)
	})

	t.Run("catalog fallback", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchNameByID", mock.Anything, 3).Return("", internal.NewNotFoundError("3"))

		assert.Equal(t, "charizard", newGenerator(fetcher, nil, fixed(2)).Random(context.Background()))
	})

	t.Run("empty catalog", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchNameByID", mock.Anything, mock.Anything).Return("", errors.New("offline"))

		g := New(finder.New(catalog.New(nil)), fetcher, nil, fixed(0))
		assert.Equal(t, FallbackName, g.Random(context.Background()))
	})

	t.Run("id range", func(t *testing.T) {
		fetcher := new(mockFetcher)
		fetcher.On("FetchNameByID", mock.Anything, MaxRandomID).Return("pecharunt", nil)

		g := newGenerator(fetcher, nil, WithPicker(func(n int) int { return n - 1 }))
		assert.Equal(t, "pecharunt", g.Random(context.Background()))
	})
}

func TestBatch_OrderAndErrors(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)
	pikachu := record(25, "pikachu")
	charizard := record(6, "charizard")

	fetcher.On("FetchByName", mock.Anything, "pikachu").Return(pikachu, nil, nil)
	fetcher.On("FetchByName", mock.Anything, "charizard").Return(charizard, nil, nil)
	fetcher.On("FetchByName", mock.Anything, "bulbasaur").Return(nil, nil, internal.NewNotFoundError("bulbasaur"))
	renderer.On("Render", mock.Anything, pikachu).Return(&card.Card{Path: "pikachu.png"}, nil)
	renderer.On("Render", mock.Anything, charizard).Return(&card.Card{Path: "charizard.png"}, nil)

	core, logs := observer.New(zap.InfoLevel)
	g := newGenerator(fetcher, renderer, WithLogger(zap.New(core)))

	items, err := g.Batch(context.Background(), []string{"pikachu", "xyzzy", "bulbasaur", "charzard", "pikachu"}, 3, 0)
	require.NoError(t, err)
	require.Len(t, items, 5)

	assert.Equal(t, "pikachu.png", items[0].Result.Card.Path)
	assert.False(t, items[1].Result.Matched)
	assert.NoError(t, items[1].Err)
	assert.ErrorIs(t, items[2].Err, internal.ErrNotFound)
	assert.Equal(t, "charizard.png", items[3].Result.Card.Path)
	assert.Equal(t, "pikachu.png", items[4].Result.Card.Path)

	renderer.AssertNumberOfCalls(t, "Render", 3)
	assert.Equal(t, 1, logs.FilterMessage("batch item failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("batch finished").Len())
}

type countingRenderer struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (r *countingRenderer) Render(ctx context.Context, rec *creature.Record) (*card.Card, error) {
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return &card.Card{Path: rec.Name + ".png"}, nil
}

func TestBatch_ConcurrencyLimit(t *testing.T) {
	fetcher := new(mockFetcher)
	for i, name := range names {
		fetcher.On("FetchByName", mock.Anything, name).Return(record(i+1, name), nil, nil)
	}
	renderer := &countingRenderer{}

	inputs := append(append([]string{}, names...), names...)
	items, err := newGenerator(fetcher, renderer).Batch(context.Background(), inputs, 2, 0)
	require.NoError(t, err)

	for _, item := range items {
		require.NoError(t, item.Err)
	}
	assert.LessOrEqual(t, renderer.peak.Load(), int32(2))
}

func TestBatch_Interval(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)
	rec := record(25, "pikachu")
	fetcher.On("FetchByName", mock.Anything, "pikachu").Return(rec, nil, nil)
	renderer.On("Render", mock.Anything, rec).Return(&card.Card{}, nil)

	start := time.Now()
	_, err := newGenerator(fetcher, renderer).Batch(context.Background(), []string{"pikachu", "pikachu", "pikachu"}, 3, 20*time.Millisecond)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
}

func TestBatch_CancelledContext(t *testing.T) {
	fetcher := new(mockFetcher)
	renderer := new(mockRenderer)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := newGenerator(fetcher, renderer).Batch(ctx, []string{"pikachu", "charizard"}, 1, 0)

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, items, 2)
	fetcher.AssertNotCalled(t, "FetchByName", mock.Anything, mock.Anything)
}
