// Package generator ties name resolution, record fetching and card rendering
// together for the command line.
package generator

import (
	"context"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/pokecard/internal/card"
	"github.com/arcanaland/pokecard/internal/creature"
	"github.com/arcanaland/pokecard/internal/finder"
)

const (
	// MaxRandomID is the highest id Random draws from.
	MaxRandomID = 1010
	// FallbackName is used by Random when nothing else is available.
	FallbackName = "pikachu"
)

// Fetcher retrieves records from the remote API.
type Fetcher interface {
	FetchByName(ctx context.Context, name string) (*creature.Record, *creature.Species, error)
	FetchNameByID(ctx context.Context, id int) (string, error)
}

// Renderer turns a record into a card on disk.
type Renderer interface {
	Render(ctx context.Context, rec *creature.Record) (*card.Card, error)
}

// Result is the outcome of one generation. Matched is false when the input
// resolved to no catalog entry; the other fields are then empty.
type Result struct {
	Input   string
	Name    string
	Exact   bool
	Matched bool
	Card    *card.Card
	Record  *creature.Record
	Species *creature.Species
}

type Generator struct {
	finder   *finder.Finder
	fetcher  Fetcher
	renderer Renderer
	logger   *zap.Logger
	pick     func(n int) int
}

type Option func(*Generator)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithPicker replaces the random source. pick(n) must return a value in
// [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(g *Generator) {
		g.pick = pick
	}
}

func New(f *finder.Finder, fetcher Fetcher, renderer Renderer, opts ...Option) *Generator {
	g := &Generator{
		finder:   f,
		fetcher:  fetcher,
		renderer: renderer,
		logger:   zap.NewNop(),
		pick:     rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate resolves input, fetches the record and renders its card. An input
// with no match is not an error.
func (g *Generator) Generate(ctx context.Context, input string) (*Result, error) {
	res := &Result{Input: input}

	name, ok := g.finder.Resolve(input)
	if !ok {
		g.logger.Debug("no match", zap.String("input", input))
		return res, nil
	}
	res.Name = name
	res.Matched = true
	res.Exact = name == strings.ToLower(strings.TrimSpace(input))

	rec, species, err := g.fetcher.FetchByName(ctx, name)
	if err != nil {
		return res, err
	}
	res.Record = rec
	res.Species = species

	c, err := g.renderer.Render(ctx, rec)
	if err != nil {
		return res, err
	}
	res.Card = c

	g.logger.Debug("card generated",
		zap.String("input", input),
		zap.String("name", name),
		zap.String("path", c.Path),
		zap.Bool("placeholder", c.Placeholder),
	)
	return res, nil
}

// Random picks a name: a random id looked up remotely, else a random catalog
// entry, else FallbackName.
func (g *Generator) Random(ctx context.Context) string {
	id := g.pick(MaxRandomID) + 1
	name, err := g.fetcher.FetchNameByID(ctx, id)
	if err == nil && name != "" {
		return name
	}
	g.logger.Debug("random id lookup failed", zap.Int("id", id), zap.Error(err))

	if c := g.finder.Catalog(); c != nil && c.Len() > 0 {
		return c.At(g.pick(c.Len()))
	}
	return FallbackName
}
