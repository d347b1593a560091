package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/arcanaland/pokecard/internal/card"
	"github.com/arcanaland/pokecard/internal/catalog"
	"github.com/arcanaland/pokecard/internal/finder"
	"github.com/arcanaland/pokecard/internal/generator"
	"github.com/arcanaland/pokecard/internal/pokeapi"
)

// app is the wired set of components a command works with.
type app struct {
	client    *pokeapi.Client
	finder    *finder.Finder
	renderer  *card.Renderer
	generator *generator.Generator
}

// newApp builds the API client, loads the name catalog and wires the
// renderer. The catalog download is the only startup request and a failure
// there is fatal.
func newApp(ctx context.Context, suffix string) (*app, error) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout()},
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("error loading name catalog: %v", err)
	}
	f := finder.New(cat)

	renderer, err := card.NewRenderer(cfg.OutputDir, client,
		card.WithSuffix(suffix),
		card.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		client:    client,
		finder:    f,
		renderer:  renderer,
		generator: generator.New(f, client, renderer, generator.WithLogger(logger)),
	}, nil
}
