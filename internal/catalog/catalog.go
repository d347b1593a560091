// Package catalog holds the list of valid canonical names.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/pokecard/internal"
)

// Source enumerates every canonical name known to the remote API.
type Source interface {
	FetchAllNames(ctx context.Context) ([]string, error)
}

// Catalog is an ordered, deduplicated, read-only list of canonical names.
// It is safe for concurrent use.
type Catalog struct {
	names []string
	index map[string]int
}

// New builds a catalog from names in enumeration order. Names are
// lowercased, empty entries dropped, and duplicates keep their first
// occurrence.
func New(names []string) *Catalog {
	c := &Catalog{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := c.index[n]; ok {
			continue
		}
		c.index[n] = len(c.names)
		c.names = append(c.names, n)
	}
	return c
}

// Load fetches the full listing from src. A failed listing is fatal: without
// a catalog no name can be resolved.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		return nil, internal.NewMissingParamError("catalog.Load.src")
	}

	names, err := src.FetchAllNames(ctx)
	if errors.Is(err, internal.ErrSourceUnavailable) {
		return nil, fmt.Errorf("loading name catalog: %w", err)
	}
	if err != nil {
		return nil, internal.NewSourceUnavailableError("loading name catalog", err)
	}

	return New(names), nil
}

// Names returns a copy of the catalog entries in order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) Len() int {
	return len(c.names)
}

func (c *Catalog) At(i int) string {
	return c.names[i]
}

// Contains reports whether name (case-insensitive) is a catalog entry.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
