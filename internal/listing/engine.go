// Package listing holds the fetched photographer set and a derived,
// client-side filtered view of it.
package listing

import (
	"context"
	"strings"

	"github.com/Adi-cmrec/lenslink/internal/api"
)

// Source fetches the full photographer set.
type Source interface {
	List(ctx context.Context) ([]api.Photographer, error)
}

// Engine owns the last successful fetch plus two independent text
// predicates. The visible set is always recomputed from
// (entries, cityQuery, typeQuery); nothing is cached or re-fetched on
// predicate changes.
type Engine struct {
	source Source

	entries   []api.Photographer
	cityQuery string
	typeQuery string
	loading   bool
}

// NewEngine creates an engine over the given source. The entry set is empty
// until Load succeeds.
func NewEngine(source Source) *Engine {
	return &Engine{source: source}
}

// Load fetches the full entry set. On failure any previously loaded entries
// are left untouched and the error is returned for display; there is no
// automatic retry.
func (e *Engine) Load(ctx context.Context) error {
	e.loading = true
	defer func() { e.loading = false }()

	entries, err := e.source.List(ctx)
	if err != nil {
		return err
	}
	e.entries = entries
	return nil
}

// Loading reports whether a fetch is in flight.
func (e *Engine) Loading() bool {
	return e.loading
}

// SetCityQuery updates the city predicate.
func (e *Engine) SetCityQuery(q string) {
	e.cityQuery = q
}

// SetTypeQuery updates the photography-type predicate.
func (e *Engine) SetTypeQuery(q string) {
	e.typeQuery = q
}

// CityQuery returns the current city predicate.
func (e *Engine) CityQuery() string {
	return e.cityQuery
}

// TypeQuery returns the current photography-type predicate.
func (e *Engine) TypeQuery() string {
	return e.typeQuery
}

// Clear resets both predicates, restoring the full set.
func (e *Engine) Clear() {
	e.cityQuery = ""
	e.typeQuery = ""
}

// All returns the full last-fetched set.
func (e *Engine) All() []api.Photographer {
	return e.entries
}

// Visible returns the entries matching the conjunction of both predicates,
// preserving fetch order. It is a pure function of the engine state and is
// safe to call on every predicate change.
func (e *Engine) Visible() []api.Photographer {
	return Filter(e.entries, e.cityQuery, e.typeQuery)
}

// Filter applies case-insensitive substring predicates over city and
// photography type. An empty query matches everything.
func Filter(entries []api.Photographer, cityQuery, typeQuery string) []api.Photographer {
	city := strings.ToLower(cityQuery)
	ptype := strings.ToLower(typeQuery)

	out := make([]api.Photographer, 0, len(entries))
	for _, p := range entries {
		if city != "" && !strings.Contains(strings.ToLower(p.City), city) {
			continue
		}
		if ptype != "" && !strings.Contains(strings.ToLower(p.PhotographyType), ptype) {
			continue
		}
		out = append(out, p)
	}
	return out
}
