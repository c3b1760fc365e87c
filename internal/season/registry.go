package season

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type key struct {
	sport string
	year  int
}

// Registry is the process-wide store of season definitions, keyed by
// (sport, year). It is populated once at startup and read-mostly afterwards;
// configuration reloads swap the whole map in one write so readers never see
// a partially updated season.
type Registry struct {
	mu      sync.RWMutex
	seasons map[key]Definition
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{seasons: make(map[key]Definition)}
}

func normalizeSport(sport string) string {
	return strings.ToLower(strings.TrimSpace(sport))
}

// Register adds (or replaces) a definition. Definitions are validated at
// construction, so registration itself cannot fail.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seasons[key{sport: normalizeSport(def.Sport()), year: def.Year()}] = def
}

// ReplaceAll swaps the registry contents with a fresh snapshot built from the
// given definitions. Readers observe either the old snapshot or the new one,
// never a mix.
func (r *Registry) ReplaceAll(defs []Definition) {
	next := make(map[key]Definition, len(defs))
	for _, def := range defs {
		next[key{sport: normalizeSport(def.Sport()), year: def.Year()}] = def
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seasons = next
}

// Get returns the definition for (sport, year), or ErrNotFound.
func (r *Registry) Get(sport string, year int) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.seasons[key{sport: normalizeSport(sport), year: year}]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s %d", ErrNotFound, normalizeSport(sport), year)
	}
	return def, nil
}

// Years returns the registered season years for a sport, ascending.
func (r *Registry) Years(sport string) []int {
	sport = normalizeSport(sport)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var years []int
	for k := range r.seasons {
		if k.sport == sport {
			years = append(years, k.year)
		}
	}
	sort.Ints(years)
	return years
}

// Sports returns the registered sport identifiers, ascending.
func (r *Registry) Sports() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for k := range r.seasons {
		seen[k.sport] = struct{}{}
	}
	sports := make([]string, 0, len(seen))
	for s := range seen {
		sports = append(sports, s)
	}
	sort.Strings(sports)
	return sports
}

// Next returns the earliest registered season after the given year for the
// sport, or ok=false when none is registered.
func (r *Registry) Next(sport string, year int) (Definition, bool) {
	for _, y := range r.Years(sport) {
		if y > year {
			def, err := r.Get(sport, y)
			if err != nil {
				return Definition{}, false
			}
			return def, true
		}
	}
	return Definition{}, false
}
