package season

import (
	"fmt"
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// Service is the sport/year entry point used by the presentation layers. It
// combines registry lookups with the pure resolvers; "today" is always passed
// in by the caller, never read from a clock here.
type Service struct {
	registry *Registry
}

// NewService constructs a Service over the given registry.
func NewService(registry *Registry) *Service {
	return &Service{registry: registry}
}

// Registry exposes the underlying registry (startup wiring and reloads).
func (s *Service) Registry() *Registry {
	return s.registry
}

// CurrentSeason returns the season whose overall span contains the date. When
// the date falls between seasons it returns the latest registered season, so
// offseason queries still have standings and schedule context to work with.
func (s *Service) CurrentSeason(sport string, date time.Time) (Definition, error) {
	day := timeutil.Midnight(date)
	years := s.registry.Years(sport)
	if len(years) == 0 {
		return Definition{}, fmt.Errorf("%w: %s", ErrNotFound, normalizeSport(sport))
	}

	latest := Definition{}
	for _, year := range years {
		def, err := s.registry.Get(sport, year)
		if err != nil {
			return Definition{}, err
		}
		if def.SpanContains(day) {
			return def, nil
		}
		latest = def
	}
	return latest, nil
}

// Resolve classifies a date within the given sport's season year.
func (s *Service) Resolve(sport string, year int, date time.Time) (Resolution, error) {
	def, err := s.registry.Get(sport, year)
	if err != nil {
		return Resolution{}, err
	}
	return def.Resolve(date), nil
}

// WeekOf returns the week number for the date, with ok=false when the phase
// carries no week number.
func (s *Service) WeekOf(sport string, year int, date time.Time) (int, bool, error) {
	def, err := s.registry.Get(sport, year)
	if err != nil {
		return 0, false, err
	}
	week, ok := def.WeekOf(date)
	return week, ok, nil
}

// NextMilestone returns the next boundary after the date within the season,
// with ok=false when none remains.
func (s *Service) NextMilestone(sport string, year int, date time.Time) (Milestone, bool, error) {
	def, err := s.registry.Get(sport, year)
	if err != nil {
		return Milestone{}, false, err
	}
	ms, ok := def.NextMilestone(date)
	return ms, ok, nil
}

// TransitionState classifies the date against the season and, when
// registered, its successor.
func (s *Service) TransitionState(sport string, year int, date time.Time, thresholdDays int) (TransitionState, error) {
	def, err := s.registry.Get(sport, year)
	if err != nil {
		return "", err
	}

	var next *Definition
	if nextDef, ok := s.registry.Next(sport, year); ok {
		next = &nextDef
	}
	return Transition(def, next, date, thresholdDays), nil
}
