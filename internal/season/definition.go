package season

import (
	"fmt"
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// Interval is a single named, date-bounded segment of a season.
// Start and End are inclusive calendar dates (UTC midnight).
type Interval struct {
	Phase        Phase
	Start        time.Time
	End          time.Time
	WeekNumbered bool
}

// Contains reports whether the day falls inside the interval, bounds included.
func (iv Interval) Contains(day time.Time) bool {
	return !day.Before(iv.Start) && !day.After(iv.End)
}

// Definition is the complete, validated set of phases for one sport in one
// season year. Definitions are immutable after construction.
type Definition struct {
	sport     string
	year      int
	name      string
	intervals []Interval
}

// NewDefinition validates and constructs a season definition. Intervals must
// be labeled with real phases, individually well-formed (start <= end), sorted
// ascending by start, and strictly non-overlapping. Gaps between intervals are
// legal and resolve as between-phases.
func NewDefinition(sport string, year int, name string, intervals []Interval) (Definition, error) {
	if sport == "" {
		return Definition{}, fmt.Errorf("%w: sport is required", ErrInvalidConfig)
	}
	if len(intervals) == 0 {
		return Definition{}, fmt.Errorf("%w: %s %d has no intervals", ErrInvalidConfig, sport, year)
	}

	normalized := make([]Interval, len(intervals))
	for i, iv := range intervals {
		if !iv.Phase.ValidLabel() {
			return Definition{}, fmt.Errorf("%w: %s %d: %q is not a valid phase label", ErrInvalidConfig, sport, year, iv.Phase)
		}
		iv.Start = timeutil.Midnight(iv.Start)
		iv.End = timeutil.Midnight(iv.End)
		if iv.Start.After(iv.End) {
			return Definition{}, fmt.Errorf("%w: %s %d: %s starts %s after it ends %s",
				ErrInvalidConfig, sport, year, iv.Phase, timeutil.FormatDate(iv.Start), timeutil.FormatDate(iv.End))
		}
		normalized[i] = iv
	}

	for i := 1; i < len(normalized); i++ {
		prev, cur := normalized[i-1], normalized[i]
		if cur.Start.Before(prev.Start) {
			return Definition{}, fmt.Errorf("%w: %s %d: %s is out of chronological order", ErrInvalidConfig, sport, year, cur.Phase)
		}
		// Inclusive bounds: sharing a day is an overlap.
		if !cur.Start.After(prev.End) {
			return Definition{}, fmt.Errorf("%w: %s %d: %s overlaps %s", ErrInvalidConfig, sport, year, cur.Phase, prev.Phase)
		}
	}

	return Definition{sport: sport, year: year, name: name, intervals: normalized}, nil
}

// Sport returns the sport identifier (e.g. "wnba").
func (d Definition) Sport() string { return d.sport }

// Year returns the season year.
func (d Definition) Year() int { return d.year }

// Name returns the display name (e.g. "WNBA 2025").
func (d Definition) Name() string { return d.name }

// Intervals returns a copy of the ordered phase intervals.
func (d Definition) Intervals() []Interval {
	out := make([]Interval, len(d.intervals))
	copy(out, d.intervals)
	return out
}

// First returns the earliest interval.
func (d Definition) First() Interval { return d.intervals[0] }

// Last returns the latest interval.
func (d Definition) Last() Interval { return d.intervals[len(d.intervals)-1] }

// SpanContains reports whether the day falls anywhere inside the season's
// overall span, first start through last end, gaps included.
func (d Definition) SpanContains(day time.Time) bool {
	day = timeutil.Midnight(day)
	return !day.Before(d.First().Start) && !day.After(d.Last().End)
}
