package season

import (
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// Resolution classifies a single date against a season definition.
// Prev and Next carry the neighboring phase names when the date lands in a
// gap between intervals; they let callers say "between all-star-break and
// playoffs" instead of a bare sentinel.
type Resolution struct {
	Phase Phase

	// Week is the 1-based week number within the matched interval, or 0
	// when the phase carries no week number (sentinels included).
	Week int

	// DaysInto and DaysRemaining are inclusive-day offsets within the
	// matched interval. Both are 0 for sentinel resolutions.
	DaysInto      int
	DaysRemaining int

	Prev Phase
	Next Phase
}

// HasWeek reports whether the resolution carries a week number.
func (r Resolution) HasWeek() bool {
	return r.Week > 0
}

// Resolve classifies a date against the definition's intervals. Every date is
// valid input; dates outside all intervals resolve to one of the sentinels.
func (d Definition) Resolve(date time.Time) Resolution {
	day := timeutil.Midnight(date)

	if day.Before(d.First().Start) {
		return Resolution{Phase: PhaseBeforeSeason, Next: d.First().Phase}
	}
	if day.After(d.Last().End) {
		return Resolution{Phase: PhaseAfterSeason, Prev: d.Last().Phase}
	}

	for i, iv := range d.intervals {
		if iv.Contains(day) {
			res := Resolution{
				Phase:         iv.Phase,
				DaysInto:      timeutil.DaysBetween(iv.Start, day),
				DaysRemaining: timeutil.DaysBetween(day, iv.End),
			}
			if iv.WeekNumbered {
				res.Week = res.DaysInto/7 + 1
			}
			return res
		}
		// Intervals are sorted, so the first start beyond the day closes
		// the gap the day fell into.
		if day.Before(iv.Start) {
			return Resolution{
				Phase: PhaseBetweenPhases,
				Prev:  d.intervals[i-1].Phase,
				Next:  iv.Phase,
			}
		}
	}

	// Unreachable: the span checks above cover everything outside the
	// intervals, and the loop covers everything inside.
	return Resolution{Phase: PhaseAfterSeason, Prev: d.Last().Phase}
}

// WeekOf returns the 1-based week number for the date, or ok=false when the
// date resolves to a sentinel or to a phase without week numbering.
func (d Definition) WeekOf(date time.Time) (int, bool) {
	res := d.Resolve(date)
	if !res.HasWeek() {
		return 0, false
	}
	return res.Week, true
}
