package season

import (
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// Milestone identifies the next upcoming phase boundary relative to a date.
type Milestone struct {
	Label     string // e.g. "playoffs start", "regular-season end"
	Phase     Phase
	Date      time.Time
	DaysUntil int
}

// NextMilestone scans every interval boundary strictly after the date and
// returns the nearest one. ok is false when no boundary remains this season;
// continuation into the next season is the transition detector's job, not the
// scanner's.
func (d Definition) NextMilestone(date time.Time) (Milestone, bool) {
	day := timeutil.Midnight(date)

	var best Milestone
	found := false
	consider := func(phase Phase, boundary time.Time, suffix string) {
		if !boundary.After(day) {
			return
		}
		if found && !boundary.Before(best.Date) {
			return
		}
		best = Milestone{
			Label:     string(phase) + " " + suffix,
			Phase:     phase,
			Date:      boundary,
			DaysUntil: timeutil.DaysBetween(day, boundary),
		}
		found = true
	}

	for _, iv := range d.intervals {
		consider(iv.Phase, iv.Start, "start")
		consider(iv.Phase, iv.End, "end")
	}
	return best, found
}
