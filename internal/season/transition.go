package season

import (
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// TransitionState classifies how far a date sits from the live part of a
// season, spanning season end into the next season's pre-season.
type TransitionState string

const (
	// TransitionActive means the date falls within the defined season and
	// the season is not about to end.
	TransitionActive TransitionState = "active"
	// TransitionEndingSoon means the date sits in the season's final phase
	// within the threshold of its end.
	TransitionEndingSoon TransitionState = "ending_soon"
	// TransitionOffseason means the date falls in the inter-season gap.
	TransitionOffseason TransitionState = "offseason"
	// TransitionUpcoming means the next season starts within the threshold.
	TransitionUpcoming TransitionState = "upcoming"
)

// String returns the state label.
func (s TransitionState) String() string {
	return string(s)
}

// Transition classifies a date against the current season and, when known,
// the next one. next may be nil when no later season is registered.
// thresholdDays is caller-supplied; the detector is a pure function of its
// four inputs.
func Transition(current Definition, next *Definition, date time.Time, thresholdDays int) TransitionState {
	day := timeutil.Midnight(date)
	res := current.Resolve(day)

	switch res.Phase {
	case PhaseBeforeSeason:
		// Ahead of the season entirely: the current season is the one
		// that is upcoming.
		if timeutil.DaysBetween(day, current.First().Start) <= thresholdDays {
			return TransitionUpcoming
		}
		return TransitionOffseason

	case PhaseAfterSeason:
		if next != nil {
			until := timeutil.DaysBetween(day, next.First().Start)
			if until >= 0 && until <= thresholdDays {
				return TransitionUpcoming
			}
		}
		return TransitionOffseason

	case PhaseBetweenPhases:
		// A gap inside the season: more phases remain.
		return TransitionActive

	default:
		last := current.Last()
		if res.Phase == last.Phase && last.Contains(day) && res.DaysRemaining <= thresholdDays {
			return TransitionEndingSoon
		}
		return TransitionActive
	}
}
