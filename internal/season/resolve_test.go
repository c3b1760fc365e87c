package season

import (
	"testing"
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

func TestResolvePhases(t *testing.T) {
	def := wnba2025(t)

	cases := []struct {
		name string
		date time.Time
		want Phase
		week int
	}{
		{"before everything", timeutil.Date(2025, time.April, 1), PhaseBeforeSeason, 0},
		{"pre-season opener", timeutil.Date(2025, time.May, 2), PhasePreSeason, 1},
		{"regular season opener", timeutil.Date(2025, time.May, 16), PhaseRegularSeason, 1},
		{"week two", timeutil.Date(2025, time.May, 23), PhaseRegularSeason, 2},
		{"all-star break", timeutil.Date(2025, time.July, 19), PhaseAllStarBreak, 0},
		{"regular season finale", timeutil.Date(2025, time.September, 11), PhaseRegularSeason, 0},
		{"gap before playoffs", timeutil.Date(2025, time.September, 12), PhaseBetweenPhases, 0},
		{"playoffs", timeutil.Date(2025, time.October, 10), PhasePlayoffs, 0},
		{"day after playoffs", timeutil.Date(2025, time.October, 20), PhaseAfterSeason, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := def.Resolve(tc.date)
			if res.Phase != tc.want {
				t.Fatalf("expected phase %s, got %s", tc.want, res.Phase)
			}
			if tc.week > 0 && res.Week != tc.week {
				t.Fatalf("expected week %d, got %d", tc.week, res.Week)
			}
		})
	}
}

func TestResolveInclusiveBounds(t *testing.T) {
	def := wnba2025(t)
	for _, iv := range def.Intervals() {
		if got := def.Resolve(iv.Start).Phase; got != iv.Phase {
			t.Fatalf("start of %s resolved to %s", iv.Phase, got)
		}
		if got := def.Resolve(iv.End).Phase; got != iv.Phase {
			t.Fatalf("end of %s resolved to %s", iv.Phase, got)
		}
	}
}

func TestResolveBetweenPhasesExposesNeighbors(t *testing.T) {
	def := wnba2025(t)
	res := def.Resolve(timeutil.Date(2025, time.September, 13))
	if res.Phase != PhaseBetweenPhases {
		t.Fatalf("expected between-phases, got %s", res.Phase)
	}
	if res.Prev != PhaseRegularSeason || res.Next != PhasePlayoffs {
		t.Fatalf("expected regular-season/playoffs neighbors, got %s/%s", res.Prev, res.Next)
	}
}

func TestResolveSentinelNeighbors(t *testing.T) {
	def := wnba2025(t)
	before := def.Resolve(timeutil.Date(2025, time.January, 1))
	if before.Next != PhasePreSeason {
		t.Fatalf("expected pre-season as upcoming neighbor, got %s", before.Next)
	}
	after := def.Resolve(timeutil.Date(2025, time.December, 1))
	if after.Prev != PhasePlayoffs {
		t.Fatalf("expected playoffs as trailing neighbor, got %s", after.Prev)
	}
}

func TestResolveDayOffsets(t *testing.T) {
	def := wnba2025(t)
	res := def.Resolve(timeutil.Date(2025, time.October, 10))
	if res.DaysInto != 26 {
		t.Fatalf("expected 26 days into playoffs, got %d", res.DaysInto)
	}
	if res.DaysRemaining != 9 {
		t.Fatalf("expected 9 days remaining, got %d", res.DaysRemaining)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	def := wnba2025(t)
	date := timeutil.Date(2025, time.June, 10)
	first := def.Resolve(date)
	second := def.Resolve(date)
	if first != second {
		t.Fatalf("expected identical resolutions, got %+v vs %+v", first, second)
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	def := wnba2025(t)
	loc := time.FixedZone("test", 11*60*60)
	late := time.Date(2025, 5, 16, 23, 45, 0, 0, loc)
	if got := def.Resolve(late).Phase; got != PhaseRegularSeason {
		t.Fatalf("expected regular-season, got %s", got)
	}
}

func TestWeekOf(t *testing.T) {
	def := wnba2025(t)

	cases := []struct {
		name string
		date time.Time
		week int
		ok   bool
	}{
		{"first day is week one", timeutil.Date(2025, time.May, 16), 1, true},
		{"sixth day still week one", timeutil.Date(2025, time.May, 21), 1, true},
		{"eighth day rolls to week two", timeutil.Date(2025, time.May, 23), 2, true},
		{"all-star break has no week", timeutil.Date(2025, time.July, 19), 0, false},
		{"gap has no week", timeutil.Date(2025, time.September, 12), 0, false},
		{"before season has no week", timeutil.Date(2025, time.March, 1), 0, false},
		{"after season has no week", timeutil.Date(2025, time.November, 1), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			week, ok := def.WeekOf(tc.date)
			if ok != tc.ok || week != tc.week {
				t.Fatalf("expected (%d,%v), got (%d,%v)", tc.week, tc.ok, week, ok)
			}
		})
	}
}

func TestWeekOfShortPhaseStaysWeekOne(t *testing.T) {
	def, err := NewDefinition("wnba", 2025, "", []Interval{
		{Phase: PhasePlayoffs, Start: timeutil.Date(2025, time.September, 14), End: timeutil.Date(2025, time.September, 18), WeekNumbered: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for day := 14; day <= 18; day++ {
		week, ok := def.WeekOf(timeutil.Date(2025, time.September, day))
		if !ok || week != 1 {
			t.Fatalf("expected week 1 on day %d, got (%d,%v)", day, week, ok)
		}
	}
}

func TestWeekMonotonicWithinPhase(t *testing.T) {
	def := wnba2025(t)
	prev := 0
	for d := timeutil.Date(2025, time.May, 16); !d.After(timeutil.Date(2025, time.July, 16)); d = d.AddDate(0, 0, 1) {
		week, ok := def.WeekOf(d)
		if !ok {
			t.Fatalf("expected a week number on %s", timeutil.FormatDate(d))
		}
		if week < prev {
			t.Fatalf("week decreased from %d to %d on %s", prev, week, timeutil.FormatDate(d))
		}
		prev = week
	}
}
