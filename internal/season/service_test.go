package season

import (
	"errors"
	"testing"
	"time"

	"github.com/pbertain/wnbapuff/internal/timeutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	reg := NewRegistry()
	reg.Register(wnba2025(t))
	reg.Register(wnba2026(t))
	return NewService(reg)
}

func TestServiceResolve(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.Resolve("wnba", 2025, timeutil.Date(2025, time.May, 16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Phase != PhaseRegularSeason || res.Week != 1 {
		t.Fatalf("expected regular-season week 1, got %s week %d", res.Phase, res.Week)
	}
}

func TestServiceResolveUnknownSeason(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Resolve("wnba", 1999, timeutil.Date(2025, time.May, 16)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceWeekOf(t *testing.T) {
	svc := newTestService(t)
	week, ok, err := svc.WeekOf("wnba", 2025, timeutil.Date(2025, time.May, 23))
	if err != nil || !ok || week != 2 {
		t.Fatalf("expected week 2, got (%d,%v,%v)", week, ok, err)
	}
	_, ok, err = svc.WeekOf("wnba", 2025, timeutil.Date(2025, time.July, 19))
	if err != nil || ok {
		t.Fatalf("expected no week during the all-star break, got ok=%v err=%v", ok, err)
	}
}

func TestServiceNextMilestone(t *testing.T) {
	svc := newTestService(t)
	ms, ok, err := svc.NextMilestone("wnba", 2025, timeutil.Date(2025, time.September, 1))
	if err != nil || !ok {
		t.Fatalf("expected a milestone, got ok=%v err=%v", ok, err)
	}
	if ms.Label != "regular-season end" || ms.DaysUntil != 10 {
		t.Fatalf("expected regular-season end in 10 days, got %q in %d", ms.Label, ms.DaysUntil)
	}
}

func TestServiceTransitionStateUsesNextSeason(t *testing.T) {
	svc := newTestService(t)
	state, err := svc.TransitionState("wnba", 2025, timeutil.Date(2026, time.April, 25), 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != TransitionUpcoming {
		t.Fatalf("expected upcoming via registered 2026 season, got %s", state)
	}
}

func TestServiceTransitionStateWithoutNextSeason(t *testing.T) {
	reg := NewRegistry()
	reg.Register(wnba2025(t))
	svc := NewService(reg)

	state, err := svc.TransitionState("wnba", 2025, timeutil.Date(2025, time.November, 1), 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != TransitionOffseason {
		t.Fatalf("expected offseason, got %s", state)
	}
}

func TestServiceCurrentSeason(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name string
		date time.Time
		year int
	}{
		{"inside 2025 span", timeutil.Date(2025, time.July, 4), 2025},
		{"gap between seasons falls back to latest", timeutil.Date(2025, time.December, 1), 2026},
		{"inside 2026 span", timeutil.Date(2026, time.June, 1), 2026},
		{"after everything falls back to latest", timeutil.Date(2027, time.June, 1), 2026},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := svc.CurrentSeason("wnba", tc.date)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if def.Year() != tc.year {
				t.Fatalf("expected %d, got %d", tc.year, def.Year())
			}
		})
	}
}

func TestServiceCurrentSeasonUnknownSport(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CurrentSeason("cricket", timeutil.Date(2025, time.July, 4)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
