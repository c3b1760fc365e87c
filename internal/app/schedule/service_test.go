package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/teststubs"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

func seasonService(t *testing.T) *season.Service {
	t.Helper()
	def, err := season.NewDefinition("wnba", 2025, "WNBA 2025", []season.Interval{
		{Phase: season.PhaseRegularSeason, Start: timeutil.Date(2025, 5, 16), End: timeutil.Date(2025, 9, 11), WeekNumbered: true},
		{Phase: season.PhasePlayoffs, Start: timeutil.Date(2025, 9, 14), End: timeutil.Date(2025, 10, 19), WeekNumbered: true},
	})
	if err != nil {
		t.Fatalf("failed to build season: %v", err)
	}
	reg := season.NewRegistry()
	reg.Register(def)
	return season.NewService(reg)
}

func TestGetFetchesSlateWithSeasonContext(t *testing.T) {
	provider := &teststubs.StubProvider{
		Schedule: []domain.Game{{ID: "g1", Status: domain.StatusScheduled}},
	}
	svc := NewService(provider, seasonService(t))

	resp, err := svc.Get(context.Background(), "wnba", "2025-07-09")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Date != "2025-07-09" || len(resp.Games) != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Season.Phase != "regular-season" {
		t.Fatalf("unexpected season context %+v", resp.Season)
	}
	if provider.Calls.Load() != 1 {
		t.Fatalf("expected 1 fetch, got %d", provider.Calls.Load())
	}
}

func TestGetDefaultsToToday(t *testing.T) {
	provider := &teststubs.StubProvider{Schedule: []domain.Game{}}
	svc := NewService(provider, seasonService(t))
	svc.now = func() time.Time { return time.Date(2025, 7, 9, 15, 0, 0, 0, time.UTC) }

	resp, err := svc.Get(context.Background(), "wnba", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Date != "2025-07-09" {
		t.Fatalf("expected today's date, got %s", resp.Date)
	}
}

func TestGetSurfacesProviderError(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("boom")}
	svc := NewService(provider, seasonService(t))

	if _, err := svc.Get(context.Background(), "wnba", "2025-07-09"); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestGetRejectsBadDate(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{}, seasonService(t))
	if _, err := svc.Get(context.Background(), "wnba", "July 9"); err == nil {
		t.Fatal("expected invalid date error")
	}
}

func TestGetNilProviderServesEmptySlate(t *testing.T) {
	svc := NewService(nil, seasonService(t))
	resp, err := svc.Get(context.Background(), "wnba", "2025-07-09")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Games) != 0 {
		t.Fatalf("expected empty slate, got %+v", resp.Games)
	}
}
