package standings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/store"
	"github.com/pbertain/wnbapuff/internal/teststubs"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

func seasonService(t *testing.T) *season.Service {
	t.Helper()
	def, err := season.NewDefinition("wnba", 2025, "WNBA 2025", []season.Interval{
		{Phase: season.PhaseRegularSeason, Start: timeutil.Date(2025, 5, 16), End: timeutil.Date(2025, 9, 11), WeekNumbered: true},
	})
	if err != nil {
		t.Fatalf("failed to build season: %v", err)
	}
	reg := season.NewRegistry()
	reg.Register(def)
	return season.NewService(reg)
}

func TestGetFetchesAndCachesStandings(t *testing.T) {
	provider := &teststubs.StubProvider{
		Standings: []domain.StandingsRow{{Team: "Lynx", Wins: 18, Losses: 3}},
	}
	memStore := store.NewMemoryStore()

	svc := NewService(provider, memStore, seasonService(t), nil)
	svc.now = func() time.Time { return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC) }

	resp, err := svc.Get(context.Background(), "wnba")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Rows) != 1 || resp.Rows[0].Team != "Lynx" {
		t.Fatalf("unexpected rows %+v", resp.Rows)
	}
	if resp.Season.SeasonYear != 2025 || resp.Season.Phase != "regular-season" {
		t.Fatalf("unexpected season context %+v", resp.Season)
	}

	cached, ok := memStore.Standings("wnba")
	if !ok || len(cached) != 1 {
		t.Fatalf("expected standings cached, got %v", cached)
	}
}

func TestGetServesCacheWhenProviderFails(t *testing.T) {
	provider := &teststubs.StubProvider{
		Standings: []domain.StandingsRow{{Team: "Lynx"}},
	}
	memStore := store.NewMemoryStore()
	svc := NewService(provider, memStore, seasonService(t), nil)
	svc.now = func() time.Time { return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC) }

	if _, err := svc.Get(context.Background(), "wnba"); err != nil {
		t.Fatalf("warmup failed: %v", err)
	}

	provider.Err = errors.New("boom")
	resp, err := svc.Get(context.Background(), "wnba")
	if err != nil {
		t.Fatalf("expected cached fallback, got %v", err)
	}
	if len(resp.Rows) != 1 || resp.Rows[0].Team != "Lynx" {
		t.Fatalf("unexpected rows %+v", resp.Rows)
	}
}

func TestGetErrorsWithoutCacheOrProviderSuccess(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("boom")}
	svc := NewService(provider, store.NewMemoryStore(), seasonService(t), nil)
	svc.now = func() time.Time { return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC) }

	if _, err := svc.Get(context.Background(), "wnba"); err == nil {
		t.Fatal("expected error with empty cache")
	}
}

func TestGetUnknownSport(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{}, store.NewMemoryStore(), seasonService(t), nil)
	_, err := svc.Get(context.Background(), "cricket")
	if !errors.Is(err, season.ErrNotFound) {
		t.Fatalf("expected season not found, got %v", err)
	}
}

func TestGetNilProviderServesCacheOrEmpty(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewService(nil, memStore, seasonService(t), nil)
	svc.now = func() time.Time { return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC) }

	resp, err := svc.Get(context.Background(), "wnba")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Rows) != 0 {
		t.Fatalf("expected empty rows, got %+v", resp.Rows)
	}

	memStore.SetStandings("wnba", []domain.StandingsRow{{Team: "Cached"}})
	resp, err = svc.Get(context.Background(), "wnba")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Rows) != 1 || resp.Rows[0].Team != "Cached" {
		t.Fatalf("expected cached rows, got %+v", resp.Rows)
	}
}
