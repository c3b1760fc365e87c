package server

import (
	"context"
	"testing"
	"time"

	"github.com/pbertain/wnbapuff/internal/config"
	"github.com/pbertain/wnbapuff/internal/metrics"
)

func TestProviderFactoryBuildsBothProviders(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	provs := factory.build(config.Config{Provider: "fixture"})
	if provs.serving == nil || provs.polling == nil {
		t.Fatalf("expected serving and polling providers")
	}

	// The serving path is not rate limited, so a fetch returns immediately.
	games, err := provs.serving.FetchScores(context.Background(), "wnba", "2025-07-09")
	if err != nil || len(games) == 0 {
		t.Fatalf("expected fixture games through serving chain, got %d games err=%v", len(games), err)
	}
}

func TestProviderFactoryPollingProviderHonorsContext(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	provs := factory.build(config.Config{Provider: "fixture"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := provs.polling.FetchScores(ctx, "wnba", "2025-07-09"); err == nil {
		t.Fatalf("expected canceled context to abort rate-limited fetch")
	}
}

func TestProviderFactoryRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	provs := factory.build(config.Config{Provider: "fixture"})

	if _, err := provs.serving.FetchScores(context.Background(), "wnba", "2025-07-09"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.ProviderCalls("fixture"); got != 1 {
		t.Fatalf("expected 1 provider call recorded, got %d", got)
	}
}

func TestFetchSpacing(t *testing.T) {
	if got := fetchSpacing("rapidapi"); got != time.Minute {
		t.Fatalf("expected rapidapi spacing of 1m, got %s", got)
	}
	if got := fetchSpacing("sportsblaze"); got != defaultFetchSpacing {
		t.Fatalf("expected default spacing, got %s", got)
	}
}
