package sportsblaze

import (
	"testing"

	"github.com/pbertain/wnbapuff/internal/domain"
)

func TestMapGameTransformsFields(t *testing.T) {
	home := 55
	away := 50
	resp := gameResponse{
		ID:        "42",
		Date:      "2025-07-09",
		StartTime: "2025-07-09T19:00:00-04:00",
		Status:    "In Progress",
		HomeTeam:  teamResponse{Name: "Home Squad", Abbreviation: "HOM", Record: "10-2"},
		AwayTeam:  teamResponse{Name: "Away Squad", Abbreviation: "AWY", Record: "8-4"},
		HomeScore: &home,
		AwayScore: &away,
		Season:    2025,
	}

	game := mapGame("wnba", resp)

	if game.ID != "sportsblaze-wnba-42" || game.Provider != "sportsblaze" {
		t.Fatalf("unexpected id/provider: %+v", game)
	}
	if game.Status != domain.StatusInProgress {
		t.Fatalf("expected in progress status, got %s", game.Status)
	}
	if game.HomeScore == nil || *game.HomeScore != 55 || game.AwayScore == nil || *game.AwayScore != 50 {
		t.Fatalf("unexpected scores %+v", game)
	}
	if game.HomeTeam != "Home Squad" || game.AwayTeam != "Away Squad" {
		t.Fatalf("unexpected teams home=%s away=%s", game.HomeTeam, game.AwayTeam)
	}
	if game.HomeRecord != "10-2" || game.AwayRecord != "8-4" {
		t.Fatalf("unexpected records %+v", game)
	}
	if game.StartTime != "2025-07-09T19:00:00-04:00" {
		t.Fatalf("unexpected start time %s", game.StartTime)
	}
}

func TestMapGameKeepsNilScoresForScheduledGames(t *testing.T) {
	resp := gameResponse{
		ID:       "7",
		Status:   "Scheduled",
		HomeTeam: teamResponse{Name: "Home"},
		AwayTeam: teamResponse{Name: "Away"},
	}

	game := mapGame("nba", resp)
	if game.HomeScore != nil || game.AwayScore != nil {
		t.Fatalf("expected nil scores, got %+v", game)
	}
	if game.Status != domain.StatusScheduled {
		t.Fatalf("expected scheduled status, got %s", game.Status)
	}
}

func TestMapStatusCoversVariants(t *testing.T) {
	cases := map[string]domain.GameStatus{
		"Final":         domain.StatusFinal,
		"Ended":         domain.StatusFinal,
		"In Progress":   domain.StatusInProgress,
		"Halftime":      domain.StatusInProgress,
		"End of Period": domain.StatusInProgress,
		"Postponed":     domain.StatusPostponed,
		"Canceled":      domain.StatusCanceled,
		"Cancelled":     domain.StatusCanceled,
		"Unknown":       domain.StatusScheduled,
	}

	for input, expected := range cases {
		if got := mapStatus(input); got != expected {
			t.Fatalf("status %s expected %s, got %s", input, expected, got)
		}
	}
}

func TestMapStandingsPreservesOrder(t *testing.T) {
	resp := standingsResponse{
		Season: 2025,
		Standings: []standingsEntryRow{
			{Team: "First", Wins: 20, Losses: 2, Conference: "Eastern"},
			{Team: "Second", Wins: 18, Losses: 4, GamesBehind: 2, Conference: "Eastern"},
		},
	}

	rows := mapStandings(resp)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Team != "First" || rows[1].Team != "Second" {
		t.Fatalf("unexpected order %+v", rows)
	}
	if rows[1].GamesBehind != 2 {
		t.Fatalf("unexpected games behind %v", rows[1].GamesBehind)
	}
}
