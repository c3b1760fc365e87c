// Package fixture provides a static data provider useful for local testing
// and bootstrapping without upstream credentials.
package fixture

import (
	"context"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
)

// Provider returns deterministic sample data for every sport.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

func intPtr(v int) *int { return &v }

// FetchScores returns a deterministic pair of finished games.
func (p *Provider) FetchScores(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	_ = ctx
	day := p.resolveDate(date)

	return []domain.Game{
		{
			ID:         "fixture-" + sport + "-1",
			Sport:      sport,
			Provider:   "fixture",
			AwayTeam:   "New York Liberty",
			HomeTeam:   "Las Vegas Aces",
			AwayScore:  intPtr(78),
			HomeScore:  intPtr(84),
			Status:     domain.StatusFinal,
			StartTime:  day.Add(19 * time.Hour).Format(time.RFC3339),
			AwayRecord: "18-6",
			HomeRecord: "16-8",
		},
		{
			ID:        "fixture-" + sport + "-2",
			Sport:     sport,
			Provider:  "fixture",
			AwayTeam:  "Minnesota Lynx",
			HomeTeam:  "Seattle Storm",
			AwayScore: intPtr(42),
			HomeScore: intPtr(39),
			Status:    domain.StatusInProgress,
			StartTime: day.Add(21 * time.Hour).Format(time.RFC3339),
		},
	}, nil
}

// FetchSchedule returns a deterministic slate of scheduled games.
func (p *Provider) FetchSchedule(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	_ = ctx
	day := p.resolveDate(date)

	return []domain.Game{
		{
			ID:        "fixture-" + sport + "-3",
			Sport:     sport,
			Provider:  "fixture",
			AwayTeam:  "Indiana Fever",
			HomeTeam:  "Chicago Sky",
			Status:    domain.StatusScheduled,
			StartTime: day.Add(23 * time.Hour).Format(time.RFC3339),
		},
	}, nil
}

// FetchStandings returns a deterministic standings table.
func (p *Provider) FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	_ = ctx
	_ = sport
	_ = seasonYear
	return []domain.StandingsRow{
		{Team: "New York Liberty", Abbreviation: "NYL", Wins: 18, Losses: 6, GamesBehind: 0, Conference: "Eastern"},
		{Team: "Atlanta Dream", Abbreviation: "ATL", Wins: 15, Losses: 9, GamesBehind: 3, Conference: "Eastern"},
		{Team: "Las Vegas Aces", Abbreviation: "LVA", Wins: 16, Losses: 8, GamesBehind: 0, Conference: "Western"},
		{Team: "Minnesota Lynx", Abbreviation: "MIN", Wins: 14, Losses: 10, GamesBehind: 2, Conference: "Western"},
	}, nil
}

func (p *Provider) resolveDate(date string) time.Time {
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			return parsed.UTC()
		}
	}
	return p.now().UTC().Truncate(24 * time.Hour)
}
