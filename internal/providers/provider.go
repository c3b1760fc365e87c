package providers

import (
	"context"

	"github.com/pbertain/wnbapuff/internal/domain"
)

// ScoreProvider defines how upstream score data is fetched and normalized.
// The date parameter, when provided, should be a YYYY-MM-DD string indicating
// which day's games to fetch. Providers should interpret an empty date as
// "today" in their configured timezone.
type ScoreProvider interface {
	FetchScores(ctx context.Context, sport string, date string) ([]domain.Game, error)
}

// ScheduleProvider fetches the normalized slate of games for a day.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, sport string, date string) ([]domain.Game, error)
}

// StandingsProvider fetches normalized standings for a season year.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScoreProvider
	ScheduleProvider
	StandingsProvider
}
