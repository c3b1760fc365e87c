package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/pbertain/wnbapuff/internal/domain"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Games     []domain.Game
	Schedule  []domain.Game
	Standings []domain.StandingsRow
	Err       error
	Calls     atomic.Int32
	Notify    chan struct{}
}

func (s *StubProvider) touch() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
}

// FetchScores returns configured games and error while tracking calls.
func (s *StubProvider) FetchScores(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	_ = ctx
	_ = sport
	_ = date
	s.touch()
	return s.Games, s.Err
}

// FetchSchedule returns the configured slate while tracking calls.
func (s *StubProvider) FetchSchedule(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	_ = ctx
	_ = sport
	_ = date
	s.touch()
	if s.Schedule != nil {
		return s.Schedule, s.Err
	}
	return s.Games, s.Err
}

// FetchStandings returns configured standings while tracking calls.
func (s *StubProvider) FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	_ = ctx
	_ = sport
	_ = seasonYear
	s.touch()
	return s.Standings, s.Err
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Written map[string]domain.ScoresResponse // keyed by sport
	Err     error
}

// WriteScoresSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteScoresSnapshot(sport string, snapshot domain.ScoresResponse) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]domain.ScoresResponse)
	}
	w.Written[sport] = snapshot
	return nil
}
