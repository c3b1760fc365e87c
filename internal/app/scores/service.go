// Package scores serves scoreboard payloads from the poller's cache, falling
// back to disk snapshots and finally the live provider.
package scores

import (
	"context"
	"log/slog"
	"time"

	"github.com/pbertain/wnbapuff/internal/app/seasonctx"
	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/providers"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/snapshots"
	"github.com/pbertain/wnbapuff/internal/store"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// Service answers scoreboard queries for a sport and date.
type Service struct {
	store     *store.MemoryStore
	snapshots snapshots.Store
	provider  providers.ScoreProvider
	seasons   *season.Service
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a scores service. snapshots and provider may be nil;
// lookups then serve only what the poller has cached.
func NewService(memStore *store.MemoryStore, snapStore snapshots.Store, provider providers.ScoreProvider, seasons *season.Service, logger *slog.Logger) *Service {
	return &Service{
		store:     memStore,
		snapshots: snapStore,
		provider:  provider,
		seasons:   seasons,
		logger:    logger,
		now:       time.Now,
	}
}

// Get returns the scoreboard for a sport on the given date. An empty date
// means today (UTC).
func (s *Service) Get(ctx context.Context, sport, date string) (domain.ScoresResponse, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return domain.ScoresResponse{}, err
	}
	dateKey := timeutil.FormatDate(day)

	games, err := s.lookup(ctx, sport, dateKey)
	if err != nil {
		return domain.ScoresResponse{}, err
	}

	seasonCtx, _, err := seasonctx.Build(s.seasons, sport, day)
	if err != nil {
		return domain.ScoresResponse{}, err
	}
	return domain.NewScoresResponse(dateKey, games, seasonCtx), nil
}

func (s *Service) lookup(ctx context.Context, sport, dateKey string) ([]domain.Game, error) {
	if s.store != nil {
		if board, ok := s.store.Scoreboard(sport); ok && board.Date == dateKey {
			return board.Games, nil
		}
	}

	if s.snapshots != nil {
		if snap, err := s.snapshots.LoadScores(sport, dateKey); err == nil {
			return snap.Games, nil
		}
	}

	if s.provider != nil {
		games, err := s.provider.FetchScores(ctx, sport, dateKey)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("scores fetch failed", "sport", sport, "date", dateKey, "error", err)
			}
			return nil, err
		}
		return games, nil
	}

	return []domain.Game{}, nil
}

// Game returns a single cached game by ID.
func (s *Service) Game(sport, id string) (domain.Game, bool) {
	if s.store == nil {
		return domain.Game{}, false
	}
	return s.store.GetGame(sport, id)
}

func (s *Service) resolveDate(date string) (time.Time, error) {
	if date == "" {
		return s.now().UTC(), nil
	}
	return timeutil.ParseDate(date)
}
