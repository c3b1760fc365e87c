// Package standings serves league standings for the sport's current season,
// with a cache that covers upstream outages.
package standings

import (
	"context"
	"log/slog"
	"time"

	"github.com/pbertain/wnbapuff/internal/app/seasonctx"
	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/providers"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/store"
)

// Service answers standings queries for a sport.
type Service struct {
	provider providers.StandingsProvider
	store    *store.MemoryStore
	seasons  *season.Service
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a standings service.
func NewService(provider providers.StandingsProvider, memStore *store.MemoryStore, seasons *season.Service, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		store:    memStore,
		seasons:  seasons,
		logger:   logger,
		now:      time.Now,
	}
}

// Get returns standings for the sport's current season. Fresh rows replace the
// cache; on provider failure the last cached rows are served instead.
func (s *Service) Get(ctx context.Context, sport string) (domain.StandingsResponse, error) {
	day := s.now().UTC()
	seasonCtx, def, err := seasonctx.Build(s.seasons, sport, day)
	if err != nil {
		return domain.StandingsResponse{}, err
	}

	rows, err := s.lookup(ctx, sport, def.Year())
	if err != nil {
		return domain.StandingsResponse{}, err
	}

	return domain.StandingsResponse{
		Rows:   rows,
		Group:  "league",
		Season: seasonCtx,
	}, nil
}

func (s *Service) lookup(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	if s.provider == nil {
		if rows, ok := s.cached(sport); ok {
			return rows, nil
		}
		return []domain.StandingsRow{}, nil
	}

	rows, err := s.provider.FetchStandings(ctx, sport, seasonYear)
	if err != nil {
		if cached, ok := s.cached(sport); ok {
			if s.logger != nil {
				s.logger.Warn("standings fetch failed, serving cache", "sport", sport, "error", err)
			}
			return cached, nil
		}
		return nil, err
	}

	if s.store != nil {
		s.store.SetStandings(sport, rows)
	}
	return rows, nil
}

func (s *Service) cached(sport string) ([]domain.StandingsRow, bool) {
	if s.store == nil {
		return nil, false
	}
	return s.store.Standings(sport)
}
