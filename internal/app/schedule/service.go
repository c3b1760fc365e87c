// Package schedule serves the daily slate straight from the provider; slates
// change rarely enough that the relay does not poll them.
package schedule

import (
	"context"
	"time"

	"github.com/pbertain/wnbapuff/internal/app/seasonctx"
	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/providers"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

// Service answers schedule queries for a sport and date.
type Service struct {
	provider providers.ScheduleProvider
	seasons  *season.Service
	now      func() time.Time
}

// NewService constructs a schedule service.
func NewService(provider providers.ScheduleProvider, seasons *season.Service) *Service {
	return &Service{
		provider: provider,
		seasons:  seasons,
		now:      time.Now,
	}
}

// Get returns the slate for a sport on the given date. An empty date means
// today (UTC).
func (s *Service) Get(ctx context.Context, sport, date string) (domain.ScheduleResponse, error) {
	day := s.now().UTC()
	if date != "" {
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			return domain.ScheduleResponse{}, err
		}
		day = parsed
	}
	dateKey := timeutil.FormatDate(day)

	games := []domain.Game{}
	if s.provider != nil {
		fetched, err := s.provider.FetchSchedule(ctx, sport, dateKey)
		if err != nil {
			return domain.ScheduleResponse{}, err
		}
		games = fetched
	}

	seasonCtx, _, err := seasonctx.Build(s.seasons, sport, day)
	if err != nil {
		return domain.ScheduleResponse{}, err
	}
	return domain.ScheduleResponse{Date: dateKey, Games: games, Season: seasonCtx}, nil
}
