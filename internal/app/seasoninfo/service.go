// Package seasoninfo exposes the season calendar computations as payloads:
// current phase and week, the next milestone, and the transition state.
package seasoninfo

import (
	"time"

	"github.com/pbertain/wnbapuff/internal/app/seasonctx"
	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/timeutil"
)

const defaultThresholdDays = 14

// Service answers season queries for a sport and date.
type Service struct {
	seasons       *season.Service
	thresholdDays int
	now           func() time.Time
}

// NewService constructs a season info service. thresholdDays bounds how close
// a boundary must be before the transition state flips to ending_soon or
// upcoming.
func NewService(seasons *season.Service, thresholdDays int) *Service {
	if thresholdDays <= 0 {
		thresholdDays = defaultThresholdDays
	}
	return &Service{
		seasons:       seasons,
		thresholdDays: thresholdDays,
		now:           time.Now,
	}
}

// Context returns the season context block for a sport on the given date.
func (s *Service) Context(sport, date string) (domain.SeasonContext, error) {
	return s.ContextFor(sport, date, 0)
}

// ContextFor is Context with an explicit season year; year 0 means the current
// season.
func (s *Service) ContextFor(sport, date string, year int) (domain.SeasonContext, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return domain.SeasonContext{}, err
	}
	ctx, _, err := s.build(sport, year, day)
	return ctx, err
}

// Milestone returns the next phase boundary for a sport after the given date.
func (s *Service) Milestone(sport, date string) (domain.MilestoneResponse, error) {
	return s.MilestoneFor(sport, date, 0)
}

// MilestoneFor is Milestone with an explicit season year.
func (s *Service) MilestoneFor(sport, date string, year int) (domain.MilestoneResponse, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return domain.MilestoneResponse{}, err
	}
	ctx, def, err := s.build(sport, year, day)
	if err != nil {
		return domain.MilestoneResponse{}, err
	}

	resp := domain.MilestoneResponse{Season: ctx}
	if ms, ok := def.NextMilestone(day); ok {
		resp.Label = ms.Label
		resp.Date = timeutil.FormatDate(ms.Date)
		resp.DaysUntil = ms.DaysUntil
		resp.Remaining = true
	}
	return resp, nil
}

// Transition classifies a sport's date against season boundaries.
func (s *Service) Transition(sport, date string) (domain.TransitionResponse, error) {
	return s.TransitionFor(sport, date, 0, 0)
}

// TransitionFor is Transition with an explicit season year and threshold;
// zero values fall back to the current season and the configured threshold.
func (s *Service) TransitionFor(sport, date string, year, thresholdDays int) (domain.TransitionResponse, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return domain.TransitionResponse{}, err
	}
	ctx, def, err := s.build(sport, year, day)
	if err != nil {
		return domain.TransitionResponse{}, err
	}

	threshold := thresholdDays
	if threshold <= 0 {
		threshold = s.thresholdDays
	}
	state, err := s.seasons.TransitionState(sport, def.Year(), day, threshold)
	if err != nil {
		return domain.TransitionResponse{}, err
	}
	return domain.TransitionResponse{
		State:         string(state),
		ThresholdDays: threshold,
		Season:        ctx,
	}, nil
}

func (s *Service) build(sport string, year int, day time.Time) (domain.SeasonContext, season.Definition, error) {
	if year > 0 {
		return seasonctx.BuildYear(s.seasons, sport, year, day)
	}
	return seasonctx.Build(s.seasons, sport, day)
}

func (s *Service) resolveDate(date string) (time.Time, error) {
	if date == "" {
		return s.now().UTC(), nil
	}
	return timeutil.ParseDate(date)
}
