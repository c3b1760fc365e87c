package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval
// between upstream calls. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the given interval.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context, what string) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String("provider", "rate-limited"), slog.String("fetch", what))
		}
		return ctx.Err()
	case <-p.ticker.C:
	}
	return nil
}

func (p *rateLimitedProvider) FetchScores(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	if err := p.wait(ctx, "scores"); err != nil {
		return nil, err
	}
	return p.next.FetchScores(ctx, sport, date)
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	if err := p.wait(ctx, "schedule"); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx, sport, date)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	if err := p.wait(ctx, "standings"); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx, sport, seasonYear)
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
