package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	maxAttempts int
	initial     time.Duration
}

// NewRetryingProvider wraps the given provider with exponential-backoff
// retries. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		initial:     initial,
	}
}

func (r *retryingProvider) FetchScores(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	return retryFetch(ctx, r, "scores", func() ([]domain.Game, error) {
		return r.inner.FetchScores(ctx, sport, date)
	})
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	return retryFetch(ctx, r, "schedule", func() ([]domain.Game, error) {
		return r.inner.FetchSchedule(ctx, sport, date)
	})
}

func (r *retryingProvider) FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	return retryFetch(ctx, r, "standings", func() ([]domain.StandingsRow, error) {
		return r.inner.FetchStandings(ctx, sport, seasonYear)
	})
}

func retryFetch[T any](ctx context.Context, r *retryingProvider, what string, fn func() (T, error)) (T, error) {
	var result T
	attempt := 0

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial
	policy.RandomizationFactor = 0

	operation := func() error {
		attempt++
		out, err := fn()
		if err != nil {
			if attempt < r.maxAttempts {
				r.logWarn(ctx, "provider fetch retry", "fetch", what, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
			}
			return err
		}
		result = out
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx))
	if err != nil {
		r.logWarn(ctx, "provider fetch failed", "fetch", what, "attempts", attempt, "err", err)
		var zero T
		return zero, err
	}
	return result, nil
}

// Close releases resources held by the wrapped provider, if any.
func (r *retryingProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
