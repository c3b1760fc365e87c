package providers

import (
	"context"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/metrics"
)

// meteredProvider records call counts, latencies, and rate limit hits for
// every upstream fetch.
type meteredProvider struct {
	inner    DataProvider
	name     string
	recorder *metrics.Recorder
}

// NewMeteredProvider wraps the given provider with metrics recording. A nil
// recorder returns the inner provider unchanged.
func NewMeteredProvider(inner DataProvider, name string, recorder *metrics.Recorder) DataProvider {
	if recorder == nil {
		return inner
	}
	if name == "" {
		name = "provider"
	}
	return &meteredProvider{inner: inner, name: name, recorder: recorder}
}

func (m *meteredProvider) FetchScores(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	start := time.Now()
	games, err := m.inner.FetchScores(ctx, sport, date)
	m.record(start, err)
	return games, err
}

func (m *meteredProvider) FetchSchedule(ctx context.Context, sport string, date string) ([]domain.Game, error) {
	start := time.Now()
	games, err := m.inner.FetchSchedule(ctx, sport, date)
	m.record(start, err)
	return games, err
}

func (m *meteredProvider) FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	start := time.Now()
	rows, err := m.inner.FetchStandings(ctx, sport, seasonYear)
	m.record(start, err)
	return rows, err
}

func (m *meteredProvider) record(start time.Time, err error) {
	m.recorder.RecordProviderAttempt(m.name, time.Since(start), err)
	if rlErr, ok := AsRateLimitError(err); ok {
		m.recorder.RecordRateLimit(m.name, rlErr.RetryAfter)
	}
}
