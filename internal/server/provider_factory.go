package server

import (
	"log/slog"
	"time"

	"github.com/pbertain/wnbapuff/internal/config"
	"github.com/pbertain/wnbapuff/internal/metrics"
	"github.com/pbertain/wnbapuff/internal/providers"
)

const (
	defaultFetchSpacing = 10 * time.Second
	// The legacy RapidAPI free tier allows very few requests per minute.
	rapidAPIFetchSpacing = time.Minute
)

// builtProviders separates the poller's provider from the one serving live
// request fallbacks. Only the polling path is rate limited; a request that
// misses every cache should not stall behind the poller's quota ticker.
type builtProviders struct {
	serving providers.DataProvider
	polling providers.DataProvider
}

// providerFactory assembles the provider with shared wrappers
// (metrics + rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) builtProviders {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(resolveProviderName(cfg), base)
	metered := providers.NewMeteredProvider(base, name, f.metrics)
	limited := providers.NewRateLimitedProvider(metered, fetchSpacing(name), f.logger)
	return builtProviders{
		serving: providers.NewRetryingProvider(metered, f.logger, 0, 0),
		polling: providers.NewRetryingProvider(limited, f.logger, 0, 0),
	}
}

func fetchSpacing(provider string) time.Duration {
	if provider == "rapidapi" {
		return rapidAPIFetchSpacing
	}
	return defaultFetchSpacing
}
