package server

import (
	"log/slog"
	"strings"

	"github.com/pbertain/wnbapuff/internal/config"
	"github.com/pbertain/wnbapuff/internal/providers"
	"github.com/pbertain/wnbapuff/internal/providers/fixture"
	"github.com/pbertain/wnbapuff/internal/providers/rapidapi"
	"github.com/pbertain/wnbapuff/internal/providers/sportsblaze"
)

// resolveProviderName picks the upstream when PROVIDER is not set explicitly:
// a SportsBlaze key selects sportsblaze, a legacy RapidAPI key selects
// rapidapi, and with no keys configured the fixture data serves.
func resolveProviderName(cfg config.Config) string {
	if cfg.Provider != "" {
		return strings.ToLower(cfg.Provider)
	}
	switch {
	case cfg.SportsBlaze.APIKey != "":
		return "sportsblaze"
	case cfg.RapidAPI.APIKey != "":
		return "rapidapi"
	default:
		return "fixture"
	}
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch resolveProviderName(cfg) {
	case "sportsblaze":
		return sportsblaze.NewClient(sportsblaze.Config{
			BaseURL:  cfg.SportsBlaze.BaseURL,
			APIKey:   cfg.SportsBlaze.APIKey,
			Timezone: cfg.SportsBlaze.Timezone,
		})
	case "rapidapi":
		return rapidapi.NewClient(rapidapi.Config{
			BaseURL:  cfg.RapidAPI.BaseURL,
			APIKey:   cfg.RapidAPI.APIKey,
			Host:     cfg.RapidAPI.Host,
			Timezone: cfg.RapidAPI.Timezone,
		})
	case "fixture":
		if cfg.Provider == "" && logger != nil {
			logger.Info("no upstream API key configured, serving fixture data")
		}
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
