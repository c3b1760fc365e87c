package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Sports       []string
	AdminToken   string
	Seasons      SeasonsConfig
	SportsBlaze  SportsBlazeConfig
	RapidAPI     RapidAPIConfig
	Snapshots    SnapshotsConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Sports:       listEnvOrDefault(envSports, defaultSports),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Seasons:      loadSeasons(),
		SportsBlaze:  loadSportsBlaze(),
		RapidAPI:     loadRapidAPI(),
		Snapshots:    loadSnapshots(),
		Metrics:      loadMetrics(),
	}
}
