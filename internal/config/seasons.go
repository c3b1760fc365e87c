package config

// SeasonsConfig controls the season calendar and transition classification.
type SeasonsConfig struct {
	// FilePath points at the seasons YAML file. Empty means the embedded
	// calendar shipped with the binary.
	FilePath string
	// TransitionThresholdDays bounds how close a season boundary must be
	// before a date classifies as ending_soon or upcoming.
	TransitionThresholdDays int
}

func loadSeasons() SeasonsConfig {
	return SeasonsConfig{
		FilePath:                envOrDefault(envSeasonsFile, ""),
		TransitionThresholdDays: intEnvOrDefault(envTransitionThreshold, defaultTransitionThreshold),
	}
}
