package config

const (
	envSportsBlazeBaseURL  = "SPORTSBLAZE_BASE_URL"
	envSportsBlazeAPIKey   = "SPORTSBLAZE_API_KEY"
	envSportsBlazeTimezone = "SPORTSBLAZE_TIMEZONE"

	defaultSportsBlazeBaseURL  = "https://api.sportsblaze.com/v1"
	defaultSportsBlazeTimezone = "America/New_York"
)

// SportsBlazeConfig controls how we talk to the SportsBlaze API.
type SportsBlazeConfig struct {
	BaseURL  string
	APIKey   string
	Timezone string
}

func loadSportsBlaze() SportsBlazeConfig {
	return SportsBlazeConfig{
		BaseURL:  envOrDefault(envSportsBlazeBaseURL, defaultSportsBlazeBaseURL),
		APIKey:   envOrDefault(envSportsBlazeAPIKey, ""),
		Timezone: envOrDefault(envSportsBlazeTimezone, defaultSportsBlazeTimezone),
	}
}
