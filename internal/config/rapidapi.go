package config

const (
	envRapidAPIBaseURL  = "RAPIDAPI_BASE_URL"
	envRapidAPIKey      = "RAPIDAPI_KEY"
	envRapidAPIHost     = "RAPIDAPI_HOST"
	envRapidAPITimezone = "RAPIDAPI_TIMEZONE"
)

// RapidAPIConfig controls the legacy RapidAPI WNBA upstream. It is only used
// when PROVIDER=rapidapi; the empty BaseURL/Host fall back to the client's
// built-in defaults.
type RapidAPIConfig struct {
	BaseURL  string
	APIKey   string
	Host     string
	Timezone string
}

func loadRapidAPI() RapidAPIConfig {
	return RapidAPIConfig{
		BaseURL:  envOrDefault(envRapidAPIBaseURL, ""),
		APIKey:   envOrDefault(envRapidAPIKey, ""),
		Host:     envOrDefault(envRapidAPIHost, ""),
		Timezone: envOrDefault(envRapidAPITimezone, ""),
	}
}
