package rapidapi

import "time"

const (
	providerName       = "rapidapi"
	defaultBaseURL     = "https://wnba-api.p.rapidapi.com"
	defaultHost        = "wnba-api.p.rapidapi.com"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"

	// The legacy upstream only carries WNBA data.
	supportedSport = "wnba"
)
