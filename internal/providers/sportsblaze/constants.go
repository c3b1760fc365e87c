package sportsblaze

import "time"

const (
	providerName       = "sportsblaze"
	defaultBaseURL     = "https://api.sportsblaze.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"
)
