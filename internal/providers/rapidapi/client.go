package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pbertain/wnbapuff/internal/domain"
	"github.com/pbertain/wnbapuff/internal/providers"
)

// Config controls how the legacy RapidAPI client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Host       string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches WNBA scoreboards and standings from the legacy RapidAPI
// upstream. It only serves the WNBA; other sports fail fast so callers can
// fall back to another provider.
type Client struct {
	baseURL    string
	apiKey     string
	host       string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a RapidAPI client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := cfg.Host
	if host == "" {
		host = defaultHost
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	tz := cfg.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     cfg.APIKey,
		host:       host,
		httpClient: httpClient,
		now:        time.Now,
		loc:        loc,
	}
}

// FetchScores retrieves the WNBA scoreboard for the given date.
func (c *Client) FetchScores(ctx context.Context, sport, date string) ([]domain.Game, error) {
	return c.fetchScoreboard(ctx, sport, date, "/wnbascoreboard")
}

// FetchSchedule retrieves the WNBA slate for the given date. The legacy
// upstream serves schedule and scoreboard from the same events feed.
func (c *Client) FetchSchedule(ctx context.Context, sport, date string) ([]domain.Game, error) {
	return c.fetchScoreboard(ctx, sport, date, "/wnbaschedule")
}

// FetchStandings retrieves WNBA standings for a season year.
func (c *Client) FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	if !supports(sport) {
		return nil, fmt.Errorf("rapidapi: sport %q: %w", sport, providers.ErrProviderUnavailable)
	}

	req, err := c.newRequest(ctx, "/wnbastandings")
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("year", strconv.Itoa(seasonYear))
	req.URL.RawQuery = q.Encode()

	var payload standingsContainer
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return mapStandings(payload), nil
}

func (c *Client) fetchScoreboard(ctx context.Context, sport, date, path string) ([]domain.Game, error) {
	if !supports(sport) {
		return nil, fmt.Errorf("rapidapi: sport %q: %w", sport, providers.ErrProviderUnavailable)
	}

	day, err := c.resolveDate(date)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, path)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("year", day.Format("2006"))
	q.Set("month", day.Format("01"))
	q.Set("day", day.Format("02"))
	req.URL.RawQuery = q.Encode()

	var payload scoreboardResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		games = append(games, mapEvent(ev))
	}
	return games, nil
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Remaining:  resp.Header.Get("X-RateLimit-Requests-Remaining"),
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("rapidapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) resolveDate(date string) (time.Time, error) {
	if date == "" {
		return c.now().In(c.loc), nil
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("rapidapi: invalid date %q: %w", date, err)
	}
	return day, nil
}

func supports(sport string) bool {
	return strings.EqualFold(strings.TrimSpace(sport), supportedSport)
}
