package sportsblaze

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

// Config controls how the SportsBlaze client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches scores, schedules, and standings from the SportsBlaze API
// and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs a SportsBlaze client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchScores retrieves the scoreboard for a sport on the given date.
// An empty date means today in the client's timezone.
func (c *Client) FetchScores(ctx context.Context, sport, date string) ([]domain.Game, error) {
	return c.fetchGames(ctx, sport, date, "scores")
}

// FetchSchedule retrieves the slate of games for a sport on the given date.
func (c *Client) FetchSchedule(ctx context.Context, sport, date string) ([]domain.Game, error) {
	return c.fetchGames(ctx, sport, date, "schedule")
}

// FetchStandings retrieves the league standings for a sport and season year.
func (c *Client) FetchStandings(ctx context.Context, sport string, seasonYear int) ([]domain.StandingsRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(sport, "standings"), nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("season", strconv.Itoa(seasonYear))
	req.URL.RawQuery = q.Encode()
	c.authorize(req)

	var payload standingsResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return mapStandings(payload), nil
}

func (c *Client) fetchGames(ctx context.Context, sport, date, resource string) ([]domain.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(sport, resource), nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("date", c.resolveDate(date))
	req.URL.RawQuery = q.Encode()
	c.authorize(req)

	var payload gamesResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		games = append(games, mapGame(sport, g))
	}
	return games, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &providers.RateLimitError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sportsblaze: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) endpoint(sport, resource string) string {
	return c.baseURL + "/" + strings.ToLower(sport) + "/" + resource
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) resolveDate(date string) string {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err == nil {
			return date
		}
	}
	return c.now().In(c.loc).Format("2006-01-02")
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
