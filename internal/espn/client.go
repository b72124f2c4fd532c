package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/palmetto/sandstorm/internal/model"
)

const (
	// BaseURL serves the team, schedule, scoreboard, and summary endpoints.
	BaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	// StandingsBaseURL is a different ESPN host that serves standings.
	StandingsBaseURL = "https://site.web.api.espn.com/apis/v2/sports"

	// ESPN throttles default Go client fingerprints; a browser UA works.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

	requestTimeout = 15 * time.Second
)

// SportPaths maps a sport tag to its ESPN API path segment.
var SportPaths = map[model.Sport]string{
	model.SportMBB:      "basketball/mens-college-basketball",
	model.SportWBB:      "basketball/womens-college-basketball",
	model.SportBaseball: "baseball/college-baseball",
}

// Client handles ESPN API requests.
type Client struct {
	baseURL      string
	standingsURL string
	httpClient   *http.Client
}

// New creates an ESPN API client. Empty URLs fall back to the live hosts.
func New(baseURL, standingsURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if standingsURL == "" {
		standingsURL = StandingsBaseURL
	}
	return &Client{
		baseURL:      baseURL,
		standingsURL: standingsURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

// FetchTeam fetches the team endpoint for a team id.
func (c *Client) FetchTeam(ctx context.Context, sportPath, teamID string) (TeamResponse, error) {
	var resp TeamResponse
	url := fmt.Sprintf("%s/%s/teams/%s", c.baseURL, sportPath, teamID)
	err := c.fetch(ctx, url, &resp)
	return resp, err
}

// FetchSchedule fetches the full season schedule for a team.
func (c *Client) FetchSchedule(ctx context.Context, sportPath, teamID string) (ScheduleResponse, error) {
	var resp ScheduleResponse
	url := fmt.Sprintf("%s/%s/teams/%s/schedule", c.baseURL, sportPath, teamID)
	err := c.fetch(ctx, url, &resp)
	return resp, err
}

// FetchScoreboard fetches the live scoreboard for a sport.
func (c *Client) FetchScoreboard(ctx context.Context, sportPath string) (ScoreboardResponse, error) {
	var resp ScoreboardResponse
	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, sportPath)
	err := c.fetch(ctx, url, &resp)
	return resp, err
}

// FetchSummary fetches the detailed summary (linescore, box totals) for an
// event.
func (c *Client) FetchSummary(ctx context.Context, sportPath, eventID string) (SummaryResponse, error) {
	var resp SummaryResponse
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, sportPath, eventID)
	err := c.fetch(ctx, url, &resp)
	return resp, err
}

// FetchStandings fetches the conference-level standings tree for a sport.
func (c *Client) FetchStandings(ctx context.Context, sportPath string) (StandingsResponse, error) {
	var resp StandingsResponse
	url := fmt.Sprintf("%s/%s/standings?level=3", c.standingsURL, sportPath)
	err := c.fetch(ctx, url, &resp)
	return resp, err
}

func (c *Client) fetch(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("ESPN returned %d for %s: %s", resp.StatusCode, url, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return nil
}
