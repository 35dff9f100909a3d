// Package cricapi is a small client for the CricAPI live cricket data
// service, covering the two endpoints the assistant needs: current matches
// and per-match scorecards.
package cricapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.cricapi.com"

// Config configures the CricAPI client.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL overrides the API host, mainly for tests.
	BaseURL string

	// Timeout for API requests (default: 5s).
	Timeout time.Duration

	// Logger is optional; nil disables logging.
	Logger *zap.Logger
}

// Client calls the CricAPI HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a CricAPI client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("CricAPI key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}, nil
}

// Inning is one innings line of a match score.
type Inning struct {
	Inning  string  `json:"inning"`
	Runs    int     `json:"r"`
	Wickets int     `json:"w"`
	Overs   float64 `json:"o"`
}

// Match summarizes one current or upcoming match.
type Match struct {
	Team1     string
	Team2     string
	Venue     string
	Status    string
	StartTime string
	ID        string
	Score     []Inning
}

// Upcoming reports whether the match has not started yet.
func (m Match) Upcoming() bool {
	switch strings.ToLower(m.Status) {
	case "not started", "scheduled", "upcoming":
		return true
	}
	return false
}

type envelope struct {
	Status string          `json:"status"`
	Reason string          `json:"reason"`
	Data   json.RawMessage `json:"data"`
}

type rawMatch struct {
	ID          string `json:"id"`
	Venue       string `json:"venue"`
	Status      string `json:"status"`
	DateTimeGMT string `json:"dateTimeGMT"`
	TeamInfo    []struct {
		Name string `json:"name"`
	} `json:"teamInfo"`
	Score []Inning `json:"score"`
}

// CurrentMatches fetches the list of current and upcoming matches.
func (c *Client) CurrentMatches(ctx context.Context) ([]Match, error) {
	data, err := c.get(ctx, "/v1/currentMatches", url.Values{"offset": {"0"}})
	if err != nil {
		return nil, err
	}

	var raw []rawMatch
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding matches: %w", err)
	}

	matches := make([]Match, 0, len(raw))
	for _, rm := range raw {
		m := Match{
			Team1:     "N/A",
			Team2:     "N/A",
			Venue:     orNA(rm.Venue),
			Status:    orNA(rm.Status),
			StartTime: orNA(rm.DateTimeGMT),
			ID:        orNA(rm.ID),
			Score:     rm.Score,
		}
		if len(rm.TeamInfo) > 0 {
			m.Team1 = orNA(rm.TeamInfo[0].Name)
		}
		if len(rm.TeamInfo) > 1 {
			m.Team2 = orNA(rm.TeamInfo[1].Name)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// NamedPlayer carries the player name inside scorecard entries.
type NamedPlayer struct {
	Name string `json:"name"`
}

// BattingEntry is one batsman's line in an innings.
type BattingEntry struct {
	Batsman NamedPlayer `json:"batsman"`
	Runs    int         `json:"r"`
}

// BowlingEntry is one bowler's line in an innings.
type BowlingEntry struct {
	Bowler  NamedPlayer `json:"bowler"`
	Wickets int         `json:"w"`
}

// InningsCard is the detailed card for one innings.
type InningsCard struct {
	Batting []BattingEntry `json:"batting"`
	Bowling []BowlingEntry `json:"bowling"`
}

// Scorecard is the full card for one match.
type Scorecard struct {
	Name    string        `json:"name"`
	Status  string        `json:"status"`
	Teams   []string      `json:"teams"`
	Innings []InningsCard `json:"scorecard"`
}

// Scorecard fetches the detailed scorecard for a match.
func (c *Client) Scorecard(ctx context.Context, matchID string) (*Scorecard, error) {
	if matchID == "" {
		return nil, errors.New("match id is required")
	}

	data, err := c.get(ctx, "/v1/match_scorecard", url.Values{"id": {matchID}})
	if err != nil {
		return nil, err
	}

	var card Scorecard
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, fmt.Errorf("decoding scorecard: %w", err)
	}
	return &card, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	c.logger.Debug("calling CricAPI", zap.String("path", path))
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling CricAPI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CricAPI returned HTTP %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if env.Status != "success" {
		return nil, fmt.Errorf("CricAPI error: %s", env.Reason)
	}
	return env.Data, nil
}

// Scheduled filters matches down to those that have not started.
func Scheduled(matches []Match) []Match {
	var out []Match
	for _, m := range matches {
		if m.Upcoming() {
			out = append(out, m)
		}
	}
	return out
}

// TodaysMatches filters matches starting on the given day (2006-01-02).
func TodaysMatches(matches []Match, day string) []Match {
	var out []Match
	for _, m := range matches {
		if strings.HasPrefix(m.StartTime, day) {
			out = append(out, m)
		}
	}
	return out
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
