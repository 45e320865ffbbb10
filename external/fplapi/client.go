// Package fplapi is a thin read client for the public Fantasy Premier League
// statistics API. Only the fields the optimizer consumes are decoded; unknown
// fields in upstream payloads are ignored.
package fplapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"fpltransfer/internal/platform/cache"
	"fpltransfer/internal/platform/logging"
	"fpltransfer/internal/platform/resilience"
	"fpltransfer/internal/usecase"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "fpl-transfer-optimizer/1.0"
	defaultTimeout   = 10 * time.Second
)

var errTransient = crerr.New("fpl transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	// CacheTTL bounds how long bootstrap and fixture payloads are served from
	// memory before hitting the upstream again. Zero disables caching.
	CacheTTL time.Duration
	Breaker  resilience.CircuitBreakerConfig
	Logger   *logging.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	cache      *cache.Store
	breaker    *resilience.CircuitBreaker
	logger     *logging.Logger
}

var _ usecase.StatsProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	var responseCache *cache.Store
	if cfg.CacheTTL > 0 {
		responseCache = cache.NewStore(cfg.CacheTTL)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.Breaker)
	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		breaker = resilience.NewCircuitBreaker(
			breakerCfg.FailureThreshold,
			breakerCfg.OpenTimeout,
			breakerCfg.HalfOpenMaxReq,
		)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxRetries: maxRetries,
		cache:      responseCache,
		breaker:    breaker,
		logger:     logger,
	}
}

func (c *Client) FetchBootstrap(ctx context.Context) (usecase.ExternalBootstrap, error) {
	if c.cache == nil {
		return c.fetchBootstrap(ctx)
	}

	value, err := c.cache.GetOrLoad(ctx, "bootstrap", func(ctx context.Context) (any, error) {
		return c.fetchBootstrap(ctx)
	})
	if err != nil {
		return usecase.ExternalBootstrap{}, err
	}

	bootstrap, ok := value.(usecase.ExternalBootstrap)
	if !ok {
		return usecase.ExternalBootstrap{}, fmt.Errorf("unexpected cached bootstrap type %T", value)
	}
	return bootstrap, nil
}

func (c *Client) fetchBootstrap(ctx context.Context) (usecase.ExternalBootstrap, error) {
	var payload bootstrapPayload
	if err := c.getJSON(ctx, "/bootstrap-static/", &payload); err != nil {
		return usecase.ExternalBootstrap{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	out := usecase.ExternalBootstrap{
		Events:   make([]usecase.ExternalEvent, 0, len(payload.Events)),
		Clubs:    make([]usecase.ExternalClub, 0, len(payload.Teams)),
		Elements: make([]usecase.ExternalElement, 0, len(payload.Elements)),
	}
	for _, event := range payload.Events {
		out.Events = append(out.Events, usecase.ExternalEvent{
			ID:       event.ID,
			Finished: event.Finished,
		})
	}
	for _, team := range payload.Teams {
		out.Clubs = append(out.Clubs, usecase.ExternalClub{
			ID:   team.ID,
			Name: team.Name,
		})
	}
	for _, el := range payload.Elements {
		out.Elements = append(out.Elements, usecase.ExternalElement{
			ID:          el.ID,
			WebName:     el.WebName,
			FirstName:   el.FirstName,
			SecondName:  el.SecondName,
			ClubID:      el.Team,
			ElementType: el.ElementType,
			NowCost:     el.NowCost,
			TotalPoints: el.TotalPoints,
			Minutes:     el.Minutes,
		})
	}

	return out, nil
}

func (c *Client) FetchLiveStats(ctx context.Context, gameweek int) ([]usecase.ExternalLiveStat, error) {
	if gameweek <= 0 {
		return nil, fmt.Errorf("gameweek must be greater than zero")
	}

	var payload livePayload
	path := fmt.Sprintf("/event/%d/live/", gameweek)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("fetch live stats gameweek=%d: %w", gameweek, err)
	}

	out := make([]usecase.ExternalLiveStat, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		out = append(out, usecase.ExternalLiveStat{
			PlayerID: el.ID,
			Points:   el.Stats.TotalPoints,
			Minutes:  el.Stats.Minutes,
		})
	}

	return out, nil
}

func (c *Client) FetchFixtures(ctx context.Context) ([]usecase.ExternalFixture, error) {
	if c.cache == nil {
		return c.fetchFixtures(ctx)
	}

	value, err := c.cache.GetOrLoad(ctx, "fixtures", func(ctx context.Context) (any, error) {
		return c.fetchFixtures(ctx)
	})
	if err != nil {
		return nil, err
	}

	fixtures, ok := value.([]usecase.ExternalFixture)
	if !ok {
		return nil, fmt.Errorf("unexpected cached fixtures type %T", value)
	}
	return fixtures, nil
}

func (c *Client) fetchFixtures(ctx context.Context) ([]usecase.ExternalFixture, error) {
	var payload []fixturePayload
	if err := c.getJSON(ctx, "/fixtures/", &payload); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	out := make([]usecase.ExternalFixture, 0, len(payload))
	for _, f := range payload {
		out = append(out, usecase.ExternalFixture{
			Event:          f.Event,
			Finished:       f.Finished,
			HomeClubID:     f.TeamH,
			AwayClubID:     f.TeamA,
			HomeDifficulty: f.TeamHDifficulty,
			AwayDifficulty: f.TeamADifficulty,
		})
	}

	return out, nil
}

// getJSON performs a GET with retries on transient failures and decodes the
// body into out. Transient failures feed the circuit breaker; once it opens,
// calls fail fast until the upstream recovers.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return crerr.CombineErrors(usecase.ErrUpstreamUnavailable, crerr.Wrapf(err, "get %s", path))
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying upstream request", "path", path, "attempt", attempt, "error", lastErr)
		}

		err := c.doOnce(ctx, path, out)
		if err == nil {
			if c.breaker != nil {
				c.breaker.RecordSuccess()
			}
			return nil
		}
		lastErr = err
		if !crerr.Is(err, errTransient) {
			return err
		}
		if ctx.Err() != nil {
			lastErr = crerr.CombineErrors(ctx.Err(), lastErr)
			break
		}
	}

	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
	return crerr.CombineErrors(usecase.ErrUpstreamUnavailable, lastErr)
}

func (c *Client) doOnce(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return crerr.Wrapf(err, "build request %s", path)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crerr.Mark(crerr.Wrapf(err, "get %s", path), errTransient)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return crerr.Mark(crerr.Wrapf(err, "read body %s", path), errTransient)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return crerr.Mark(crerr.Newf("get %s: status %d", path, resp.StatusCode), errTransient)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return crerr.Newf("get %s: status %d", path, resp.StatusCode)
	}

	if err := sonic.Unmarshal(body, out); err != nil {
		return crerr.Wrapf(err, "decode %s", path)
	}

	return nil
}

type bootstrapPayload struct {
	Events []struct {
		ID       int  `json:"id"`
		Finished bool `json:"finished"`
	} `json:"events"`
	Teams []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"teams"`
	Elements []struct {
		ID          int64  `json:"id"`
		WebName     string `json:"web_name"`
		FirstName   string `json:"first_name"`
		SecondName  string `json:"second_name"`
		Team        int64  `json:"team"`
		ElementType int    `json:"element_type"`
		NowCost     int    `json:"now_cost"`
		TotalPoints int    `json:"total_points"`
		Minutes     int    `json:"minutes"`
	} `json:"elements"`
}

type livePayload struct {
	Elements []struct {
		ID    int64 `json:"id"`
		Stats struct {
			TotalPoints int `json:"total_points"`
			Minutes     int `json:"minutes"`
		} `json:"stats"`
	} `json:"elements"`
}

type fixturePayload struct {
	Event           *int  `json:"event"`
	Finished        bool  `json:"finished"`
	TeamH           int64 `json:"team_h"`
	TeamA           int64 `json:"team_a"`
	TeamHDifficulty int   `json:"team_h_difficulty"`
	TeamADifficulty int   `json:"team_a_difficulty"`
}
