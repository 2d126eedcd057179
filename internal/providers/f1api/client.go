package f1api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/specs"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/teams"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
)

// Config controls how the client reaches the upstream F1 API.
type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	Timeout        time.Duration
	CareerCacheTTL time.Duration
}

// Client fetches season, race, team and spec data from the F1 API and maps it to domain models.
// Every call is a single attempt; retries are the caller's decision.
type Client struct {
	baseURL    string
	httpClient httpDoer
	careers    *cache.Cache
}

// NewClient constructs an F1 API client with the provided configuration.
func NewClient(cfg Config) *Client {
	ttl := resolveCacheTTL(cfg.CareerCacheTTL)
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		careers:    cache.New(ttl, ttl*2),
	}
}

// FetchRaces returns the season calendar ordered by round.
func (c *Client) FetchRaces(ctx context.Context, season int) ([]races.Race, error) {
	var payload []raceResponse
	if err := c.getJSON(ctx, providers.EndpointRaces, fmt.Sprintf("/api/season/%d/races", season), &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, shapeError(providers.EndpointRaces, "expected a list of races")
	}
	return mapRaces(payload), nil
}

// FetchRaceResults returns the classification for one race.
func (c *Client) FetchRaceResults(ctx context.Context, season, round int) (races.ResultSet, error) {
	var payload resultsResponse
	if err := c.getJSON(ctx, providers.EndpointResults, fmt.Sprintf("/api/race/%d/%d/results", season, round), &payload); err != nil {
		return races.ResultSet{}, err
	}
	if payload.Results == nil {
		return races.ResultSet{}, shapeError(providers.EndpointResults, "missing results")
	}
	return mapResults(payload), nil
}

// FetchTyreStints returns every driver's stints for one race.
func (c *Client) FetchTyreStints(ctx context.Context, season, round int) ([]races.TyreStint, error) {
	var payload []stintResponse
	if err := c.getJSON(ctx, providers.EndpointTyres, fmt.Sprintf("/api/race/%d/%d/tyres", season, round), &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, shapeError(providers.EndpointTyres, "expected a list of stints")
	}
	return mapStints(payload), nil
}

// FetchTeamStats returns per-team season aggregates.
func (c *Client) FetchTeamStats(ctx context.Context, season int) ([]teams.Team, error) {
	var payload []teamResponse
	if err := c.getJSON(ctx, providers.EndpointTeams, fmt.Sprintf("/api/season/%d/team-stats", season), &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, shapeError(providers.EndpointTeams, "expected a list of teams")
	}
	return mapTeams(payload), nil
}

// FetchDriverCareer returns a driver's career totals. Successful lookups are cached
// for the lifetime of the client (bounded by the configured TTL).
func (c *Client) FetchDriverCareer(ctx context.Context, code string) (teams.CareerStats, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if cached, ok := c.careers.Get(key); ok {
		if stats, ok := cached.(teams.CareerStats); ok {
			return stats, nil
		}
	}

	var payload careerResponse
	if err := c.getJSON(ctx, providers.EndpointCareer, "/api/driver/"+url.PathEscape(key)+"/career", &payload); err != nil {
		return teams.CareerStats{}, err
	}
	stats := mapCareer(payload)
	c.careers.Set(key, stats, cache.DefaultExpiration)
	return stats, nil
}

// FetchSpecs returns the static car specification table.
func (c *Client) FetchSpecs(ctx context.Context) (specs.Specs, error) {
	var payload specsResponse
	if err := c.getJSON(ctx, providers.EndpointSpecs, "/api/specs", &payload); err != nil {
		return specs.Specs{}, err
	}
	if payload.Engine == nil && payload.Power == nil && payload.Battery == nil && payload.Dimensions == nil {
		return specs.Specs{}, shapeError(providers.EndpointSpecs, "missing spec categories")
	}
	return mapSpecs(payload), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &providers.TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &providers.StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		// A body cut off by a cancelled context is a transport failure, not a shape one.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &providers.TransportError{Endpoint: endpoint, Err: ctxErr}
		}
		return &providers.ShapeError{Endpoint: endpoint, Err: decodeErr}
	}
	return nil
}

func shapeError(endpoint, msg string) error {
	return &providers.ShapeError{Endpoint: endpoint, Err: errors.New(msg)}
}
