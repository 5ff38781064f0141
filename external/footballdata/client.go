package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"golang.org/x/time/rate"

	"github.com/myteamshq/sports-hub/internal/platform/logging"
	"github.com/myteamshq/sports-hub/internal/platform/resilience"
	"github.com/myteamshq/sports-hub/internal/usecase"
)

const (
	defaultBaseURL     = "https://v3.football.api-sports.io"
	apiKeyHeader       = "x-apisports-key"
	maxResponseBytes   = 6 << 20
	defaultSearchLimit = 10
)

var apiKeyHeaderRegex = regexp.MustCompile(`(?i)x-apisports-key:\s*\S+`)
var errProviderTransient = crerr.New("football data provider transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RequestsPerSec float64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the API-Football v3 HTTP API. All fetch methods translate
// upstream rows into the provider-neutral external types; numeric upstream ids
// are carried as their decimal string form.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	limiter        *rate.Limiter
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	// Copy a caller-supplied client so defaulting the timeout never mutates it.
	var httpClient *http.Client
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	} else {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rps := cfg.RequestsPerSec
	if rps <= 0 {
		// Free tier allows 10 requests/minute; stay well under it.
		rps = 0.15
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		limiter:        rate.NewLimiter(rate.Limit(rps), 2),
	}
}

func (c *Client) FetchLeagues(ctx context.Context, country, season string) ([]usecase.ExternalLeague, error) {
	query := map[string]string{}
	if country = strings.TrimSpace(country); country != "" {
		query["country"] = country
	}
	if season = strings.TrimSpace(season); season != "" {
		query["season"] = season
	}

	var envelope leaguesEnvelope
	if err := c.doJSON(ctx, "/leagues", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch leagues country=%q season=%q: %w", country, season, err)
	}
	if err := envelope.Errors.toError(); err != nil {
		return nil, fmt.Errorf("fetch leagues country=%q season=%q: %w", country, season, err)
	}

	out := make([]usecase.ExternalLeague, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		if item.League.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalLeague{
			ProviderID: strconv.FormatInt(item.League.ID, 10),
			Name:       strings.TrimSpace(item.League.Name),
			Country:    strings.TrimSpace(item.Country.Name),
			Season:     resolveLeagueSeason(item, season),
		})
	}
	return out, nil
}

func (c *Client) FetchTeams(ctx context.Context, leagueProviderID string) ([]usecase.ExternalTeam, error) {
	leagueID, err := parseProviderID(leagueProviderID)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	query := map[string]string{"league": strconv.FormatInt(leagueID, 10)}
	var envelope teamsEnvelope
	if err := c.doJSON(ctx, "/teams", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch teams league_id=%d: %w", leagueID, err)
	}
	if err := envelope.Errors.toError(); err != nil {
		return nil, fmt.Errorf("fetch teams league_id=%d: %w", leagueID, err)
	}

	return mapTeams(envelope.Response, leagueProviderID), nil
}

func (c *Client) SearchTeams(ctx context.Context, query string, limit int) ([]usecase.ExternalTeam, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search teams: query must not be empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var envelope teamsEnvelope
	if err := c.doJSON(ctx, "/teams", map[string]string{"search": query}, &envelope); err != nil {
		return nil, fmt.Errorf("search teams query=%q: %w", query, err)
	}
	if err := envelope.Errors.toError(); err != nil {
		return nil, fmt.Errorf("search teams query=%q: %w", query, err)
	}

	out := mapTeams(envelope.Response, "")
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *Client) FetchFixtures(ctx context.Context, teamProviderID string, from, to time.Time) ([]usecase.ExternalFixture, error) {
	teamID, err := parseProviderID(teamProviderID)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	query := map[string]string{
		"team": strconv.FormatInt(teamID, 10),
		"from": from.UTC().Format("2006-01-02"),
		"to":   to.UTC().Format("2006-01-02"),
	}

	var envelope fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch fixtures team_id=%d: %w", teamID, err)
	}
	if err := envelope.Errors.toError(); err != nil {
		return nil, fmt.Errorf("fetch fixtures team_id=%d: %w", teamID, err)
	}

	out := make([]usecase.ExternalFixture, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		if item.Fixture.ID <= 0 {
			continue
		}
		startTime, parseErr := time.Parse(time.RFC3339, item.Fixture.Date)
		if parseErr != nil {
			c.logger.WarnContext(ctx, "skip fixture with unparseable kickoff time",
				"fixture_id", item.Fixture.ID,
				"date", item.Fixture.Date,
			)
			continue
		}
		startTime = startTime.UTC()
		// The from/to params filter by calendar day upstream; enforce the
		// caller's exact window here.
		if startTime.Before(from) || startTime.After(to) {
			continue
		}
		season := ""
		if item.League.Season > 0 {
			season = strconv.Itoa(item.League.Season)
		}
		out = append(out, usecase.ExternalFixture{
			ProviderID:         strconv.FormatInt(item.Fixture.ID, 10),
			LeagueProviderID:   strconv.FormatInt(item.League.ID, 10),
			Season:             season,
			HomeTeamProviderID: strconv.FormatInt(item.Teams.Home.ID, 10),
			AwayTeamProviderID: strconv.FormatInt(item.Teams.Away.ID, 10),
			StartTime:          startTime,
			Status:             strings.TrimSpace(item.Fixture.Status.Short),
			HomeScore:          item.Goals.Home,
			AwayScore:          item.Goals.Away,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ProviderID < out[j].ProviderID
	})
	return out, nil
}

func (c *Client) FetchEvents(ctx context.Context, fixtureProviderID string) ([]usecase.ExternalEvent, error) {
	fixtureID, err := parseProviderID(fixtureProviderID)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	query := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	var envelope eventsEnvelope
	if err := c.doJSON(ctx, "/fixtures/events", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch events fixture_id=%d: %w", fixtureID, err)
	}
	if err := envelope.Errors.toError(); err != nil {
		return nil, fmt.Errorf("fetch events fixture_id=%d: %w", fixtureID, err)
	}

	out := make([]usecase.ExternalEvent, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		teamProviderID := ""
		if item.Team.ID > 0 {
			teamProviderID = strconv.FormatInt(item.Team.ID, 10)
		}
		minute := item.Time.Elapsed
		if item.Time.Extra != nil {
			minute += *item.Time.Extra
		}
		out = append(out, usecase.ExternalEvent{
			FixtureProviderID: fixtureProviderID,
			TeamProviderID:    teamProviderID,
			Type:              normalizeEventType(item.Type, item.Detail),
			Minute:            minute,
			PlayerName:        strings.TrimSpace(item.Player.Name),
			Payload: map[string]any{
				"detail":   item.Detail,
				"comments": item.Comments,
			},
		})
	}
	return out, nil
}

func (c *Client) FetchStandings(ctx context.Context, leagueProviderID, season string) ([]usecase.ExternalStanding, error) {
	leagueID, err := parseProviderID(leagueProviderID)
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("fetch standings: season must not be empty")
	}

	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": season,
	}

	var envelope standingsEnvelope
	if err := c.doJSON(ctx, "/standings", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings league_id=%d season=%s: %w", leagueID, season, err)
	}
	if err := envelope.Errors.toError(); err != nil {
		return nil, fmt.Errorf("fetch standings league_id=%d season=%s: %w", leagueID, season, err)
	}

	out := make([]usecase.ExternalStanding, 0, 24)
	for _, item := range envelope.Response {
		// Standings arrive as groups (overall table, home, away, or cup
		// groups); the first group is the overall table.
		if len(item.League.Standings) == 0 {
			continue
		}
		for _, row := range item.League.Standings[0] {
			if row.Team.ID <= 0 || row.Rank <= 0 {
				continue
			}
			out = append(out, usecase.ExternalStanding{
				TeamProviderID: strconv.FormatInt(row.Team.ID, 10),
				Rank:           row.Rank,
				Played:         row.All.Played,
				Win:            row.All.Win,
				Draw:           row.All.Draw,
				Loss:           row.All.Lose,
				GoalsFor:       row.All.Goals.For,
				GoalsAgainst:   row.All.Goals.Against,
				GoalDiff:       row.GoalsDiff,
				Points:         row.Points,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football data circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isTransientFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(apiKeyHeader, c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errProviderTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errProviderTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errProviderTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "football data request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (e apiErrors) toError() error {
	if len(e) == 0 {
		return nil
	}
	parts := make([]string, 0, len(e))
	for field, message := range e {
		parts = append(parts, fmt.Sprintf("%s: %v", field, message))
	}
	sort.Strings(parts)
	return fmt.Errorf("provider rejected request: %s", strings.Join(parts, "; "))
}

func mapTeams(items []teamItem, leagueProviderID string) []usecase.ExternalTeam {
	out := make([]usecase.ExternalTeam, 0, len(items))
	for _, item := range items {
		if item.Team.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalTeam{
			ProviderID:       strconv.FormatInt(item.Team.ID, 10),
			LeagueProviderID: leagueProviderID,
			Name:             strings.TrimSpace(item.Team.Name),
			ShortCode:        strings.TrimSpace(item.Team.Code),
			LogoURL:          strings.TrimSpace(item.Team.Logo),
		})
	}
	return out
}

func resolveLeagueSeason(item leagueItem, requested string) string {
	if requested != "" {
		return requested
	}
	for _, s := range item.Seasons {
		if s.Current {
			return strconv.Itoa(s.Year)
		}
	}
	if len(item.Seasons) > 0 {
		return strconv.Itoa(item.Seasons[len(item.Seasons)-1].Year)
	}
	return ""
}

// normalizeEventType collapses the upstream type/detail pair into a single
// lowercase kind: goal, own_goal, penalty, card, subst, var.
func normalizeEventType(eventType, detail string) string {
	eventType = strings.ToLower(strings.TrimSpace(eventType))
	detail = strings.ToLower(strings.TrimSpace(detail))
	switch eventType {
	case "goal":
		if strings.Contains(detail, "own") {
			return "own_goal"
		}
		if strings.Contains(detail, "penalty") {
			return "penalty"
		}
		return "goal"
	case "card":
		return "card"
	case "subst":
		return "subst"
	case "var":
		return "var"
	default:
		if eventType == "" {
			return "unknown"
		}
		return eventType
	}
}

func parseProviderID(value string) (int64, error) {
	value = strings.TrimSpace(value)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("provider id %q is not a positive integer", value)
	}
	return id, nil
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyHeaderRegex.ReplaceAllString(value, apiKeyHeader+": REDACTED")
}

func isTransientFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errProviderTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
