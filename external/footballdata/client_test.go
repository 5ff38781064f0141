package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

func newTestClient(t *testing.T, handler http.Handler, maxRetries int) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		Timeout:        2 * time.Second,
		MaxRetries:     maxRetries,
		RequestsPerSec: 1000,
		Logger:         logging.NewNop(),
	})
	return client, server
}

func TestClientFetchLeagues(t *testing.T) {
	t.Parallel()

	var gotKey atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.Header.Get("x-apisports-key"))
		assert.Equal(t, "/leagues", r.URL.Path)
		assert.Equal(t, "England", r.URL.Query().Get("country"))
		assert.Equal(t, "2024", r.URL.Query().Get("season"))
		_, _ = w.Write([]byte(`{"errors":{},"response":[
			{"league":{"id":39,"name":"Premier League"},"country":{"name":"England"},"seasons":[{"year":2024,"current":true}]}
		]}`))
	})
	client, _ := newTestClient(t, handler, 0)

	leagues, err := client.FetchLeagues(context.Background(), "England", "2024")
	require.NoError(t, err)
	require.Len(t, leagues, 1)
	assert.Equal(t, "39", leagues[0].ProviderID)
	assert.Equal(t, "Premier League", leagues[0].Name)
	assert.Equal(t, "England", leagues[0].Country)
	assert.Equal(t, "2024", leagues[0].Season)
	assert.Equal(t, "test-key", gotKey.Load())
}

func TestClientFetchFixturesFiltersWindow(t *testing.T) {
	t.Parallel()

	inside := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	outside := time.Date(2026, 3, 15, 15, 0, 0, 0, time.UTC)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("team"))
		_, _ = w.Write([]byte(`{"errors":{},"response":[
			{"fixture":{"id":1001,"date":"` + inside.Format(time.RFC3339) + `","status":{"short":"FT"}},
			 "league":{"id":39,"season":2024},
			 "teams":{"home":{"id":50},"away":{"id":40}},
			 "goals":{"home":2,"away":1}},
			{"fixture":{"id":1002,"date":"` + outside.Format(time.RFC3339) + `","status":{"short":"NS"}},
			 "league":{"id":39,"season":2024},
			 "teams":{"home":{"id":42},"away":{"id":50}},
			 "goals":{"home":null,"away":null}}
		]}`))
	})
	client, _ := newTestClient(t, handler, 0)

	from := inside.Add(-24 * time.Hour)
	to := inside.Add(48 * time.Hour)
	fixtures, err := client.FetchFixtures(context.Background(), "50", from, to)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.Equal(t, "1001", fixtures[0].ProviderID)
	assert.Equal(t, "39", fixtures[0].LeagueProviderID)
	assert.Equal(t, "2024", fixtures[0].Season)
	assert.Equal(t, "50", fixtures[0].HomeTeamProviderID)
	assert.Equal(t, "40", fixtures[0].AwayTeamProviderID)
	assert.Equal(t, "FT", fixtures[0].Status)
	require.NotNil(t, fixtures[0].HomeScore)
	require.NotNil(t, fixtures[0].AwayScore)
	assert.Equal(t, 2, *fixtures[0].HomeScore)
	assert.Equal(t, 1, *fixtures[0].AwayScore)
}

func TestClientFetchStandingsFirstGroupOnly(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":{},"response":[{"league":{"id":39,"standings":[
			[
				{"rank":1,"team":{"id":50},"points":64,"goalsDiff":37,"all":{"played":28,"win":20,"draw":4,"lose":4,"goals":{"for":65,"against":28}}},
				{"rank":2,"team":{"id":40},"points":62,"goalsDiff":30,"all":{"played":28,"win":19,"draw":5,"lose":4,"goals":{"for":60,"against":30}}}
			],
			[
				{"rank":1,"team":{"id":99},"points":40,"goalsDiff":10,"all":{"played":14,"win":12,"draw":1,"lose":1,"goals":{"for":30,"against":20}}}
			]
		]}}]}`))
	})
	client, _ := newTestClient(t, handler, 0)

	rows, err := client.FetchStandings(context.Background(), "39", "2024")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "50", rows[0].TeamProviderID)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 64, rows[0].Points)
	assert.Equal(t, 37, rows[0].GoalDiff)
	assert.Equal(t, "40", rows[1].TeamProviderID)
}

func TestClientFetchEventsNormalizesTypes(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/events", r.URL.Path)
		assert.Equal(t, "1001", r.URL.Query().Get("fixture"))
		_, _ = w.Write([]byte(`{"errors":{},"response":[
			{"time":{"elapsed":24},"team":{"id":50},"player":{"name":"Haaland"},"type":"Goal","detail":"Normal Goal","comments":"Header from the corner"},
			{"time":{"elapsed":45,"extra":2},"team":{"id":40},"player":{"name":"Salah"},"type":"Goal","detail":"Penalty"},
			{"time":{"elapsed":60},"team":{"id":50},"player":{"name":"Stones"},"type":"Card","detail":"Yellow Card"}
		]}`))
	})
	client, _ := newTestClient(t, handler, 0)

	events, err := client.FetchEvents(context.Background(), "1001")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "goal", events[0].Type)
	assert.Equal(t, 24, events[0].Minute)
	assert.Equal(t, map[string]any{"detail": "Normal Goal", "comments": "Header from the corner"}, events[0].Payload)
	assert.Equal(t, "penalty", events[1].Type)
	assert.Equal(t, 47, events[1].Minute)
	assert.Equal(t, map[string]any{"detail": "Penalty", "comments": ""}, events[1].Payload)
	assert.Equal(t, "card", events[2].Type)
	assert.Equal(t, "50", events[2].TeamProviderID)
}

func TestNewClientDoesNotMutateCallerHTTPClient(t *testing.T) {
	t.Parallel()

	shared := &http.Client{}
	client := NewClient(ClientConfig{
		BaseURL:    "https://example.test",
		APIKey:     "test-key",
		HTTPClient: shared,
		Logger:     logging.NewNop(),
	})

	assert.Zero(t, shared.Timeout, "caller's client keeps its own timeout")
	assert.NotSame(t, shared, client.httpClient)
	assert.Equal(t, 15*time.Second, client.httpClient.Timeout)
}

func TestClientRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"errors":{},"response":[]}`))
	})
	client, _ := newTestClient(t, handler, 2)

	_, err := client.FetchLeagues(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClientDoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	client, _ := newTestClient(t, handler, 3)

	_, err := client.FetchLeagues(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientRejectsNonNumericProviderID(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), 0)

	_, err := client.FetchTeams(context.Background(), "mock-39")
	require.Error(t, err)

	_, err = client.FetchEvents(context.Background(), "")
	require.Error(t, err)
}

func TestClientSurfacesProviderErrors(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":{"token":"Error/Missing application key"},"response":[]}`))
	})
	client, _ := newTestClient(t, handler, 0)

	_, err := client.FetchLeagues(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider rejected request")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	provider := NewFromConfig(FactoryConfig{Provider: "api_football", APIKey: "real-key", Logger: logging.NewNop()})
	_, isLive := provider.(*Client)
	assert.True(t, isLive)

	provider = NewFromConfig(FactoryConfig{Provider: "api_football", APIKey: ""})
	_, isMock := provider.(*Mock)
	assert.True(t, isMock)

	provider = NewFromConfig(FactoryConfig{Provider: "mock", APIKey: "ignored"})
	_, isMock = provider.(*Mock)
	assert.True(t, isMock)
}
