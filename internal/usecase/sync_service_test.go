package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myteamshq/sports-hub/internal/domain/follow"
	"github.com/myteamshq/sports-hub/internal/infrastructure/repository/memory"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

type providerStub struct {
	leagues   []ExternalLeague
	teams     map[string][]ExternalTeam
	search    []ExternalTeam
	fixtures  []ExternalFixture
	events    map[string][]ExternalEvent
	standings map[string][]ExternalStanding
	err       error
}

func (p *providerStub) FetchLeagues(context.Context, string, string) ([]ExternalLeague, error) {
	return p.leagues, p.err
}

func (p *providerStub) FetchTeams(_ context.Context, leagueProviderID string) ([]ExternalTeam, error) {
	return p.teams[leagueProviderID], p.err
}

func (p *providerStub) SearchTeams(_ context.Context, _ string, limit int) ([]ExternalTeam, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.search) > limit {
		return p.search[:limit], nil
	}
	return p.search, nil
}

func (p *providerStub) FetchFixtures(_ context.Context, teamProviderID string, from, to time.Time) ([]ExternalFixture, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make([]ExternalFixture, 0, len(p.fixtures))
	for _, fx := range p.fixtures {
		if fx.HomeTeamProviderID != teamProviderID && fx.AwayTeamProviderID != teamProviderID {
			continue
		}
		if fx.StartTime.Before(from) || fx.StartTime.After(to) {
			continue
		}
		out = append(out, fx)
	}
	return out, nil
}

func (p *providerStub) FetchEvents(_ context.Context, fixtureProviderID string) ([]ExternalEvent, error) {
	return p.events[fixtureProviderID], p.err
}

func (p *providerStub) FetchStandings(_ context.Context, leagueProviderID, _ string) ([]ExternalStanding, error) {
	return p.standings[leagueProviderID], p.err
}

type seqIDGenerator struct {
	counter atomic.Int64
}

func (g *seqIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("id-%04d", g.counter.Add(1)), nil
}

type syncFixtureEnv struct {
	provider *providerStub
	leagues  *memory.LeagueRepository
	teams    *memory.TeamRepository
	fixtures *memory.FixtureRepository
	events   *memory.EventRepository
	table    *memory.StandingRepository
	follows  *memory.FollowRepository
	cache    *cache.Store
	service  *SyncService
}

func newSyncEnv(provider *providerStub, now time.Time) *syncFixtureEnv {
	env := &syncFixtureEnv{
		provider: provider,
		leagues:  memory.NewLeagueRepository(),
		teams:    memory.NewTeamRepository(),
		fixtures: memory.NewFixtureRepository(),
		events:   memory.NewEventRepository(),
		table:    memory.NewStandingRepository(),
		follows:  memory.NewFollowRepository(),
		cache:    cache.NewStore(),
	}
	env.service = NewSyncService(
		provider,
		env.leagues, env.teams, env.fixtures, env.events, env.table, env.follows,
		env.cache,
		&seqIDGenerator{},
		logging.NewNop(),
	)
	env.service.now = func() time.Time { return now }
	return env
}

var sampleLeagues = []ExternalLeague{
	{ProviderID: "mock-39", Name: "Premier League", Country: "England", Season: "2024"},
	{ProviderID: "mock-140", Name: "La Liga", Country: "Spain", Season: "2024"},
}

var sampleTeams = map[string][]ExternalTeam{
	"mock-39": {
		{ProviderID: "mock-50", LeagueProviderID: "mock-39", Name: "Manchester City", ShortCode: "MCI"},
		{ProviderID: "mock-40", LeagueProviderID: "mock-39", Name: "Liverpool", ShortCode: "LIV"},
		{ProviderID: "mock-42", LeagueProviderID: "mock-39", Name: "Arsenal", ShortCode: "ARS"},
	},
	"mock-140": {
		{ProviderID: "mock-541", LeagueProviderID: "mock-140", Name: "Real Madrid", ShortCode: "RMA"},
		{ProviderID: "mock-529", LeagueProviderID: "mock-140", Name: "FC Barcelona", ShortCode: "BAR"},
		{ProviderID: "mock-530", LeagueProviderID: "mock-140", Name: "Atletico Madrid", ShortCode: "ATM"},
	},
}

func seedCatalog(t *testing.T, env *syncFixtureEnv) {
	t.Helper()
	ctx := context.Background()

	created, err := env.service.SyncLeagues(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, 2, created)

	for _, leagueProviderID := range []string{"mock-39", "mock-140"} {
		_, err := env.service.SyncTeams(ctx, leagueProviderID)
		require.NoError(t, err)
	}
}

func TestSyncLeaguesIdempotent(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{leagues: sampleLeagues}
	env := newSyncEnv(provider, now)
	ctx := context.Background()

	created, err := env.service.SyncLeagues(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = env.service.SyncLeagues(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	leagues, err := env.leagues.List(ctx)
	require.NoError(t, err)
	assert.Len(t, leagues, 2)
}

func TestSyncLeaguesRefreshesNameAndSeason(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{leagues: sampleLeagues}
	env := newSyncEnv(provider, now)
	ctx := context.Background()

	_, err := env.service.SyncLeagues(ctx, "", "")
	require.NoError(t, err)
	before, ok, err := env.leagues.GetByProviderID(ctx, "mock-39")
	require.NoError(t, err)
	require.True(t, ok)

	provider.leagues = []ExternalLeague{
		{ProviderID: "mock-39", Name: "English Premier League", Country: "England", Season: "2025"},
	}
	created, err := env.service.SyncLeagues(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	after, ok, err := env.leagues.GetByProviderID(ctx, "mock-39")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "English Premier League", after.Name)
	assert.Equal(t, "2025", after.Season)
}

func TestSyncLeaguesRejectsMissingProviderID(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{leagues: []ExternalLeague{{ProviderID: "  ", Name: "Ghost League"}}}
	env := newSyncEnv(provider, now)

	_, err := env.service.SyncLeagues(context.Background(), "", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSyncTeamsLinksLeague(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{leagues: sampleLeagues, teams: sampleTeams}
	env := newSyncEnv(provider, now)
	ctx := context.Background()

	_, err := env.service.SyncLeagues(ctx, "", "")
	require.NoError(t, err)

	created, err := env.service.SyncTeams(ctx, "mock-39")
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = env.service.SyncTeams(ctx, "mock-39")
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	lg, _, err := env.leagues.GetByProviderID(ctx, "mock-39")
	require.NoError(t, err)
	tm, ok, err := env.teams.GetByProviderID(ctx, "mock-50")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, tm.LeagueID)
	assert.Equal(t, lg.ID, *tm.LeagueID)
}

func TestSyncTeamsUnknownLeagueKeepsNilReference(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{teams: sampleTeams}
	env := newSyncEnv(provider, now)
	ctx := context.Background()

	created, err := env.service.SyncTeams(ctx, "mock-39")
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	tm, ok, err := env.teams.GetByProviderID(ctx, "mock-50")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, tm.LeagueID)
}

func TestSyncFixturesCreatesAndSkipsUnresolved(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	score := func(h, a int) (*int, *int) { return &h, &a }
	home, away := score(2, 1)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		fixtures: []ExternalFixture{
			{
				ProviderID:         "fix-1001",
				LeagueProviderID:   "mock-39",
				Season:             "2024",
				HomeTeamProviderID: "mock-50",
				AwayTeamProviderID: "mock-40",
				StartTime:          now.Add(-21 * time.Hour),
				Status:             "FT",
				HomeScore:          home,
				AwayScore:          away,
			},
			{
				ProviderID:         "fix-1002",
				LeagueProviderID:   "mock-39",
				HomeTeamProviderID: "mock-42",
				AwayTeamProviderID: "mock-50",
				StartTime:          now.Add(29 * time.Hour),
				Status:             "NS",
			},
			{
				// References a team the catalog has never seen.
				ProviderID:         "fix-9999",
				LeagueProviderID:   "mock-39",
				HomeTeamProviderID: "mock-50",
				AwayTeamProviderID: "unknown-77",
				StartTime:          now.Add(30 * time.Hour),
				Status:             "NS",
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)
	ctx := context.Background()

	created, err := env.service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	played, ok, err := env.fixtures.GetByProviderID(ctx, "fix-1001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024", played.Season)

	_, ok, err = env.fixtures.GetByProviderID(ctx, "fix-9999")
	require.NoError(t, err)
	assert.False(t, ok, "fixture with unresolved team reference must not persist")

	created, err = env.service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestSyncFixturesWindowExcludesDistantMatches(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		fixtures: []ExternalFixture{
			{
				ProviderID:         "fix-1002",
				LeagueProviderID:   "mock-39",
				HomeTeamProviderID: "mock-42",
				AwayTeamProviderID: "mock-50",
				StartTime:          now.Add(29 * time.Hour),
				Status:             "NS",
			},
			{
				// Seven days out, beyond a 72 hour horizon.
				ProviderID:         "fix-1003",
				LeagueProviderID:   "mock-39",
				HomeTeamProviderID: "mock-50",
				AwayTeamProviderID: "mock-40",
				StartTime:          now.AddDate(0, 0, 7),
				Status:             "NS",
			},
			{
				// Two days in the past, outside the 24 hour lookback.
				ProviderID:         "fix-1000",
				LeagueProviderID:   "mock-39",
				HomeTeamProviderID: "mock-40",
				AwayTeamProviderID: "mock-50",
				StartTime:          now.AddDate(0, 0, -2),
				Status:             "FT",
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)
	ctx := context.Background()

	created, err := env.service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	_, ok, err := env.fixtures.GetByProviderID(ctx, "fix-1003")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = env.fixtures.GetByProviderID(ctx, "fix-1000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSyncFixturesConflictUpdatesResultOnly(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		fixtures: []ExternalFixture{
			{
				ProviderID:         "fix-1001",
				LeagueProviderID:   "mock-39",
				Season:             "2024",
				HomeTeamProviderID: "mock-50",
				AwayTeamProviderID: "mock-40",
				StartTime:          now.Add(-2 * time.Hour),
				Status:             "1H",
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)
	ctx := context.Background()

	_, err := env.service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	before, ok, err := env.fixtures.GetByProviderID(ctx, "fix-1001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024", before.Season)

	two, one := 2, 1
	provider.fixtures[0].Status = "FT"
	provider.fixtures[0].HomeScore = &two
	provider.fixtures[0].AwayScore = &one
	// A league season rollover between syncs must not relabel the fixture.
	provider.fixtures[0].Season = "2025"

	created, err := env.service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	after, ok, err := env.fixtures.GetByProviderID(ctx, "fix-1001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.StartTime, after.StartTime)
	assert.Equal(t, "2024", after.Season)
	assert.Equal(t, "FT", after.Status)
	require.NotNil(t, after.HomeScore)
	assert.Equal(t, 2, *after.HomeScore)
	require.NotNil(t, after.AwayScore)
	assert.Equal(t, 1, *after.AwayScore)
}

func TestSyncFixturesInvalidatesFollowerDashboards(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		fixtures: []ExternalFixture{
			{
				ProviderID:         "fix-1001",
				LeagueProviderID:   "mock-39",
				HomeTeamProviderID: "mock-50",
				AwayTeamProviderID: "mock-40",
				StartTime:          now.Add(2 * time.Hour),
				Status:             "NS",
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)
	ctx := context.Background()

	city, _, err := env.teams.GetByProviderID(ctx, "mock-50")
	require.NoError(t, err)
	atletico, _, err := env.teams.GetByProviderID(ctx, "mock-530")
	require.NoError(t, err)

	require.NoError(t, env.follows.Create(ctx, follow.Follow{UserID: "user-1", TeamID: city.ID, CreatedAt: now}))
	require.NoError(t, env.follows.Create(ctx, follow.Follow{UserID: "user-2", TeamID: atletico.ID, CreatedAt: now}))

	env.cache.Set(ctx, dashboardCacheKey("user-1", 3, 7), []byte("stale"), time.Hour)
	env.cache.Set(ctx, dashboardCacheKey("user-2", 3, 7), []byte("fresh"), time.Hour)

	_, err = env.service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)

	_, ok := env.cache.Get(ctx, dashboardCacheKey("user-1", 3, 7))
	assert.False(t, ok, "follower dashboard must be invalidated")
	_, ok = env.cache.Get(ctx, dashboardCacheKey("user-2", 3, 7))
	assert.True(t, ok, "unrelated dashboard must survive")
}

func TestSyncEventsAppendsOnEveryRun(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		fixtures: []ExternalFixture{
			{
				ProviderID:         "fix-1001",
				LeagueProviderID:   "mock-39",
				HomeTeamProviderID: "mock-50",
				AwayTeamProviderID: "mock-40",
				StartTime:          now.Add(-2 * time.Hour),
				Status:             "2H",
			},
		},
		events: map[string][]ExternalEvent{
			"fix-1001": {
				{
					FixtureProviderID: "fix-1001",
					TeamProviderID:    "mock-50",
					Type:              "goal",
					Minute:            24,
					PlayerName:        "Haaland",
					Payload:           map[string]any{"detail": "Normal Goal", "comments": "Left-footed finish"},
				},
				{FixtureProviderID: "fix-1001", TeamProviderID: "mock-40", Type: "goal", Minute: 71, PlayerName: "Salah"},
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)
	ctx := context.Background()

	_, err := env.service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	fx, _, err := env.fixtures.GetByProviderID(ctx, "fix-1001")
	require.NoError(t, err)

	appended, err := env.service.SyncEvents(ctx, "fix-1001")
	require.NoError(t, err)
	assert.Equal(t, 2, appended)

	appended, err = env.service.SyncEvents(ctx, "fix-1001")
	require.NoError(t, err)
	assert.Equal(t, 2, appended)

	events, err := env.events.ListByFixture(ctx, fx.ID)
	require.NoError(t, err)
	assert.Len(t, events, 4, "event sync appends, it never deduplicates")

	for _, e := range events {
		require.NotNil(t, e.TeamID)
		switch e.Minute {
		case 24:
			// The stored payload is the provider's map verbatim, so compare
			// after decoding rather than against one key ordering.
			var decoded map[string]any
			require.NoError(t, sonic.UnmarshalString(e.Payload, &decoded))
			assert.Equal(t, map[string]any{"detail": "Normal Goal", "comments": "Left-footed finish"}, decoded)
		case 71:
			assert.Empty(t, e.Payload, "an event without provider detail stores no payload")
		}
	}
}

func TestSyncEventsUnknownFixtureIsNoOp(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		events: map[string][]ExternalEvent{
			"fix-404": {{FixtureProviderID: "fix-404", Type: "goal", Minute: 10, PlayerName: "Nobody"}},
		},
	}
	env := newSyncEnv(provider, now)

	appended, err := env.service.SyncEvents(context.Background(), "fix-404")
	require.NoError(t, err)
	assert.Zero(t, appended)
}

func TestSyncStandingsOverwritesTable(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		standings: map[string][]ExternalStanding{
			"mock-39": {
				{TeamProviderID: "mock-50", Rank: 1, Played: 28, Win: 20, Draw: 4, Loss: 4, GoalsFor: 65, GoalsAgainst: 28, GoalDiff: 37, Points: 64},
				{TeamProviderID: "mock-40", Rank: 2, Played: 28, Win: 19, Draw: 5, Loss: 4, GoalsFor: 60, GoalsAgainst: 30, GoalDiff: 30, Points: 62},
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)
	ctx := context.Background()

	written, err := env.service.SyncStandings(ctx, "mock-39", "2024")
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	lg, _, err := env.leagues.GetByProviderID(ctx, "mock-39")
	require.NoError(t, err)
	rows, err := env.table.ListByLeagueSeason(ctx, lg.ID, "2024")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 64, rows[0].Points)

	// Next matchday flips the top two.
	provider.standings["mock-39"] = []ExternalStanding{
		{TeamProviderID: "mock-40", Rank: 1, Played: 29, Win: 20, Draw: 5, Loss: 4, GoalsFor: 63, GoalsAgainst: 30, GoalDiff: 33, Points: 65},
		{TeamProviderID: "mock-50", Rank: 2, Played: 29, Win: 20, Draw: 4, Loss: 5, GoalsFor: 66, GoalsAgainst: 30, GoalDiff: 36, Points: 64},
	}
	written, err = env.service.SyncStandings(ctx, "mock-39", "2024")
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	rows, err = env.table.ListByLeagueSeason(ctx, lg.ID, "2024")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	liverpool, _, err := env.teams.GetByProviderID(ctx, "mock-40")
	require.NoError(t, err)
	assert.Equal(t, liverpool.ID, rows[0].TeamID)
	assert.Equal(t, 65, rows[0].Points)
	assert.Equal(t, 29, rows[0].Played)
}

func TestSyncStandingsInvalidatesCachedTable(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		standings: map[string][]ExternalStanding{
			"mock-39": {
				{TeamProviderID: "mock-50", Rank: 1, Played: 28, Win: 20, Draw: 4, Loss: 4, GoalsFor: 65, GoalsAgainst: 28, GoalDiff: 37, Points: 64},
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)
	ctx := context.Background()

	lg, _, err := env.leagues.GetByProviderID(ctx, "mock-39")
	require.NoError(t, err)
	env.cache.Set(ctx, standingsCacheKey(lg.ID, "2024"), []byte("stale"), time.Hour)

	_, err = env.service.SyncStandings(ctx, "mock-39", "2024")
	require.NoError(t, err)

	_, ok := env.cache.Get(ctx, standingsCacheKey(lg.ID, "2024"))
	assert.False(t, ok)
}

func TestSyncStandingsUnknownLeagueIsNoOp(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		standings: map[string][]ExternalStanding{
			"mock-77": {{TeamProviderID: "mock-50", Rank: 1, Played: 1, Win: 1, Points: 3}},
		},
	}
	env := newSyncEnv(provider, now)

	written, err := env.service.SyncStandings(context.Background(), "mock-77", "2024")
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestSyncStandingsSkipsUnknownTeamRows(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := &providerStub{
		leagues: sampleLeagues,
		teams:   sampleTeams,
		standings: map[string][]ExternalStanding{
			"mock-39": {
				{TeamProviderID: "mock-50", Rank: 1, Played: 28, Win: 20, Draw: 4, Loss: 4, Points: 64},
				{TeamProviderID: "relegated-00", Rank: 2, Played: 28, Win: 19, Draw: 5, Loss: 4, Points: 62},
			},
		},
	}
	env := newSyncEnv(provider, now)
	seedCatalog(t, env)

	written, err := env.service.SyncStandings(context.Background(), "mock-39", "2024")
	require.NoError(t, err)
	assert.Equal(t, 1, written)
}

func TestSyncRequiresConfiguredDependencies(t *testing.T) {
	t.Parallel()
	service := NewSyncService(nil, nil, nil, nil, nil, nil, nil, nil, nil, logging.NewNop())

	_, err := service.SyncLeagues(context.Background(), "", "")
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
