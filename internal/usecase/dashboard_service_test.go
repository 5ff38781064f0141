package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	"github.com/myteamshq/sports-hub/internal/domain/follow"
	"github.com/myteamshq/sports-hub/internal/domain/team"
	"github.com/myteamshq/sports-hub/internal/infrastructure/repository/memory"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

type dashboardEnv struct {
	follows  *memory.FollowRepository
	teams    *memory.TeamRepository
	fixtures *memory.FixtureRepository
	cache    *cache.Store
	service  *DashboardService
	now      time.Time
}

func newDashboardEnv(t *testing.T) *dashboardEnv {
	t.Helper()
	env := &dashboardEnv{
		follows:  memory.NewFollowRepository(),
		teams:    memory.NewTeamRepository(),
		fixtures: memory.NewFixtureRepository(),
		cache:    cache.NewStore(),
		now:      time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	env.service = NewDashboardService(env.follows, env.teams, env.fixtures, env.cache, time.Minute, logging.NewNop())
	env.service.now = func() time.Time { return env.now }
	return env
}

func (env *dashboardEnv) seedTeam(t *testing.T, id, providerID, name string) {
	t.Helper()
	_, err := env.teams.Upsert(context.Background(), team.Team{ID: id, ProviderID: providerID, Name: name})
	require.NoError(t, err)
}

func (env *dashboardEnv) seedFixture(t *testing.T, id, providerID, homeID, awayID string, start time.Time, status string) {
	t.Helper()
	_, err := env.fixtures.Upsert(context.Background(), fixture.Fixture{
		ID:         id,
		ProviderID: providerID,
		LeagueID:   "lg-1",
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		StartTime:  start,
		Status:     status,
		UpdatedAt:  env.now,
	})
	require.NoError(t, err)
}

func TestGetDashboardSplitsRecentAndUpcoming(t *testing.T) {
	t.Parallel()
	env := newDashboardEnv(t)
	ctx := context.Background()

	env.seedTeam(t, "tm-city", "50", "Manchester City")
	env.seedTeam(t, "tm-liv", "40", "Liverpool")
	env.seedFixture(t, "fx-1", "1001", "tm-city", "tm-liv", env.now.Add(-20*time.Hour), "FT")
	env.seedFixture(t, "fx-2", "1002", "tm-liv", "tm-city", env.now.Add(30*time.Hour), "NS")
	env.seedFixture(t, "fx-3", "1003", "tm-city", "tm-liv", env.now.AddDate(0, 0, 6), "NS")

	require.NoError(t, env.follows.Create(ctx, follow.Follow{UserID: "user-1", TeamID: "tm-city", CreatedAt: env.now}))
	require.NoError(t, env.follows.Create(ctx, follow.Follow{UserID: "user-1", TeamID: "tm-liv", CreatedAt: env.now}))

	dashboard, err := env.service.GetDashboard(ctx, "user-1", 3, 7)
	require.NoError(t, err)

	require.Len(t, dashboard.Teams, 2)
	assert.Equal(t, "Liverpool", dashboard.Teams[0].Name)

	// Shared fixtures appear once even though both sides are followed.
	require.Len(t, dashboard.Recent, 1)
	assert.Equal(t, "fx-1", dashboard.Recent[0].ID)
	require.Len(t, dashboard.Upcoming, 2)
	assert.Equal(t, "fx-2", dashboard.Upcoming[0].ID)
	assert.Equal(t, "fx-3", dashboard.Upcoming[1].ID)
}

func TestGetDashboardWindowBounds(t *testing.T) {
	t.Parallel()
	env := newDashboardEnv(t)
	ctx := context.Background()

	env.seedTeam(t, "tm-city", "50", "Manchester City")
	env.seedFixture(t, "fx-old", "1000", "tm-city", "tm-x", env.now.AddDate(0, 0, -10), "FT")
	env.seedFixture(t, "fx-far", "1009", "tm-city", "tm-x", env.now.AddDate(0, 0, 10), "NS")
	require.NoError(t, env.follows.Create(ctx, follow.Follow{UserID: "user-1", TeamID: "tm-city", CreatedAt: env.now}))

	dashboard, err := env.service.GetDashboard(ctx, "user-1", 3, 7)
	require.NoError(t, err)
	assert.Empty(t, dashboard.Recent)
	assert.Empty(t, dashboard.Upcoming)
}

func TestGetDashboardEmptyWithoutFollows(t *testing.T) {
	t.Parallel()
	env := newDashboardEnv(t)

	dashboard, err := env.service.GetDashboard(context.Background(), "user-1", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, dashboard.Teams)
	assert.Empty(t, dashboard.Recent)
	assert.Empty(t, dashboard.Upcoming)
}

func TestGetDashboardServesCachedCopy(t *testing.T) {
	t.Parallel()
	env := newDashboardEnv(t)
	ctx := context.Background()

	env.seedTeam(t, "tm-city", "50", "Manchester City")
	require.NoError(t, env.follows.Create(ctx, follow.Follow{UserID: "user-1", TeamID: "tm-city", CreatedAt: env.now}))

	first, err := env.service.GetDashboard(ctx, "user-1", 3, 7)
	require.NoError(t, err)
	require.Len(t, first.Teams, 1)

	// A follow added after caching is invisible until invalidation.
	env.seedTeam(t, "tm-liv", "40", "Liverpool")
	require.NoError(t, env.follows.Create(ctx, follow.Follow{UserID: "user-1", TeamID: "tm-liv", CreatedAt: env.now}))

	second, err := env.service.GetDashboard(ctx, "user-1", 3, 7)
	require.NoError(t, err)
	assert.Len(t, second.Teams, 1)

	env.cache.DeletePrefix(ctx, dashboardCachePrefix("user-1"))
	third, err := env.service.GetDashboard(ctx, "user-1", 3, 7)
	require.NoError(t, err)
	assert.Len(t, third.Teams, 2)
}

func TestGetDashboardRequiresUser(t *testing.T) {
	t.Parallel()
	env := newDashboardEnv(t)

	_, err := env.service.GetDashboard(context.Background(), "  ", 3, 7)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestNormalizeDashboardDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultDashboardDays, normalizeDashboardDays(0))
	assert.Equal(t, defaultDashboardDays, normalizeDashboardDays(-2))
	assert.Equal(t, 12, normalizeDashboardDays(12))
	assert.Equal(t, maxDashboardDays, normalizeDashboardDays(90))
}
