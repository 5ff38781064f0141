package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myteamshq/sports-hub/external/footballdata"
	"github.com/myteamshq/sports-hub/internal/infrastructure/repository/memory"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
	"github.com/myteamshq/sports-hub/internal/platform/id"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
	"github.com/myteamshq/sports-hub/internal/usecase"
)

// Runs the builtin dataset end to end through the sync service against the
// in-memory repositories, the same wiring the app falls back to without a
// database.
func TestSyncAgainstBuiltinDataset(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider := footballdata.NewMockWithClock(func() time.Time { return now })

	leagues := memory.NewLeagueRepository()
	teams := memory.NewTeamRepository()
	fixtures := memory.NewFixtureRepository()
	events := memory.NewEventRepository()
	table := memory.NewStandingRepository()
	follows := memory.NewFollowRepository()

	service := usecase.NewSyncService(
		provider,
		leagues, teams, fixtures, events, table, follows,
		cache.NewStore(),
		id.NewUUIDGenerator(),
		logging.NewNop(),
	)
	service.SetClockForTest(func() time.Time { return now })
	ctx := context.Background()

	created, err := service.SyncLeagues(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	for _, leagueProviderID := range []string{"mock-39", "mock-140"} {
		created, err = service.SyncTeams(ctx, leagueProviderID)
		require.NoError(t, err)
		assert.Equal(t, 3, created)
	}
	for _, leagueProviderID := range []string{"mock-39", "mock-140"} {
		written, err := service.SyncStandings(ctx, leagueProviderID, "2024")
		require.NoError(t, err)
		assert.Equal(t, 3, written)
	}

	allLeagues, err := leagues.List(ctx)
	require.NoError(t, err)
	require.Len(t, allLeagues, 2)
	allTeams, err := teams.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allTeams, 6)
	for _, lg := range allLeagues {
		rows, err := table.ListByLeagueSeason(ctx, lg.ID, "2024")
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	}

	// No fixture sync has run yet, so none of the dataset's fixtures exist.
	for _, providerID := range []string{"mock-fix-1001", "mock-fix-1002", "mock-fix-1003"} {
		_, ok, err := fixtures.GetByProviderID(ctx, providerID)
		require.NoError(t, err)
		assert.False(t, ok, "fixture %s must not exist before a fixture sync", providerID)
	}

	// mock-50 plays yesterday's finished match and tomorrow's, both inside
	// the 72 hour horizon; the match seven days out stays excluded.
	created, err = service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	finished, ok, err := fixtures.GetByProviderID(ctx, "mock-fix-1001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "FT", finished.Status)
	assert.Equal(t, "2024", finished.Season)

	upcoming, ok, err := fixtures.GetByProviderID(ctx, "mock-fix-1002")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "NS", upcoming.Status)
	assert.Equal(t, "2024", upcoming.Season)

	_, ok, err = fixtures.GetByProviderID(ctx, "mock-fix-1003")
	require.NoError(t, err)
	assert.False(t, ok)

	created, err = service.SyncFixtures(ctx, "mock-50", 72)
	require.NoError(t, err)
	assert.Zero(t, created, "re-syncing the same window creates nothing")
}
