package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	qb "github.com/myteamshq/sports-hub/internal/platform/querybuilder"
)

const liveKickoffLookback = 4 * time.Hour

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByProviderID(ctx context.Context, providerID string) (fixture.Fixture, bool, error) {
	return r.getOne(ctx, qb.Eq("provider_id", providerID), "provider_id", providerID)
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	return r.getOne(ctx, qb.Eq("id", fixtureID), "id", fixtureID)
}

func (r *FixtureRepository) getOne(ctx context.Context, cond qb.Condition, field, value string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").Where(cond).ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build select fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("select fixture %s=%s: %w", field, value, err)
	}
	return mapFixtureRow(row), true, nil
}

// Upsert keys on provider_id. A conflicting row keeps its id, league, season,
// teams and kickoff time and takes only the fresh status, scores and
// updated_at, so
// re-syncing a played match never rewrites its identity.
func (r *FixtureRepository) Upsert(ctx context.Context, f fixture.Fixture) (bool, error) {
	if err := f.Validate(); err != nil {
		return false, fmt.Errorf("validate fixture: %w", err)
	}

	insertModel := fixtureInsertModel{
		ID:         f.ID,
		ProviderID: f.ProviderID,
		LeagueID:   f.LeagueID,
		Season:     f.Season,
		HomeTeamID: f.HomeTeamID,
		AwayTeamID: f.AwayTeamID,
		StartTime:  f.StartTime.UTC(),
		Status:     fixture.NormalizeStatus(f.Status),
		HomeScore:  nullableInt(f.HomeScore),
		AwayScore:  nullableInt(f.AwayScore),
		UpdatedAt:  f.UpdatedAt.UTC(),
	}

	query, args, err := qb.InsertModel("fixtures", insertModel, `ON CONFLICT (provider_id)
DO UPDATE SET
    status = EXCLUDED.status,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    updated_at = EXCLUDED.updated_at
RETURNING (xmax = 0)`)
	if err != nil {
		return false, fmt.Errorf("build upsert fixture query: %w", err)
	}

	var created bool
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return false, fmt.Errorf("upsert fixture provider_id=%s: %w", f.ProviderID, err)
	}
	return created, nil
}

func (r *FixtureRepository) ListByTeam(ctx context.Context, teamID string, from, to time.Time) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Expr("(home_team_id = ? OR away_team_id = ?)", teamID, teamID),
			qb.Expr("start_time BETWEEN ? AND ?", from.UTC(), to.UTC()),
		).
		OrderBy("start_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by team query: %w", err)
	}
	return r.selectFixtures(ctx, query, args)
}

func (r *FixtureRepository) ListLive(ctx context.Context, now time.Time) ([]fixture.Fixture, error) {
	excluded := []any{
		fixture.StatusNotStarted,
		fixture.StatusTBD,
		fixture.StatusFullTime,
		fixture.StatusAfterExtra,
		fixture.StatusPenalties,
		fixture.StatusPostponed,
		fixture.StatusCancelled,
		fixture.StatusAbandoned,
		fixture.StatusAwarded,
		fixture.StatusWalkover,
	}

	now = now.UTC()
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.NotIn("status", excluded),
			qb.Expr("start_time BETWEEN ? AND ?", now.Add(-liveKickoffLookback), now),
		).
		OrderBy("start_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select live fixtures query: %w", err)
	}
	return r.selectFixtures(ctx, query, args)
}

func (r *FixtureRepository) selectFixtures(ctx context.Context, query string, args []any) ([]fixture.Fixture, error) {
	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFixtureRow(row))
	}
	return out, nil
}

func mapFixtureRow(row fixtureTableModel) fixture.Fixture {
	return fixture.Fixture{
		ID:         row.ID,
		ProviderID: row.ProviderID,
		LeagueID:   row.LeagueID,
		Season:     row.Season,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		StartTime:  row.StartTime.UTC(),
		Status:     row.Status,
		HomeScore:  intPtr(row.HomeScore),
		AwayScore:  intPtr(row.AwayScore),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
}
