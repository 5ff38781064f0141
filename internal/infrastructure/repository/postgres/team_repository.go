package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/myteamshq/sports-hub/internal/domain/team"
	qb "github.com/myteamshq/sports-hub/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByProviderID(ctx context.Context, providerID string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("provider_id", providerID), "provider_id", providerID)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("id", teamID), "id", teamID)
}

func (r *TeamRepository) getOne(ctx context.Context, cond qb.Condition, field, value string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").Where(cond).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team %s=%s: %w", field, value, err)
	}
	return mapTeamRow(row), true, nil
}

// Upsert keys on provider_id. A conflicting row keeps its id and league and
// takes the fresh name and logo.
func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, fmt.Errorf("validate team: %w", err)
	}

	insertModel := teamInsertModel{
		ID:         t.ID,
		ProviderID: t.ProviderID,
		Name:       t.Name,
		ShortCode:  t.ShortCode,
		LogoURL:    nullableString(t.LogoURL),
		LeagueID:   nullableString(t.LeagueID),
	}

	query, args, err := qb.InsertModel("teams", insertModel, `ON CONFLICT (provider_id)
DO UPDATE SET
    name = EXCLUDED.name,
    logo_url = EXCLUDED.logo_url,
    updated_at = NOW()
RETURNING (xmax = 0)`)
	if err != nil {
		return false, fmt.Errorf("build upsert team query: %w", err)
	}

	var created bool
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return false, fmt.Errorf("upsert team provider_id=%s: %w", t.ProviderID, err)
	}
	return created, nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}
	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}
	return r.selectTeams(ctx, query, args)
}

func (r *TeamRepository) selectTeams(ctx context.Context, query string, args []any) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTeamRow(row))
	}
	return out, nil
}

func mapTeamRow(row teamTableModel) team.Team {
	return team.Team{
		ID:         row.ID,
		ProviderID: row.ProviderID,
		Name:       row.Name,
		ShortCode:  row.ShortCode,
		LogoURL:    stringPtr(row.LogoURL),
		LeagueID:   stringPtr(row.LeagueID),
	}
}
