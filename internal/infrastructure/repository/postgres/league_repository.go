package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/myteamshq/sports-hub/internal/domain/league"
	qb "github.com/myteamshq/sports-hub/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByProviderID(ctx context.Context, providerID string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("provider_id", providerID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build select league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league provider_id=%s: %w", providerID, err)
	}
	return mapLeagueRow(row), true, nil
}

// Upsert keys on provider_id. A conflicting row keeps its id and country and
// takes the fresh name and season. The RETURNING clause reports whether the
// statement inserted a new row.
func (r *LeagueRepository) Upsert(ctx context.Context, l league.League) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, fmt.Errorf("validate league: %w", err)
	}

	insertModel := leagueInsertModel{
		ID:         l.ID,
		ProviderID: l.ProviderID,
		Name:       l.Name,
		Country:    l.Country,
		Season:     l.Season,
	}

	query, args, err := qb.InsertModel("leagues", insertModel, `ON CONFLICT (provider_id)
DO UPDATE SET
    name = EXCLUDED.name,
    season = EXCLUDED.season,
    updated_at = NOW()
RETURNING (xmax = 0)`)
	if err != nil {
		return false, fmt.Errorf("build upsert league query: %w", err)
	}

	var created bool
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return false, fmt.Errorf("upsert league provider_id=%s: %w", l.ProviderID, err)
	}
	return created, nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("country", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapLeagueRow(row))
	}
	return out, nil
}

func mapLeagueRow(row leagueTableModel) league.League {
	return league.League{
		ID:         row.ID,
		ProviderID: row.ProviderID,
		Name:       row.Name,
		Country:    row.Country,
		Season:     row.Season,
	}
}
