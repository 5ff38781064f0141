package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/myteamshq/sports-hub/internal/domain/standing"
	qb "github.com/myteamshq/sports-hub/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

// UpsertMany overwrites every column of each (league_id, season, team_id) row
// inside one transaction, so concurrent table reads see either the previous
// table or the new one, never a mix.
func (r *StandingRepository) UpsertMany(ctx context.Context, standings []standing.Standing) error {
	if len(standings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range standings {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("validate standing: %w", err)
		}

		insertModel := standingTableModel{
			LeagueID:     s.LeagueID,
			Season:       s.Season,
			TeamID:       s.TeamID,
			Rank:         s.Rank,
			Played:       s.Played,
			Win:          s.Win,
			Draw:         s.Draw,
			Loss:         s.Loss,
			GoalsFor:     s.GoalsFor,
			GoalsAgainst: s.GoalsAgainst,
			GoalDiff:     s.GoalDiff,
			Points:       s.Points,
			UpdatedAt:    s.UpdatedAt.UTC(),
		}

		query, args, err := qb.InsertModel("standings", insertModel, `ON CONFLICT (league_id, season, team_id)
DO UPDATE SET
    rank = EXCLUDED.rank,
    played = EXCLUDED.played,
    win = EXCLUDED.win,
    draw = EXCLUDED.draw,
    loss = EXCLUDED.loss,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    goal_diff = EXCLUDED.goal_diff,
    points = EXCLUDED.points,
    updated_at = EXCLUDED.updated_at`)
		if err != nil {
			return fmt.Errorf("build upsert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert standing league_id=%s team_id=%s: %w", s.LeagueID, s.TeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert standings tx: %w", err)
	}
	return nil
}

func (r *StandingRepository) ListByLeagueSeason(ctx context.Context, leagueID, season string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season", season),
		).
		OrderBy("rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings league_id=%s season=%s: %w", leagueID, season, err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			LeagueID:     row.LeagueID,
			Season:       row.Season,
			TeamID:       row.TeamID,
			Rank:         row.Rank,
			Played:       row.Played,
			Win:          row.Win,
			Draw:         row.Draw,
			Loss:         row.Loss,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalDiff:     row.GoalDiff,
			Points:       row.Points,
			UpdatedAt:    row.UpdatedAt.UTC(),
		})
	}
	return out, nil
}
