package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/myteamshq/sports-hub/internal/domain/follow"
	qb "github.com/myteamshq/sports-hub/internal/platform/querybuilder"
)

type FollowRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

type followInsertModel struct {
	UserID    string    `db:"user_id"`
	TeamID    string    `db:"team_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Create is idempotent: a duplicate follow keeps its original created_at.
func (r *FollowRepository) Create(ctx context.Context, f follow.Follow) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("validate follow: %w", err)
	}

	insertModel := followInsertModel{
		UserID:    f.UserID,
		TeamID:    f.TeamID,
		CreatedAt: f.CreatedAt.UTC(),
	}

	query, args, err := qb.InsertModel("follows", insertModel, "ON CONFLICT (user_id, team_id) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert follow query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert follow user_id=%s team_id=%s: %w", f.UserID, f.TeamID, err)
	}
	return nil
}

func (r *FollowRepository) Delete(ctx context.Context, userID, teamID string) error {
	query, args, err := qb.DeleteFrom("follows").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete follow query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete follow user_id=%s team_id=%s: %w", userID, teamID, err)
	}
	return nil
}

func (r *FollowRepository) ListTeamIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query, args, err := qb.Select("team_id").From("follows").
		Where(qb.Eq("user_id", userID)).
		OrderBy("created_at", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select follows by user query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select follows user_id=%s: %w", userID, err)
	}
	return out, nil
}

func (r *FollowRepository) ListUserIDsByTeam(ctx context.Context, teamID string) ([]string, error) {
	query, args, err := qb.Select("user_id").From("follows").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at", "user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select follows by team query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select follows team_id=%s: %w", teamID, err)
	}
	return out, nil
}
