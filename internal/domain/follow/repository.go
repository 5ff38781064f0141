package follow

import "context"

type Repository interface {
	// Create is idempotent: following an already-followed team is a no-op.
	Create(ctx context.Context, f Follow) error
	Delete(ctx context.Context, userID, teamID string) error
	ListTeamIDsByUser(ctx context.Context, userID string) ([]string, error)
	ListUserIDsByTeam(ctx context.Context, teamID string) ([]string, error)
}
