package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByProviderID(ctx context.Context, providerID string) (Team, bool, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	// Upsert inserts by provider id or refreshes name and logo on an
	// existing row. The bool result reports whether a new row was created.
	Upsert(ctx context.Context, t Team) (bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Team, error)
	List(ctx context.Context) ([]Team, error)
}
