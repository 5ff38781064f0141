package fixture

import (
	"context"
	"time"
)

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	GetByProviderID(ctx context.Context, providerID string) (Fixture, bool, error)
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	// Upsert inserts by provider id or refreshes status, scores and
	// updated_at on an existing row, in a single atomic statement. The bool
	// result reports whether a new row was created.
	Upsert(ctx context.Context, f Fixture) (bool, error)
	// ListByTeam returns fixtures where the team plays home or away with a
	// start time inside [from, to], ordered by start time.
	ListByTeam(ctx context.Context, teamID string, from, to time.Time) ([]Fixture, error)
	// ListLive returns fixtures that kicked off within the last four hours
	// and are not in a not-started, finished or cancelled-like status.
	ListLive(ctx context.Context, now time.Time) ([]Fixture, error)
}
