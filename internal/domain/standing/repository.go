package standing

import "context"

type Repository interface {
	// UpsertMany overwrites every field of each (league, season, team) row
	// inside one transaction so a table read never sees a half-applied sync.
	UpsertMany(ctx context.Context, standings []Standing) error
	// ListByLeagueSeason returns rows ordered by rank.
	ListByLeagueSeason(ctx context.Context, leagueID, season string) ([]Standing, error)
}
