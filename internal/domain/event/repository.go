package event

import "context"

type Repository interface {
	Append(ctx context.Context, events []Event) error
	// ListByFixture returns events ordered by creation time, then id.
	ListByFixture(ctx context.Context, fixtureID string) ([]Event, error)
}
