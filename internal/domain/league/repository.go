package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByProviderID(ctx context.Context, providerID string) (League, bool, error)
	// Upsert inserts by provider id or refreshes name and season on an
	// existing row. The bool result reports whether a new row was created.
	Upsert(ctx context.Context, l League) (bool, error)
	List(ctx context.Context) ([]League, error)
}
