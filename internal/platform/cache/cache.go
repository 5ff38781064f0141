package cache

import (
	"context"
	"time"
)

// Cache is a best-effort byte store for derived read models. Implementations
// must treat every operation as non-critical: a miss or a failed write only
// costs a recompute.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	DeletePrefix(ctx context.Context, prefix string)
}
