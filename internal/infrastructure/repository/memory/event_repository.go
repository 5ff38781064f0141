package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/myteamshq/sports-hub/internal/domain/event"
)

type EventRepository struct {
	mu    sync.RWMutex
	items []event.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Append(_ context.Context, events []event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, events...)
	return nil
}

func (r *EventRepository) ListByFixture(_ context.Context, fixtureID string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0)
	for _, e := range r.items {
		if e.FixtureID == fixtureID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
