package memory

import (
	"context"
	"sync"

	"github.com/myteamshq/sports-hub/internal/domain/league"
)

// LeagueRepository is the in-memory league.Repository used in dev mode and
// as a test double.
type LeagueRepository struct {
	mu    sync.RWMutex
	items map[string]league.League
	order []string
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{
		items: make(map[string]league.League),
	}
}

func (r *LeagueRepository) GetByProviderID(_ context.Context, providerID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[providerID]
	if !ok {
		return league.League{}, false, nil
	}
	return l, true, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, l league.League) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[l.ProviderID]
	if ok {
		existing.Name = l.Name
		existing.Season = l.Season
		r.items[l.ProviderID] = existing
		return false, nil
	}

	r.items[l.ProviderID] = l
	r.order = append(r.order, l.ProviderID)
	return true, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.order))
	for _, providerID := range r.order {
		out = append(out, r.items[providerID])
	}
	return out, nil
}
