package memory

import (
	"context"
	"sync"

	"github.com/myteamshq/sports-hub/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
	order []string
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		items: make(map[string]team.Team),
	}
}

func (r *TeamRepository) GetByProviderID(_ context.Context, providerID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[providerID]
	if !ok {
		return team.Team{}, false, nil
	}
	return t, true, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.items {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Upsert(_ context.Context, t team.Team) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[t.ProviderID]
	if ok {
		existing.Name = t.Name
		existing.LogoURL = t.LogoURL
		r.items[t.ProviderID] = existing
		return false, nil
	}

	r.items[t.ProviderID] = t
	r.order = append(r.order, t.ProviderID)
	return true, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, providerID := range r.order {
		t := r.items[providerID]
		if t.LeagueID != nil && *t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, providerID := range r.order {
		out = append(out, r.items[providerID])
	}
	return out, nil
}
