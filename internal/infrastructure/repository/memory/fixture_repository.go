package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/myteamshq/sports-hub/internal/domain/fixture"
)

const liveLookback = 4 * time.Hour

type FixtureRepository struct {
	mu    sync.RWMutex
	items map[string]fixture.Fixture
	order []string
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{
		items: make(map[string]fixture.Fixture),
	}
}

func (r *FixtureRepository) GetByProviderID(_ context.Context, providerID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[providerID]
	if !ok {
		return fixture.Fixture{}, false, nil
	}
	return f, true, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.items {
		if f.ID == fixtureID {
			return f, true, nil
		}
	}
	return fixture.Fixture{}, false, nil
}

func (r *FixtureRepository) Upsert(_ context.Context, f fixture.Fixture) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[f.ProviderID]
	if ok {
		existing.Status = f.Status
		existing.HomeScore = f.HomeScore
		existing.AwayScore = f.AwayScore
		existing.UpdatedAt = f.UpdatedAt
		r.items[f.ProviderID] = existing
		return false, nil
	}

	r.items[f.ProviderID] = f
	r.order = append(r.order, f.ProviderID)
	return true, nil
}

func (r *FixtureRepository) ListByTeam(_ context.Context, teamID string, from, to time.Time) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, providerID := range r.order {
		f := r.items[providerID]
		if f.HomeTeamID != teamID && f.AwayTeamID != teamID {
			continue
		}
		if f.StartTime.Before(from) || f.StartTime.After(to) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *FixtureRepository) ListLive(_ context.Context, now time.Time) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := now.Add(-liveLookback)
	out := make([]fixture.Fixture, 0)
	for _, providerID := range r.order {
		f := r.items[providerID]
		status := fixture.NormalizeStatus(f.Status)
		if status == fixture.StatusNotStarted || status == fixture.StatusTBD {
			continue
		}
		if fixture.IsFinishedStatus(status) || fixture.IsCancelledLikeStatus(status) {
			continue
		}
		if f.StartTime.Before(cutoff) || f.StartTime.After(now) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}
