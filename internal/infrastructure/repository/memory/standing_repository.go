package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/myteamshq/sports-hub/internal/domain/standing"
)

type standingKey struct {
	leagueID string
	season   string
	teamID   string
}

type StandingRepository struct {
	mu    sync.RWMutex
	items map[standingKey]standing.Standing
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{
		items: make(map[standingKey]standing.Standing),
	}
}

func (r *StandingRepository) UpsertMany(_ context.Context, standings []standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range standings {
		key := standingKey{leagueID: row.LeagueID, season: row.Season, teamID: row.TeamID}
		r.items[key] = row
	}
	return nil
}

func (r *StandingRepository) ListByLeagueSeason(_ context.Context, leagueID, season string) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for key, row := range r.items {
		if key.leagueID == leagueID && key.season == season {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}
