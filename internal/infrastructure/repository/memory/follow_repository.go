package memory

import (
	"context"
	"sync"

	"github.com/myteamshq/sports-hub/internal/domain/follow"
)

type followKey struct {
	userID string
	teamID string
}

type FollowRepository struct {
	mu    sync.RWMutex
	items map[followKey]follow.Follow
	order []followKey
}

func NewFollowRepository() *FollowRepository {
	return &FollowRepository{
		items: make(map[followKey]follow.Follow),
	}
}

func (r *FollowRepository) Create(_ context.Context, f follow.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := followKey{userID: f.UserID, teamID: f.TeamID}
	if _, ok := r.items[key]; ok {
		return nil
	}

	r.items[key] = f
	r.order = append(r.order, key)
	return nil
}

func (r *FollowRepository) Delete(_ context.Context, userID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := followKey{userID: userID, teamID: teamID}
	if _, ok := r.items[key]; !ok {
		return nil
	}

	delete(r.items, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *FollowRepository) ListTeamIDsByUser(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for _, key := range r.order {
		if key.userID == userID {
			out = append(out, key.teamID)
		}
	}
	return out, nil
}

func (r *FollowRepository) ListUserIDsByTeam(_ context.Context, teamID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for _, key := range r.order {
		if key.teamID == teamID {
			out = append(out, key.userID)
		}
	}
	return out, nil
}
