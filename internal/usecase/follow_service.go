package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/myteamshq/sports-hub/internal/domain/follow"
	"github.com/myteamshq/sports-hub/internal/domain/team"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
)

// FollowService manages the user-to-team follow edges behind the dashboard.
type FollowService struct {
	followRepo follow.Repository
	teamRepo   team.Repository
	cache      cache.Cache
	now        func() time.Time
}

func NewFollowService(
	followRepo follow.Repository,
	teamRepo team.Repository,
	cacheStore cache.Cache,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		teamRepo:   teamRepo,
		cache:      cacheStore,
		now:        time.Now,
	}
}

// Follow is idempotent: following an already-followed team succeeds quietly.
func (s *FollowService) Follow(ctx context.Context, userID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FollowService.Follow")
	defer span.End()

	userID, teamID, err := s.validate(userID, teamID)
	if err != nil {
		return err
	}

	if _, ok, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return fmt.Errorf("get team id=%s: %w", teamID, err)
	} else if !ok {
		return fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	if err := s.followRepo.Create(ctx, follow.Follow{
		UserID:    userID,
		TeamID:    teamID,
		CreatedAt: s.now().UTC(),
	}); err != nil {
		return fmt.Errorf("create follow user=%s team=%s: %w", userID, teamID, err)
	}

	s.invalidateDashboard(ctx, userID)
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, userID, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FollowService.Unfollow")
	defer span.End()

	userID, teamID, err := s.validate(userID, teamID)
	if err != nil {
		return err
	}

	if err := s.followRepo.Delete(ctx, userID, teamID); err != nil {
		return fmt.Errorf("delete follow user=%s team=%s: %w", userID, teamID, err)
	}

	s.invalidateDashboard(ctx, userID)
	return nil
}

func (s *FollowService) validate(userID, teamID string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	teamID = strings.TrimSpace(teamID)
	if userID == "" {
		return "", "", fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	if teamID == "" {
		return "", "", fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	return userID, teamID, nil
}

func (s *FollowService) invalidateDashboard(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(ctx, dashboardCachePrefix(userID))
}
