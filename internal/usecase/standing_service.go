package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/myteamshq/sports-hub/internal/domain/standing"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
	"github.com/myteamshq/sports-hub/internal/platform/resilience"
)

// StandingService serves cached league tables. Concurrent misses for the
// same league and season collapse into one repository read.
type StandingService struct {
	standingRepo standing.Repository
	cache        cache.Cache
	ttl          time.Duration
	flight       resilience.SingleFlight
	logger       *logging.Logger
}

func NewStandingService(
	standingRepo standing.Repository,
	cacheStore cache.Cache,
	ttl time.Duration,
	logger *logging.Logger,
) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingService{
		standingRepo: standingRepo,
		cache:        cacheStore,
		ttl:          ttl,
		logger:       logger,
	}
}

func (s *StandingService) GetTable(ctx context.Context, leagueID, season string) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetTable")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	season = strings.TrimSpace(season)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	key := standingsCacheKey(leagueID, season)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var rows []standing.Standing
			if err := sonic.Unmarshal(raw, &rows); err == nil {
				return rows, nil
			}
			s.logger.WarnContext(ctx, "drop unreadable standings cache entry", "key", key)
		}
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		rows, err := s.standingRepo.ListByLeagueSeason(ctx, leagueID, season)
		if err != nil {
			return nil, fmt.Errorf("list standings league=%s season=%s: %w", leagueID, season, err)
		}

		if s.cache != nil {
			if raw, err := sonic.Marshal(rows); err == nil {
				s.cache.Set(ctx, key, raw, s.ttl)
			}
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]standing.Standing)
	if !ok {
		return nil, fmt.Errorf("unexpected standings cache value type %T", value)
	}
	return rows, nil
}
