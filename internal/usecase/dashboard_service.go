package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sourcegraph/conc/pool"

	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	"github.com/myteamshq/sports-hub/internal/domain/follow"
	"github.com/myteamshq/sports-hub/internal/domain/team"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

const (
	defaultDashboardDays  = 7
	maxDashboardDays      = 30
	dashboardFetchWorkers = 4
)

// Dashboard is the personalized view for one user: the teams they follow
// plus those teams' fixtures inside the requested window.
type Dashboard struct {
	Teams    []team.Team       `json:"teams"`
	Recent   []fixture.Fixture `json:"recent"`
	Upcoming []fixture.Fixture `json:"upcoming"`
}

type DashboardService struct {
	followRepo  follow.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	cache       cache.Cache
	ttl         time.Duration
	logger      *logging.Logger
	now         func() time.Time
}

func NewDashboardService(
	followRepo follow.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	cacheStore cache.Cache,
	ttl time.Duration,
	logger *logging.Logger,
) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DashboardService{
		followRepo:  followRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		cache:       cacheStore,
		ttl:         ttl,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID string, daysBack, daysForward int) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetDashboard")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Dashboard{}, fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}
	daysBack = normalizeDashboardDays(daysBack)
	daysForward = normalizeDashboardDays(daysForward)

	key := dashboardCacheKey(userID, daysBack, daysForward)
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, key); ok {
			var cached Dashboard
			if err := sonic.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			s.logger.WarnContext(ctx, "drop unreadable dashboard cache entry", "key", key)
		}
	}

	teamIDs, err := s.followRepo.ListTeamIDsByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list followed teams user=%s: %w", userID, err)
	}

	dashboard, err := s.buildDashboard(ctx, teamIDs, daysBack, daysForward)
	if err != nil {
		return Dashboard{}, err
	}

	if s.cache != nil {
		if raw, err := sonic.Marshal(dashboard); err == nil {
			s.cache.Set(ctx, key, raw, s.ttl)
		}
	}
	return dashboard, nil
}

func (s *DashboardService) buildDashboard(ctx context.Context, teamIDs []string, daysBack, daysForward int) (Dashboard, error) {
	out := Dashboard{
		Teams:    make([]team.Team, 0, len(teamIDs)),
		Recent:   []fixture.Fixture{},
		Upcoming: []fixture.Fixture{},
	}
	if len(teamIDs) == 0 {
		return out, nil
	}

	now := s.now().UTC()
	from := now.AddDate(0, 0, -daysBack)
	to := now.AddDate(0, 0, daysForward)

	for _, teamID := range teamIDs {
		tm, ok, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return Dashboard{}, fmt.Errorf("get followed team id=%s: %w", teamID, err)
		}
		if !ok {
			// The team row can disappear between follow and read.
			continue
		}
		out.Teams = append(out.Teams, tm)
	}
	sort.Slice(out.Teams, func(i, j int) bool { return out.Teams[i].Name < out.Teams[j].Name })

	fetch := pool.NewWithResults[[]fixture.Fixture]().WithContext(ctx).WithMaxGoroutines(dashboardFetchWorkers)
	for _, tm := range out.Teams {
		teamID := tm.ID
		fetch.Go(func(ctx context.Context) ([]fixture.Fixture, error) {
			fixtures, err := s.fixtureRepo.ListByTeam(ctx, teamID, from, to)
			if err != nil {
				return nil, fmt.Errorf("list fixtures team=%s: %w", teamID, err)
			}
			return fixtures, nil
		})
	}
	perTeam, err := fetch.Wait()
	if err != nil {
		return Dashboard{}, err
	}

	seen := make(map[string]struct{})
	for _, fixtures := range perTeam {
		for _, fx := range fixtures {
			if _, dup := seen[fx.ID]; dup {
				continue
			}
			seen[fx.ID] = struct{}{}
			if fx.StartTime.Before(now) {
				out.Recent = append(out.Recent, fx)
			} else {
				out.Upcoming = append(out.Upcoming, fx)
			}
		}
	}

	// Recent newest first, upcoming soonest first.
	sort.Slice(out.Recent, func(i, j int) bool { return out.Recent[i].StartTime.After(out.Recent[j].StartTime) })
	sort.Slice(out.Upcoming, func(i, j int) bool { return out.Upcoming[i].StartTime.Before(out.Upcoming[j].StartTime) })

	return out, nil
}

func normalizeDashboardDays(days int) int {
	if days <= 0 {
		return defaultDashboardDays
	}
	if days > maxDashboardDays {
		return maxDashboardDays
	}
	return days
}
