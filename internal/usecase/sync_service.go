package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/myteamshq/sports-hub/internal/domain/event"
	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	"github.com/myteamshq/sports-hub/internal/domain/follow"
	"github.com/myteamshq/sports-hub/internal/domain/league"
	"github.com/myteamshq/sports-hub/internal/domain/standing"
	"github.com/myteamshq/sports-hub/internal/domain/team"
	"github.com/myteamshq/sports-hub/internal/platform/cache"
	"github.com/myteamshq/sports-hub/internal/platform/id"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
)

const fixtureWindowBackward = 24 * time.Hour

// SyncService reconciles provider snapshots into the local store. Every
// operation is idempotent except event sync, which appends on every run.
type SyncService struct {
	provider     FootballDataProvider
	leagueRepo   league.Repository
	teamRepo     team.Repository
	fixtureRepo  fixture.Repository
	eventRepo    event.Repository
	standingRepo standing.Repository
	followRepo   follow.Repository
	cache        cache.Cache
	ids          id.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewSyncService(
	provider FootballDataProvider,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	eventRepo event.Repository,
	standingRepo standing.Repository,
	followRepo follow.Repository,
	cacheStore cache.Cache,
	ids id.Generator,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SyncService{
		provider:     provider,
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		eventRepo:    eventRepo,
		standingRepo: standingRepo,
		followRepo:   followRepo,
		cache:        cacheStore,
		ids:          ids,
		logger:       logger,
		now:          time.Now,
	}
}

// SyncLeagues upserts the provider's league list and returns how many rows
// were newly created. Existing rows get their name and season refreshed.
func (s *SyncService) SyncLeagues(ctx context.Context, country, season string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncLeagues")
	defer span.End()

	if err := s.ready(); err != nil {
		return 0, err
	}

	externals, err := s.provider.FetchLeagues(ctx, strings.TrimSpace(country), strings.TrimSpace(season))
	if err != nil {
		return 0, fmt.Errorf("fetch leagues from provider: %w", err)
	}

	created := 0
	for _, ext := range externals {
		if strings.TrimSpace(ext.ProviderID) == "" {
			return created, fmt.Errorf("%w: provider returned league without provider id", ErrInvalidInput)
		}

		newID, err := s.ids.NewID()
		if err != nil {
			return created, fmt.Errorf("generate league id: %w", err)
		}
		wasCreated, err := s.leagueRepo.Upsert(ctx, league.League{
			ID:         newID,
			ProviderID: ext.ProviderID,
			Name:       ext.Name,
			Country:    ext.Country,
			Season:     ext.Season,
		})
		if err != nil {
			return created, fmt.Errorf("upsert league provider_id=%s: %w", ext.ProviderID, err)
		}
		if wasCreated {
			created++
		}
	}

	s.logger.InfoContext(ctx, "league sync finished",
		"fetched", len(externals),
		"created", created,
	)
	return created, nil
}

// SyncTeams upserts the teams of one league and returns the created count.
// The league reference stays null when the league is not known locally yet.
func (s *SyncService) SyncTeams(ctx context.Context, leagueProviderID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncTeams")
	defer span.End()

	if err := s.ready(); err != nil {
		return 0, err
	}
	leagueProviderID = strings.TrimSpace(leagueProviderID)
	if leagueProviderID == "" {
		return 0, fmt.Errorf("%w: league provider id is required", ErrInvalidInput)
	}

	var leagueID *string
	if lg, ok, err := s.leagueRepo.GetByProviderID(ctx, leagueProviderID); err != nil {
		return 0, fmt.Errorf("resolve league provider_id=%s: %w", leagueProviderID, err)
	} else if ok {
		leagueID = &lg.ID
	}

	externals, err := s.provider.FetchTeams(ctx, leagueProviderID)
	if err != nil {
		return 0, fmt.Errorf("fetch teams from provider league=%s: %w", leagueProviderID, err)
	}

	created := 0
	for _, ext := range externals {
		if strings.TrimSpace(ext.ProviderID) == "" {
			return created, fmt.Errorf("%w: provider returned team without provider id", ErrInvalidInput)
		}

		newID, err := s.ids.NewID()
		if err != nil {
			return created, fmt.Errorf("generate team id: %w", err)
		}
		var logo *string
		if ext.LogoURL != "" {
			logoURL := ext.LogoURL
			logo = &logoURL
		}
		wasCreated, err := s.teamRepo.Upsert(ctx, team.Team{
			ID:         newID,
			ProviderID: ext.ProviderID,
			Name:       ext.Name,
			ShortCode:  ext.ShortCode,
			LogoURL:    logo,
			LeagueID:   leagueID,
		})
		if err != nil {
			return created, fmt.Errorf("upsert team provider_id=%s: %w", ext.ProviderID, err)
		}
		if wasCreated {
			created++
		}
	}

	s.logger.InfoContext(ctx, "team sync finished",
		"league_provider_id", leagueProviderID,
		"fetched", len(externals),
		"created", created,
	)
	return created, nil
}

// SyncFixtures pulls the team's fixtures inside [now-24h, now+hoursForward]
// and upserts them. Fixtures referencing an unknown league or team are
// skipped silently. The returned count covers created rows only; conflicts
// update status, scores and updated_at. Dashboards of users following either
// side are invalidated.
func (s *SyncService) SyncFixtures(ctx context.Context, teamProviderID string, hoursForward int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncFixtures")
	defer span.End()

	if err := s.ready(); err != nil {
		return 0, err
	}
	teamProviderID = strings.TrimSpace(teamProviderID)
	if teamProviderID == "" {
		return 0, fmt.Errorf("%w: team provider id is required", ErrInvalidInput)
	}
	if hoursForward <= 0 {
		return 0, fmt.Errorf("%w: hours forward must be positive", ErrInvalidInput)
	}

	now := s.now().UTC()
	from := now.Add(-fixtureWindowBackward)
	to := now.Add(time.Duration(hoursForward) * time.Hour)

	externals, err := s.provider.FetchFixtures(ctx, teamProviderID, from, to)
	if err != nil {
		return 0, fmt.Errorf("fetch fixtures from provider team=%s: %w", teamProviderID, err)
	}

	created := 0
	skipped := 0
	touchedTeams := make(map[string]struct{}, 2)
	for _, ext := range externals {
		if strings.TrimSpace(ext.ProviderID) == "" {
			return created, fmt.Errorf("%w: provider returned fixture without provider id", ErrInvalidInput)
		}
		if ext.StartTime.IsZero() {
			return created, fmt.Errorf("%w: provider returned fixture %s without start time", ErrInvalidInput, ext.ProviderID)
		}

		lg, lgOK, err := s.leagueRepo.GetByProviderID(ctx, ext.LeagueProviderID)
		if err != nil {
			return created, fmt.Errorf("resolve fixture league provider_id=%s: %w", ext.LeagueProviderID, err)
		}
		home, homeOK, err := s.teamRepo.GetByProviderID(ctx, ext.HomeTeamProviderID)
		if err != nil {
			return created, fmt.Errorf("resolve home team provider_id=%s: %w", ext.HomeTeamProviderID, err)
		}
		away, awayOK, err := s.teamRepo.GetByProviderID(ctx, ext.AwayTeamProviderID)
		if err != nil {
			return created, fmt.Errorf("resolve away team provider_id=%s: %w", ext.AwayTeamProviderID, err)
		}
		if !lgOK || !homeOK || !awayOK {
			skipped++
			s.logger.DebugContext(ctx, "skip fixture with unresolved references",
				"fixture_provider_id", ext.ProviderID,
				"league_resolved", lgOK,
				"home_resolved", homeOK,
				"away_resolved", awayOK,
			)
			continue
		}

		newID, err := s.ids.NewID()
		if err != nil {
			return created, fmt.Errorf("generate fixture id: %w", err)
		}
		wasCreated, err := s.fixtureRepo.Upsert(ctx, fixture.Fixture{
			ID:         newID,
			ProviderID: ext.ProviderID,
			LeagueID:   lg.ID,
			Season:     strings.TrimSpace(ext.Season),
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			StartTime:  ext.StartTime.UTC(),
			Status:     fixture.NormalizeStatus(ext.Status),
			HomeScore:  ext.HomeScore,
			AwayScore:  ext.AwayScore,
			UpdatedAt:  now,
		})
		if err != nil {
			return created, fmt.Errorf("upsert fixture provider_id=%s: %w", ext.ProviderID, err)
		}
		if wasCreated {
			created++
		}
		touchedTeams[home.ID] = struct{}{}
		touchedTeams[away.ID] = struct{}{}
	}

	s.invalidateDashboardsForTeams(ctx, touchedTeams)

	s.logger.InfoContext(ctx, "fixture sync finished",
		"team_provider_id", teamProviderID,
		"fetched", len(externals),
		"created", created,
		"skipped", skipped,
	)
	return created, nil
}

// SyncEvents appends the provider's event list for one fixture. Unknown
// fixtures are a silent no-op. Re-running appends the same events again;
// deduplication is intentionally not attempted here.
func (s *SyncService) SyncEvents(ctx context.Context, fixtureProviderID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncEvents")
	defer span.End()

	if err := s.ready(); err != nil {
		return 0, err
	}
	fixtureProviderID = strings.TrimSpace(fixtureProviderID)
	if fixtureProviderID == "" {
		return 0, fmt.Errorf("%w: fixture provider id is required", ErrInvalidInput)
	}

	fx, ok, err := s.fixtureRepo.GetByProviderID(ctx, fixtureProviderID)
	if err != nil {
		return 0, fmt.Errorf("resolve fixture provider_id=%s: %w", fixtureProviderID, err)
	}
	if !ok {
		s.logger.DebugContext(ctx, "skip event sync for unknown fixture",
			"fixture_provider_id", fixtureProviderID,
		)
		return 0, nil
	}

	externals, err := s.provider.FetchEvents(ctx, fixtureProviderID)
	if err != nil {
		return 0, fmt.Errorf("fetch events from provider fixture=%s: %w", fixtureProviderID, err)
	}
	if len(externals) == 0 {
		return 0, nil
	}

	now := s.now().UTC()
	events := make([]event.Event, 0, len(externals))
	for _, ext := range externals {
		var teamID *string
		if strings.TrimSpace(ext.TeamProviderID) != "" {
			tm, ok, err := s.teamRepo.GetByProviderID(ctx, ext.TeamProviderID)
			if err != nil {
				return 0, fmt.Errorf("resolve event team provider_id=%s: %w", ext.TeamProviderID, err)
			}
			if ok {
				teamID = &tm.ID
			}
		}

		// The payload is stored exactly as the provider sent it. An empty
		// payload stays empty rather than becoming an encoded nil map.
		payload := ""
		if len(ext.Payload) > 0 {
			encoded, err := sonic.MarshalString(ext.Payload)
			if err != nil {
				return 0, fmt.Errorf("encode event payload fixture=%s: %w", fixtureProviderID, err)
			}
			payload = encoded
		}
		newID, err := s.ids.NewID()
		if err != nil {
			return 0, fmt.Errorf("generate event id: %w", err)
		}
		events = append(events, event.Event{
			ID:         newID,
			FixtureID:  fx.ID,
			TeamID:     teamID,
			Type:       ext.Type,
			Minute:     ext.Minute,
			PlayerName: ext.PlayerName,
			Payload:    payload,
			CreatedAt:  now,
		})
	}

	if err := s.eventRepo.Append(ctx, events); err != nil {
		return 0, fmt.Errorf("append events fixture=%s: %w", fixtureProviderID, err)
	}

	s.logger.InfoContext(ctx, "event sync finished",
		"fixture_provider_id", fixtureProviderID,
		"appended", len(events),
	)
	return len(events), nil
}

// SyncStandings overwrites the league table for one season inside a single
// transaction and returns the number of rows written. Unknown leagues are a
// silent no-op; rows for unknown teams are skipped.
func (s *SyncService) SyncStandings(ctx context.Context, leagueProviderID, season string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncStandings")
	defer span.End()

	if err := s.ready(); err != nil {
		return 0, err
	}
	leagueProviderID = strings.TrimSpace(leagueProviderID)
	season = strings.TrimSpace(season)
	if leagueProviderID == "" {
		return 0, fmt.Errorf("%w: league provider id is required", ErrInvalidInput)
	}
	if season == "" {
		return 0, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	lg, ok, err := s.leagueRepo.GetByProviderID(ctx, leagueProviderID)
	if err != nil {
		return 0, fmt.Errorf("resolve league provider_id=%s: %w", leagueProviderID, err)
	}
	if !ok {
		s.logger.DebugContext(ctx, "skip standings sync for unknown league",
			"league_provider_id", leagueProviderID,
		)
		return 0, nil
	}

	externals, err := s.provider.FetchStandings(ctx, leagueProviderID, season)
	if err != nil {
		return 0, fmt.Errorf("fetch standings from provider league=%s: %w", leagueProviderID, err)
	}

	now := s.now().UTC()
	skipped := 0
	rows := make([]standing.Standing, 0, len(externals))
	for _, ext := range externals {
		tm, ok, err := s.teamRepo.GetByProviderID(ctx, ext.TeamProviderID)
		if err != nil {
			return 0, fmt.Errorf("resolve standing team provider_id=%s: %w", ext.TeamProviderID, err)
		}
		if !ok {
			skipped++
			s.logger.DebugContext(ctx, "skip standing row for unknown team",
				"league_provider_id", leagueProviderID,
				"team_provider_id", ext.TeamProviderID,
			)
			continue
		}

		rows = append(rows, standing.Standing{
			LeagueID:     lg.ID,
			Season:       season,
			TeamID:       tm.ID,
			Rank:         ext.Rank,
			Played:       ext.Played,
			Win:          ext.Win,
			Draw:         ext.Draw,
			Loss:         ext.Loss,
			GoalsFor:     ext.GoalsFor,
			GoalsAgainst: ext.GoalsAgainst,
			GoalDiff:     ext.GoalDiff,
			Points:       ext.Points,
			UpdatedAt:    now,
		})
	}

	if len(rows) > 0 {
		if err := s.standingRepo.UpsertMany(ctx, rows); err != nil {
			return 0, fmt.Errorf("upsert standings league=%s season=%s: %w", lg.ID, season, err)
		}
	}

	if s.cache != nil {
		s.cache.DeletePrefix(ctx, standingsCacheKey(lg.ID, season))
	}

	s.logger.InfoContext(ctx, "standings sync finished",
		"league_provider_id", leagueProviderID,
		"season", season,
		"written", len(rows),
		"skipped", skipped,
	)
	return len(rows), nil
}

func (s *SyncService) ready() error {
	if s.provider == nil {
		return fmt.Errorf("%w: football data provider is not configured", ErrDependencyUnavailable)
	}
	if s.leagueRepo == nil || s.teamRepo == nil || s.fixtureRepo == nil ||
		s.eventRepo == nil || s.standingRepo == nil || s.ids == nil {
		return fmt.Errorf("%w: sync service is not fully configured", ErrDependencyUnavailable)
	}
	return nil
}

func (s *SyncService) invalidateDashboardsForTeams(ctx context.Context, teamIDs map[string]struct{}) {
	if s.cache == nil || s.followRepo == nil || len(teamIDs) == 0 {
		return
	}

	seen := make(map[string]struct{})
	for teamID := range teamIDs {
		userIDs, err := s.followRepo.ListUserIDsByTeam(ctx, teamID)
		if err != nil {
			// Cache invalidation is best effort; stale dashboards expire by TTL.
			s.logger.WarnContext(ctx, "list followers for cache invalidation failed",
				"team_id", teamID,
				"error", err,
			)
			continue
		}
		for _, userID := range userIDs {
			if _, done := seen[userID]; done {
				continue
			}
			seen[userID] = struct{}{}
			s.cache.DeletePrefix(ctx, dashboardCachePrefix(userID))
		}
	}
}
