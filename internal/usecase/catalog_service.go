package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/myteamshq/sports-hub/internal/domain/league"
	"github.com/myteamshq/sports-hub/internal/domain/team"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 25
)

// CatalogService serves the league and team reference data.
type CatalogService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	provider   FootballDataProvider
}

func NewCatalogService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	provider FootballDataProvider,
) *CatalogService {
	return &CatalogService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		provider:   provider,
	}
}

func (s *CatalogService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *CatalogService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeamsByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams league=%s: %w", leagueID, err)
	}
	return teams, nil
}

// SearchTeams queries the provider directly without persisting results, so
// users can find teams the sync has not pulled in yet.
func (s *CatalogService) SearchTeams(ctx context.Context, query string, limit int) ([]ExternalTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.SearchTeams")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: football data provider is not configured", ErrDependencyUnavailable)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	teams, err := s.provider.SearchTeams(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search teams query=%q: %w", query, err)
	}
	return teams, nil
}
