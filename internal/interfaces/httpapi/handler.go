package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/myteamshq/sports-hub/internal/domain/event"
	"github.com/myteamshq/sports-hub/internal/domain/fixture"
	"github.com/myteamshq/sports-hub/internal/domain/league"
	"github.com/myteamshq/sports-hub/internal/domain/standing"
	"github.com/myteamshq/sports-hub/internal/domain/team"
	"github.com/myteamshq/sports-hub/internal/platform/logging"
	"github.com/myteamshq/sports-hub/internal/usecase"
)

type Handler struct {
	catalogService   *usecase.CatalogService
	fixtureService   *usecase.FixtureService
	standingService  *usecase.StandingService
	dashboardService *usecase.DashboardService
	followService    *usecase.FollowService
	syncOrchestrator *usecase.SyncOrchestratorService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	fixtureService *usecase.FixtureService,
	standingService *usecase.StandingService,
	dashboardService *usecase.DashboardService,
	followService *usecase.FollowService,
	syncOrchestrator *usecase.SyncOrchestratorService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		catalogService:   catalogService,
		fixtureService:   fixtureService,
		standingService:  standingService,
		dashboardService: dashboardService,
		followService:    followService,
		syncOrchestrator: syncOrchestrator,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  string `json:"season"`
}

type teamDTO struct {
	ID        string  `json:"id"`
	LeagueID  *string `json:"leagueId"`
	Name      string  `json:"name"`
	ShortCode string  `json:"shortCode"`
	LogoURL   *string `json:"logoUrl"`
}

type teamSearchDTO struct {
	ProviderID       string `json:"providerId"`
	LeagueProviderID string `json:"leagueProviderId"`
	Name             string `json:"name"`
	ShortCode        string `json:"shortCode"`
	LogoURL          string `json:"logoUrl"`
}

type fixtureDTO struct {
	ID         string `json:"id"`
	LeagueID   string `json:"leagueId"`
	Season     string `json:"season"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	Kickoff    string `json:"kickoffAt"`
	Status     string `json:"status"`
	HomeScore  *int   `json:"homeScore"`
	AwayScore  *int   `json:"awayScore"`
}

type eventDTO struct {
	ID         string  `json:"id"`
	FixtureID  string  `json:"fixtureId"`
	TeamID     *string `json:"teamId"`
	Type       string  `json:"type"`
	Minute     int     `json:"minute"`
	PlayerName string  `json:"playerName"`
}

type standingDTO struct {
	TeamID       string `json:"teamId"`
	Rank         int    `json:"rank"`
	Played       int    `json:"played"`
	Win          int    `json:"win"`
	Draw         int    `json:"draw"`
	Loss         int    `json:"loss"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
	Points       int    `json:"points"`
}

type dashboardDTO struct {
	Teams    []teamDTO    `json:"teams"`
	Recent   []fixtureDTO `json:"recent"`
	Upcoming []fixtureDTO `json:"upcoming"`
}

type followStateDTO struct {
	TeamID    string `json:"teamId"`
	Following bool   `json:"following"`
}

type syncRunDTO struct {
	Scope       string `json:"scope"`
	TargetCount int    `json:"targetCount"`
	RecordCount int    `json:"recordCount"`
	FailedCount int    `json:"failedCount"`
	WorkerCount int    `json:"workerCount"`
	DurationMs  int64  `json:"durationMs"`
}

func leagueToDTO(ctx context.Context, v league.League) leagueDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		ID:      v.ID,
		Name:    v.Name,
		Country: v.Country,
		Season:  v.Season,
	}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:        v.ID,
		LeagueID:  v.LeagueID,
		Name:      v.Name,
		ShortCode: v.ShortCode,
		LogoURL:   v.LogoURL,
	}
}

func externalTeamToDTO(ctx context.Context, v usecase.ExternalTeam) teamSearchDTO {
	ctx, span := startSpan(ctx, "httpapi.externalTeamToDTO")
	defer span.End()

	return teamSearchDTO{
		ProviderID:       v.ProviderID,
		LeagueProviderID: v.LeagueProviderID,
		Name:             v.Name,
		ShortCode:        v.ShortCode,
		LogoURL:          v.LogoURL,
	}
}

func fixtureToDTO(ctx context.Context, v fixture.Fixture) fixtureDTO {
	ctx, span := startSpan(ctx, "httpapi.fixtureToDTO")
	defer span.End()

	return fixtureDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		Season:     v.Season,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		Kickoff:    v.StartTime.UTC().Format(time.RFC3339),
		Status:     v.Status,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
	}
}

func eventToDTO(ctx context.Context, v event.Event) eventDTO {
	ctx, span := startSpan(ctx, "httpapi.eventToDTO")
	defer span.End()

	return eventDTO{
		ID:         v.ID,
		FixtureID:  v.FixtureID,
		TeamID:     v.TeamID,
		Type:       v.Type,
		Minute:     v.Minute,
		PlayerName: v.PlayerName,
	}
}

func standingToDTO(ctx context.Context, v standing.Standing) standingDTO {
	ctx, span := startSpan(ctx, "httpapi.standingToDTO")
	defer span.End()

	return standingDTO{
		TeamID:       v.TeamID,
		Rank:         v.Rank,
		Played:       v.Played,
		Win:          v.Win,
		Draw:         v.Draw,
		Loss:         v.Loss,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
		GoalDiff:     v.GoalDiff,
		Points:       v.Points,
	}
}

func fixturesToDTOs(ctx context.Context, fixtures []fixture.Fixture) []fixtureDTO {
	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(ctx, f))
	}
	return items
}
