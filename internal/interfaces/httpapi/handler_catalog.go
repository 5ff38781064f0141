package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/myteamshq/sports-hub/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.catalogService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(ctx, l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teams, err := h.catalogService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	teams, err := h.catalogService.SearchTeams(ctx, query, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "search teams failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamSearchDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, externalTeamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueStandings")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	season := strings.TrimSpace(r.URL.Query().Get("season"))

	rows, err := h.standingService.GetTable(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
