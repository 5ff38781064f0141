package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/myteamshq/sports-hub/internal/usecase"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	daysBack, err := parseDaysParam(r, "days_back")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	daysForward, err := parseDaysParam(r, "days_forward")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(ctx, principal.UserID, daysBack, daysForward)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams := make([]teamDTO, 0, len(dashboard.Teams))
	for _, t := range dashboard.Teams {
		teams = append(teams, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		Teams:    teams,
		Recent:   fixturesToDTOs(ctx, dashboard.Recent),
		Upcoming: fixturesToDTOs(ctx, dashboard.Upcoming),
	})
}

func (h *Handler) FollowTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FollowTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := r.PathValue("teamID")
	if err := h.followService.Follow(ctx, principal.UserID, teamID); err != nil {
		h.logger.WarnContext(ctx, "follow team failed", "user_id", principal.UserID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, followStateDTO{TeamID: teamID, Following: true})
}

func (h *Handler) UnfollowTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnfollowTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	teamID := r.PathValue("teamID")
	if err := h.followService.Unfollow(ctx, principal.UserID, teamID); err != nil {
		h.logger.WarnContext(ctx, "unfollow team failed", "user_id", principal.UserID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, followStateDTO{TeamID: teamID, Following: false})
}

func parseDaysParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return parsed, nil
}
