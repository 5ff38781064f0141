package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/myteamshq/sports-hub/internal/usecase"
)

const defaultFixtureWindowDays = 7

func (h *Handler) ListTeamFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamFixtures")
	defer span.End()

	teamID := r.PathValue("teamID")
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -defaultFixtureWindowDays)
	to := now.AddDate(0, 0, defaultFixtureWindowDays)

	if raw := strings.TrimSpace(r.URL.Query().Get("from")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: from must be RFC3339", usecase.ErrInvalidInput))
			return
		}
		from = parsed
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("to")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: to must be RFC3339", usecase.ErrInvalidInput))
			return
		}
		to = parsed
	}

	fixtures, err := h.fixtureService.ListByTeam(ctx, teamID, from, to)
	if err != nil {
		h.logger.WarnContext(ctx, "list team fixtures failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTOs(ctx, fixtures))
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	item, err := h.fixtureService.GetByID(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, item))
}

func (h *Handler) ListFixtureEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureEvents")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	events, err := h.fixtureService.ListEvents(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixture events failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, ev := range events {
		items = append(items, eventToDTO(ctx, ev))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
