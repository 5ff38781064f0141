package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/myteamshq/sports-hub/internal/usecase"
)

type runSyncRequest struct {
	Scope        string `json:"scope" validate:"required,oneof=fixtures standings events"`
	HoursForward int    `json:"hours_forward" validate:"omitempty,min=1,max=336"`
	MaxWorkers   int    `json:"max_workers" validate:"omitempty,min=1,max=16"`
}

func (h *Handler) RunSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSync")
	defer span.End()

	var req runSyncRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncOrchestrator.Run(ctx, usecase.SyncRunInput{
		Scope:        req.Scope,
		HoursForward: req.HoursForward,
		MaxWorkers:   req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "sync run failed", "scope", req.Scope, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncRunDTO{
		Scope:       result.Scope,
		TargetCount: result.TargetCount,
		RecordCount: result.RecordCount,
		FailedCount: result.FailedCount,
		WorkerCount: result.WorkerCount,
		DurationMs:  result.DurationMs,
	})
}
