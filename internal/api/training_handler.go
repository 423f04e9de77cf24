package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/training"
)

// TrainingHandler handles drill session requests.
type TrainingHandler struct {
	training TrainingService
	logger   *slog.Logger
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(svc TrainingService, logger *slog.Logger) *TrainingHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TrainingHandler")
	}
	return &TrainingHandler{
		training: svc,
		logger:   logger.With(slog.String("component", "training_handler")),
	}
}

// GetStats handles GET /api/training/stats?list=&direction=. The direction
// defaults to forward.
func (h *TrainingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	listID := r.URL.Query().Get("list")
	if listID == "" {
		HandleAPIError(w, r, fmt.Errorf("%w: list is required", ErrBadRequest), "")
		return
	}
	dir := domain.DirectionForward
	if raw := r.URL.Query().Get("direction"); raw != "" {
		parsed, err := domain.ParseDirection(raw)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		dir = parsed
	}

	stats, err := h.training.Stats(r.Context(), listID, dir)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute statistics")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// Next handles POST /api/training/next. It responds 204 when the pool is
// empty.
func (h *TrainingHandler) Next(w http.ResponseWriter, r *http.Request) {
	var req NextRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.training.Next(r.Context(), training.Selection{
		ListID:    req.ListID,
		Mode:      training.Mode(req.Mode),
		Direction: domain.Direction(req.Direction),
	})
	if errors.Is(err, training.ErrNoCard) {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("no card available", slog.String("list_id", req.ListID))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get next card")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// Current handles GET /api/training/current. It responds 204 when there is
// no active card.
func (h *TrainingHandler) Current(w http.ResponseWriter, r *http.Request) {
	card, err := h.training.Current(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get current card")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// Reveal handles POST /api/training/reveal.
func (h *TrainingHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	card, err := h.training.Reveal(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to reveal answer")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// Grade handles POST /api/training/grade. The response carries the updated
// record and the next card, which is absent once the pool is empty.
func (h *TrainingHandler) Grade(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.training.Grade(r.Context(), *req.Correct)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to grade card")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
