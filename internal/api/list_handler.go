package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/spreadsheet"
)

// MaxUploadBytes caps spreadsheet uploads.
const MaxUploadBytes = 10 << 20

// ListHandler handles list and pair requests.
type ListHandler struct {
	lists  ListService
	logger *slog.Logger
}

// NewListHandler creates a new ListHandler.
func NewListHandler(lists ListService, logger *slog.Logger) *ListHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ListHandler")
	}
	return &ListHandler{
		lists:  lists,
		logger: logger.With(slog.String("component", "list_handler")),
	}
}

// decodeAndValidate reads a JSON body into v. It writes the error response
// and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrBadRequest, err), "")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

// GetLists handles GET /api/lists.
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	summaries := h.lists.Lists(r.Context())
	out := make([]ListResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, listToResponse(s))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// CreateList handles POST /api/lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.lists.CreateList(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create list")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, wordListToResponse(list))
}

// RenameList handles PUT /api/lists/{id}.
func (h *ListHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	var req ListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.lists.RenameList(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to rename list")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wordListToResponse(list))
}

// DeleteList handles DELETE /api/lists/{id}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.lists.DeleteList(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete list")
		return
	}
	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("list deleted via API", slog.String("list_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// BrowsePairs handles GET /api/lists/{id}/pairs?q=&sort=.
func (h *ListHandler) BrowsePairs(w http.ResponseWriter, r *http.Request) {
	order, err := service.ParseSortOrder(r.URL.Query().Get("sort"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	pairs, err := h.lists.Browse(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("q"), order)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list pairs")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pairs)
}

// AddPair handles POST /api/lists/{id}/pairs.
func (h *ListHandler) AddPair(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := h.lists.AddPair(r.Context(), chi.URLParam(r, "id"), req.Front, req.Back)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add pair")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, pair)
}

// UploadPairs handles POST /api/lists/{id}/upload with a multipart "file"
// holding an .xlsx or .csv sheet of front/back rows.
func (h *ListHandler) UploadPairs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrBadRequest, err), "")
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.Warn("failed to close uploaded file", slog.String("error", cerr.Error()))
		}
	}()

	format, err := spreadsheet.FormatFromName(header.Filename)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	rows, err := spreadsheet.Read(file, format)
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrBadRequest, err), "")
		return
	}

	result, err := h.lists.UploadPairs(r.Context(), chi.URLParam(r, "id"), rows)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to upload pairs")
		return
	}
	log.Debug("spreadsheet uploaded",
		slog.String("format", string(format)),
		slog.Int("rows", len(rows)))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// EditPair handles PUT /api/pairs/{id}.
func (h *ListHandler) EditPair(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := h.lists.EditPair(r.Context(), chi.URLParam(r, "id"), req.Front, req.Back)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to edit pair")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pair)
}

// DeletePair handles DELETE /api/pairs/{id}.
func (h *ListHandler) DeletePair(w http.ResponseWriter, r *http.Request) {
	if err := h.lists.DeletePair(r.Context(), chi.URLParam(r, "id")); err != nil {
		HandleAPIError(w, r, err, "Failed to delete pair")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PostponePair handles POST /api/pairs/{id}/postpone.
func (h *ListHandler) PostponePair(w http.ResponseWriter, r *http.Request) {
	var req PostponeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pair, err := h.lists.Postpone(r.Context(), chi.URLParam(r, "id"), domain.Direction(req.Direction), req.Days)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to postpone pair")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pair)
}
