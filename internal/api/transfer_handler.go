package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
)

// MaxImportBytes caps imported documents.
const MaxImportBytes = 32 << 20

// TransferHandler handles export, import and reset requests.
type TransferHandler struct {
	transfer TransferService
	logger   *slog.Logger
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(svc TransferService, logger *slog.Logger) *TransferHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TransferHandler")
	}
	return &TransferHandler{
		transfer: svc,
		logger:   logger.With(slog.String("component", "transfer_handler")),
	}
}

// Export handles GET /api/export. The body is the canonical document,
// offered as a download.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.transfer.Export(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to export data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="vocab-drill.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Error("failed to write export", slog.String("error", err.Error()))
	}
}

// Import handles POST /api/import. The raw body replaces all data.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxImportBytes))
	if err != nil {
		HandleAPIError(w, r, fmt.Errorf("%w: %v", ErrBadRequest, err), "")
		return
	}

	doc, err := h.transfer.Import(r.Context(), data)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to import data")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ImportResponse{
		Lists: len(doc.Lists),
		Pairs: len(doc.Pairs),
	})
}

// Reset handles POST /api/reset.
func (h *TransferHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.transfer.Reset(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Failed to reset data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
