package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/phrazzld/vocab-drill/internal/api/middleware"
)

// NewRouter wires every route onto a chi router with the standard
// middleware stack.
func NewRouter(trainer Trainer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))

	lists := NewListHandler(trainer, logger)
	drill := NewTrainingHandler(trainer, logger)
	transfer := NewTransferHandler(trainer, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/lists", lists.GetLists)
		r.Post("/lists", lists.CreateList)
		r.Put("/lists/{id}", lists.RenameList)
		r.Delete("/lists/{id}", lists.DeleteList)
		r.Get("/lists/{id}/pairs", lists.BrowsePairs)
		r.Post("/lists/{id}/pairs", lists.AddPair)
		r.Post("/lists/{id}/upload", lists.UploadPairs)

		r.Put("/pairs/{id}", lists.EditPair)
		r.Delete("/pairs/{id}", lists.DeletePair)
		r.Post("/pairs/{id}/postpone", lists.PostponePair)

		r.Get("/training/stats", drill.GetStats)
		r.Post("/training/next", drill.Next)
		r.Get("/training/current", drill.Current)
		r.Post("/training/reveal", drill.Reveal)
		r.Post("/training/grade", drill.Grade)

		r.Get("/export", transfer.Export)
		r.Post("/import", transfer.Import)
		r.Post("/reset", transfer.Reset)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}
