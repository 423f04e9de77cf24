package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/phrazzld/vocab-drill/internal/api"
	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/domain/srs"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/platform/filestore"
	"github.com/phrazzld/vocab-drill/internal/platform/sqlstore"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/store"
	"github.com/phrazzld/vocab-drill/internal/training"
)

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	store   store.DocumentStore
	closers []func() error

	trainer *service.Trainer
	router  http.Handler
}

// newApplication opens the configured store, loads the saved document and
// builds the router.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{config: cfg, logger: logger}

	st, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}
	app.store = st

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogHandler(logger))

	app.trainer = service.NewTrainer(st, logger, service.Options{
		Selector: training.NewSelector(cfg.Training.RecentWrongLimit),
		Picker:   training.NewPicker(newRand(cfg.Training.RandomSeed), cfg.Training.PickWindow),
		Engine:   newEngine(cfg.Training),
		Emitter:  emitter,
	})
	if err := app.trainer.Load(ctx); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to load saved data: %w", err)
	}

	app.router = api.NewRouter(app.trainer, logger)
	return app, nil
}

// openStore returns the document store selected by the storage driver.
func (app *application) openStore(ctx context.Context) (store.DocumentStore, error) {
	sc := app.config.Storage
	switch sc.Driver {
	case config.DriverFile:
		fs := filestore.NewOS(sc.Path, app.logger)
		app.logger.Info("using file storage", slog.String("path", fs.Path()))
		return fs, nil

	case config.DriverSQLite, config.DriverPostgres:
		driver, dsn := sqlstore.DriverSQLite, sc.Path
		if sc.Driver == config.DriverPostgres {
			driver, dsn = sqlstore.DriverPostgres, sc.DatabaseURL
		}
		db, err := sqlstore.Open(ctx, driver, dsn, app.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", sc.Driver, err)
		}
		app.closers = append(app.closers, db.Close)
		app.logger.Info("using database storage", slog.String("driver", sc.Driver))
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", sc.Driver)
	}
}

// newEngine builds the review scheduler from the training settings.
func newEngine(tc config.TrainingConfig) srs.Service {
	return srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		InitialEase: tc.InitialEase,
		MinEase:     tc.MinEase,
		MaxEase:     tc.MaxEase,
		MaxInterval: tc.MaxIntervalDays,
	}))
}

// newRand returns a seeded generator, or nil to let the picker seed from the
// clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	for _, closeFn := range app.closers {
		if err := closeFn(); err != nil {
			app.logger.Error("failed to release resource", slog.String("error", err.Error()))
		}
	}
	app.closers = nil
}

// serve runs the HTTP server until ctx is canceled, then shuts it down
// gracefully.
func (app *application) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", slog.Int("port", app.config.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		app.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("server shutdown completed")
	return nil
}
