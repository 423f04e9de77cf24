package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var migrationsFS embed.FS

// slogGooseLogger adapts the goose logger interface to use slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding messages to slog.Error.
// It does not exit; the error is returned to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// migrate applies all pending migrations for the driver's dialect.
func migrate(ctx context.Context, db *sqlx.DB, d dialect, logger *slog.Logger) error {
	sub, err := fs.Sub(migrationsFS, "migrations/"+d.migrationsDir)
	if err != nil {
		return fmt.Errorf("locate %s migrations: %w", d.migrationsDir, err)
	}

	provider, err := goose.NewProvider(d.goose, db.DB, sub,
		goose.WithLogger(&slogGooseLogger{logger: logger}),
	)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		logger.Info("applied migration",
			slog.String("source", r.Source.Path),
			slog.Int64("version", r.Source.Version),
			slog.Int64("duration_ms", r.Duration.Milliseconds()))
	}
	return nil
}
