package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
	"github.com/pressly/goose/v3"

	"github.com/phrazzld/vocab-drill/internal/store"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	entity = "snapshot"
	// snapshotID is the row holding the single document.
	snapshotID = 1
)

type dialect struct {
	goose         goose.Dialect
	migrationsDir string
}

var dialects = map[string]dialect{
	DriverPostgres: {goose: goose.DialectPostgres, migrationsDir: "postgres"},
	DriverSQLite:   {goose: goose.DialectSQLite3, migrationsDir: "sqlite3"},
}

// Store implements store.DocumentStore on a SQL database.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
	now    func() time.Time
}

var _ store.DocumentStore = (*Store)(nil)

// Open connects to the database, verifies the connection and applies
// pending migrations. A nil logger means the default logger.
func Open(ctx context.Context, driver, dsn string, logger *slog.Logger) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "sqlstore"), slog.String("driver", driver))

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite allows one writer; an in-memory database also lives and
		// dies with its connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(ctx, db, d, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, logger: logger, now: time.Now}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements store.DocumentStore.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var body string
	query := s.db.Rebind(`SELECT body FROM drill_documents WHERE id = ?`)
	if err := s.db.GetContext(ctx, &body, query, snapshotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, store.NewStoreError(entity, "load", "failed to query snapshot", err)
	}
	return []byte(body), nil
}

// Save implements store.DocumentStore. The row is updated in place, or
// inserted on first save, inside one transaction.
func (s *Store) Save(ctx context.Context, data []byte) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return upsertSnapshot(ctx, tx, string(data), s.now().UTC())
	})
	if err != nil {
		return store.NewStoreError(entity, "save", "failed to write snapshot", err)
	}
	s.logger.Debug("snapshot saved", slog.Int("bytes", len(data)))
	return nil
}

func upsertSnapshot(ctx context.Context, db store.DBTX, body string, now time.Time) error {
	update := db.Rebind(`UPDATE drill_documents SET body = ?, updated_at = ? WHERE id = ?`)
	res, err := db.ExecContext(ctx, update, body, now, snapshotID)
	if err != nil {
		return fmt.Errorf("update snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update snapshot: %w", err)
	}
	if n > 0 {
		return nil
	}

	insert := db.Rebind(`INSERT INTO drill_documents (id, body, updated_at) VALUES (?, ?, ?)`)
	if _, err := db.ExecContext(ctx, insert, snapshotID, body, now); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}
