package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/phrazzld/vocab-drill/internal/store"
)

const entity = "snapshot"

// Store implements store.DocumentStore on a file.
type Store struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

var _ store.DocumentStore = (*Store)(nil)

// New returns a Store keeping the snapshot at path on fsys. A nil logger
// means the default logger.
func New(fsys afero.Fs, path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fs:     fsys,
		path:   filepath.Clean(path),
		logger: logger.With(slog.String("component", "filestore")),
	}
}

// NewOS returns a Store on the operating system filesystem.
func NewOS(path string, logger *slog.Logger) *Store {
	return New(afero.NewOsFs(), path, logger)
}

// Path returns the snapshot location.
func (s *Store) Path() string {
	return s.path
}

// Load implements store.DocumentStore.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, store.NewStoreError(entity, "load", "failed to read snapshot file", err)
	}
	return data, nil
}

// Save implements store.DocumentStore. The snapshot is written to a
// temporary file in the same directory and renamed over the old one.
func (s *Store) Save(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return store.NewStoreError(entity, "save", "failed to create snapshot directory", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return store.NewStoreError(entity, "save", "failed to create temporary file", err)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		s.removeTemp(tmpName)
		return store.NewStoreError(entity, "save", "failed to write snapshot", err)
	}

	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.removeTemp(tmpName)
		return store.NewStoreError(entity, "save", "failed to replace snapshot", err)
	}

	s.logger.Debug("snapshot saved", slog.Int("bytes", len(data)))
	return nil
}

func writeAndClose(f afero.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

func (s *Store) removeTemp(name string) {
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("failed to remove temporary snapshot file",
			slog.String("error", err.Error()))
	}
}
