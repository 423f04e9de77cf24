package store

import "context"

// DocumentStore persists the whole document as a single snapshot. Writes
// replace the previous snapshot entirely.
type DocumentStore interface {
	// Load returns the stored snapshot, or ErrSnapshotNotFound when nothing
	// has been saved yet.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored snapshot with data. A failed Save leaves the
	// previous snapshot intact.
	Save(ctx context.Context, data []byte) error
}
