package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/schema"
)

// Export returns the current document in the canonical wire format.
func (t *Trainer) Export(ctx context.Context) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := schema.Encode(t.doc)
	if err != nil {
		return nil, NewServiceError("export", "failed to encode document", err)
	}
	return data, nil
}

// Import replaces the whole document with data after full normalization.
// Input that is not a JSON object fails with schema.ErrMalformedDocument and
// leaves the current state untouched. The session returns to idle.
func (t *Trainer) Import(ctx context.Context, data []byte) (*domain.Document, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	doc, err := schema.Decode(data, t.now())
	if err != nil {
		return nil, err
	}
	if err := t.commit(ctx, "import", doc); err != nil {
		return nil, err
	}
	t.session.Reset()

	t.log(ctx).Info("document imported",
		slog.Int("lists", len(doc.Lists)),
		slog.Int("pairs", len(doc.Pairs)))
	t.emit(ctx, events.TypeDocumentImported, events.DocumentImported{
		Lists: len(doc.Lists),
		Pairs: len(doc.Pairs),
	})
	return doc.Clone(), nil
}

// Reset deletes all data and starts over with a default document. The default
// document replaces the stored snapshot in a single save, so a failed reset
// keeps both the snapshot and the in-memory document.
func (t *Trainer) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.commit(ctx, "reset", domain.NewDocument(t.now())); err != nil {
		return err
	}
	t.session.Reset()

	t.log(ctx).Info("all data reset")
	t.emit(ctx, events.TypeDocumentReset, struct{}{})
	return nil
}
