package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/srs"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/redact"
	"github.com/phrazzld/vocab-drill/internal/schema"
	"github.com/phrazzld/vocab-drill/internal/store"
	"github.com/phrazzld/vocab-drill/internal/training"
)

// Options holds the optional collaborators of a Trainer. Zero values select
// the defaults.
type Options struct {
	// Engine schedules reviews. Defaults to srs.NewDefaultService().
	Engine srs.Service
	// Selector builds candidate pools. Defaults to the standard recent-wrong limit.
	Selector *training.Selector
	// Picker chooses cards. Defaults to a clock-seeded picker with the standard window.
	Picker *training.Picker
	// Emitter receives events after successful mutations. Optional.
	Emitter events.EventEmitter
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Trainer is the state store of the application. It owns the document and
// the drill session; all methods are safe for concurrent use and are
// serialized internally.
type Trainer struct {
	mu      sync.Mutex
	doc     *domain.Document
	session *training.Session

	store    store.DocumentStore
	engine   srs.Service
	selector *training.Selector
	picker   *training.Picker
	emitter  events.EventEmitter
	clock    func() time.Time
	logger   *slog.Logger
}

// NewTrainer creates a Trainer persisting to st. The trainer starts with a
// default document; call Load to read the stored snapshot.
func NewTrainer(st store.DocumentStore, logger *slog.Logger, opts Options) *Trainer {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Trainer{
		session:  training.NewSession(),
		store:    st,
		engine:   opts.Engine,
		selector: opts.Selector,
		picker:   opts.Picker,
		emitter:  opts.Emitter,
		clock:    opts.Now,
		logger:   logger.With(slog.String("component", "trainer")),
	}
	if t.engine == nil {
		t.engine = srs.NewDefaultService()
	}
	if t.selector == nil {
		t.selector = training.NewSelector(training.DefaultRecentWrongLimit)
	}
	if t.picker == nil {
		t.picker = training.NewPicker(nil, training.DefaultPickWindow)
	}
	if t.clock == nil {
		t.clock = time.Now
	}
	t.doc = domain.NewDocument(t.now())
	return t
}

// now returns the clock time at the resolution of the persisted format.
func (t *Trainer) now() time.Time {
	return domain.Timestamp(t.clock())
}

func (t *Trainer) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, t.logger)
}

// Load replaces the in-memory document with the stored snapshot. A missing
// snapshot yields a default document. A snapshot that cannot be parsed is
// discarded in favour of a default document and logged; it is not an error.
// Legacy snapshots are migrated on load.
func (t *Trainer) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	data, err := t.store.Load(ctx)
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		t.log(ctx).Info("no stored snapshot, starting with a default document")
		t.doc = domain.NewDocument(now)
	case err != nil:
		return NewServiceError("load", "failed to read snapshot", err)
	default:
		doc, decodeErr := schema.Decode(data, now)
		if decodeErr != nil {
			t.log(ctx).Warn("stored snapshot is unreadable, starting with a default document",
				slog.String("error", redact.Error(decodeErr)))
			doc = domain.NewDocument(now)
		}
		t.doc = doc
		t.log(ctx).Info("snapshot loaded",
			slog.Int("lists", len(doc.Lists)),
			slog.Int("pairs", len(doc.Pairs)))
	}

	t.session.Reset()
	return nil
}

// Document returns a copy of the current document.
func (t *Trainer) Document() *domain.Document {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doc.Clone()
}

// commit persists next and makes it current. On failure the current
// document is left untouched. Callers hold t.mu.
func (t *Trainer) commit(ctx context.Context, op string, next *domain.Document) error {
	data, err := schema.Encode(next)
	if err != nil {
		return NewServiceError(op, "failed to encode document", err)
	}
	if err := t.store.Save(ctx, data); err != nil {
		t.log(ctx).Error("failed to save snapshot",
			slog.String("operation", op),
			slog.String("error", redact.Error(err)))
		return NewServiceError(op, "failed to save document", err)
	}
	t.doc = next
	return nil
}

// emit publishes an event. Failures are logged; the mutation has already
// been committed.
func (t *Trainer) emit(ctx context.Context, eventType string, payload any) {
	if t.emitter == nil {
		return
	}
	event, err := events.NewEvent(eventType, payload, t.now())
	if err != nil {
		t.log(ctx).Error("failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}
	if err := t.emitter.EmitEvent(ctx, event); err != nil {
		t.log(ctx).Warn("event handler failed",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}

// freshSchedule returns two new records due at now.
func (t *Trainer) freshSchedule(now time.Time) domain.DirectionalSchedule {
	return domain.DirectionalSchedule{
		Forward: t.engine.Initialize(now),
		Reverse: t.engine.Initialize(now),
	}
}
