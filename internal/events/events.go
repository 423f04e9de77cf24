package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the trainer.
const (
	TypePairGraded       = "pair.graded"
	TypeDocumentImported = "document.imported"
	TypeDocumentReset    = "document.reset"
)

// Event is a notification about a completed state change.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Payload contains the type-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an Event with the specified type and payload.
func NewEvent(eventType string, payload any, now time.Time) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: now,
	}, nil
}

// PairGraded is the payload of TypePairGraded.
type PairGraded struct {
	PairID       string    `json:"pairId"`
	ListID       string    `json:"listId"`
	Direction    string    `json:"direction"`
	Correct      bool      `json:"correct"`
	Ease         float64   `json:"ease"`
	IntervalDays float64   `json:"intervalDays"`
	Due          time.Time `json:"due"`
}

// DocumentImported is the payload of TypeDocumentImported.
type DocumentImported struct {
	Lists int `json:"lists"`
	Pairs int `json:"pairs"`
}

// EventHandler processes events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter publishes events to handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *Event) error
}
