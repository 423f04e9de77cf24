package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/vocab-drill/internal/events"
)

// MockEventHandler records the events it receives. HandleEventFn, when set,
// decides the returned error.
type MockEventHandler struct {
	HandleEventFn func(ctx context.Context, event *events.Event) error

	mu     sync.Mutex
	events []*events.Event
}

var _ events.EventHandler = (*MockEventHandler)(nil)

// HandleEvent implements events.EventHandler.
func (m *MockEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
	if m.HandleEventFn != nil {
		return m.HandleEventFn(ctx, event)
	}
	return nil
}

// Events returns the received events in order.
func (m *MockEventHandler) Events() []*events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*events.Event(nil), m.events...)
}

// Types returns the types of the received events in order.
func (m *MockEventHandler) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.events))
	for i, e := range m.events {
		types[i] = e.Type
	}
	return types
}
