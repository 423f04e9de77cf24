package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/vocab-drill/internal/store"
)

// TestifyMockDocumentStore is a mock of store.DocumentStore for use with testify/mock.
type TestifyMockDocumentStore struct {
	mock.Mock
}

var _ store.DocumentStore = (*TestifyMockDocumentStore)(nil)

// Load is a mock implementation of store.DocumentStore.Load
func (m *TestifyMockDocumentStore) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save is a mock implementation of store.DocumentStore.Save
func (m *TestifyMockDocumentStore) Save(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
