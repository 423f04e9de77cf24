package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/vocab-drill/internal/store"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		message  string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "grade",
			message:  "failed to save document",
			err:      errors.New("disk full"),
			expected: "grade operation failed: failed to save document: disk full",
		},
		{
			name:     "without underlying error",
			op:       "export",
			message:  "failed to encode document",
			expected: "export operation failed: failed to encode document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewServiceError(tt.op, tt.message, tt.err).Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	storeErr := store.NewStoreError("snapshot", "save", "failed to write", store.ErrTransactionFailed)
	err := error(NewServiceError("add_pair", "failed to save document", storeErr))

	assert.True(t, errors.Is(err, store.ErrTransactionFailed))

	var svcErr *ServiceError
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "add_pair", svcErr.Operation)

	var se *store.StoreError
	assert.True(t, errors.As(err, &se))
}

func TestParseSortOrder(t *testing.T) {
	for in, want := range map[string]SortOrder{
		"":        SortFront,
		"front":   SortFront,
		"back":    SortBack,
		"created": SortCreated,
	} {
		got, err := ParseSortOrder(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortOrder("due")
	assert.ErrorIs(t, err, ErrInvalidSort)
}
