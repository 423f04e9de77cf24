package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	require.Len(t, id, TraceIDLength*2)
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)

	assert.NotEqual(t, id, GetTraceID(SetTraceID(context.Background())))
}

func TestGetTraceIDIgnoresWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 42)
	assert.Empty(t, GetTraceID(ctx))
}
