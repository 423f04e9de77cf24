package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/platform/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, logger.ParseLevel(tc.name))
		})
	}
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, "warn")

	l.Info("hidden")
	l.Warn("visible", slog.String("component", "test"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "test", entry["component"])
}

func TestContextLogger(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l)

	logger.FromContext(ctx).Info("from context")
	assert.Len(t, logger.FindEntries(t, buf, "from context"), 1)

	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))

	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, l, logger.FromContextOrDefault(ctx, fallback))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(nil, nil))
}
