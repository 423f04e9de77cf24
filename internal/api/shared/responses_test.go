package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/platform/logger"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         any
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         map[string]any{"total": 3},
			expectedBody: `{"total":3}`,
		},
		{
			name:         "created",
			status:       http.StatusCreated,
			data:         []string{"a"},
			expectedBody: `["a"]`,
		},
		{
			name:         "nil",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()

			RespondWithJSON(rec, req, tc.status, tc.data)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	RespondWithError(rec, req, http.StatusNotFound, "List not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "List not found", resp.Error)
	assert.Equal(t, GetTraceID(req.Context()), resp.TraceID)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "Code")
	assert.NotContains(t, raw, "code")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "client error", status: http.StatusBadRequest, wantLevel: "DEBUG"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.NewTestLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/api/import", nil)
			req = req.WithContext(logger.WithLogger(SetTraceID(req.Context()), log))
			rec := httptest.NewRecorder()

			cause := errors.New("open /home/learner/.vocab-drill/drill.json: permission denied")
			RespondWithErrorAndLog(rec, req, tc.status, "Failed to import data", cause)

			assert.Equal(t, tc.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "permission denied")

			entries := logger.FindEntries(t, buf, "API error response")
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, "/api/import", entry["path"])
			assert.Equal(t, "*errors.errorString", entry["error_type"])
			assert.NotContains(t, entry["error"], "/home/learner")
		})
	}
}
