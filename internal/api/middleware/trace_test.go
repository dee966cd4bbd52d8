package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/readme-api/internal/api/middleware"
	"github.com/phrazzld/readme-api/internal/api/shared"
	"github.com/phrazzld/readme-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	log, logs := logger.GetTestLogger(t)

	var seenTraceID string
	var seenLogger bool
	handler := middleware.TraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		seenLogger = logger.FromContext(r.Context()) == log
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotEmpty(t, seenTraceID)
	_, err := uuid.Parse(seenTraceID)
	assert.NoError(t, err)
	assert.True(t, seenLogger)
	assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))

	entries, err := logs.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "request started", entries[0]["msg"])
	assert.Equal(t, "request completed", entries[1]["msg"])
	assert.Equal(t, seenTraceID, entries[1]["trace_id"])
	assert.Equal(t, float64(http.StatusTeapot), entries[1]["status"])
	assert.Equal(t, float64(len("short and stout")), entries[1]["bytes"])
}

func TestTraceMiddlewareIncomingHeader(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	var seen string
	handler := middleware.TraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
	}))

	t.Run("valid UUID is reused", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(shared.TraceIDHeader, id)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, id, seen)
		assert.Equal(t, id, rec.Header().Get(shared.TraceIDHeader))
	})

	t.Run("arbitrary header is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(shared.TraceIDHeader, "<script>alert(1)</script>")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEqual(t, "<script>alert(1)</script>", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}

func TestTraceMiddlewareDefaultStatus(t *testing.T) {
	log, logs := logger.GetTestLogger(t)
	handler := middleware.TraceMiddleware(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries, err := logs.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, float64(http.StatusOK), entries[len(entries)-1]["status"])
}
