package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"neighborhood-pets/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

func TestRequestLog_LogsClientErrorsWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "pet not found", http.StatusNotFound)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/ghost/owner", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	out := buf.String()
	require.Contains(t, out, `"status":404`)
	require.Contains(t, out, `"path":"/pets/ghost/owner"`)
	require.Contains(t, out, `"request_id"`)
}

func TestRequestLog_SuccessOnlyAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	h := RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, buf.String())
}
