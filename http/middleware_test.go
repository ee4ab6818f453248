package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogMiddleware_GeneratesID(t *testing.T) {
	handler := RequestLogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	require.NoError(t, err)
}

func TestRequestLogMiddleware_KeepsCallerID(t *testing.T) {
	handler := RequestLogMiddleware(http.HandlerFunc(Health))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(requestIDHeader))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "198.51.100.3:4000"
	assert.Equal(t, "198.51.100.3", clientIP(req))

	req.RemoteAddr = "[2001:db8::1]:4000"
	assert.Equal(t, "2001:db8::1", clientIP(req))

	req.RemoteAddr = "unix-socket"
	assert.Equal(t, "unix-socket", clientIP(req))
}
