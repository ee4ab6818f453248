package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-predictor/repository"
	"energy-predictor/service"
)

func newTestRouter(t *testing.T, capacity int) http.Handler {
	t.Helper()
	return newTestRouterWithCache(t, capacity, repository.NewMemoryCache(100, time.Minute))
}

func newTestRouterWithCache(t *testing.T, capacity int, cache repository.CacheRepository) http.Handler {
	t.Helper()

	predictionService := service.NewPredictionService(cache)
	comparisonService := service.NewPolicyComparisonService(predictionService)
	limiter := NewRateLimiter(capacity, time.Minute)
	t.Cleanup(limiter.Stop)

	return NewRouter(predictionService, comparisonService, limiter)
}

func TestRouter_Endpoints(t *testing.T) {
	router := newTestRouter(t, 100)

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/panel", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/predict", `{}`, http.StatusOK},
		{http.MethodPost, "/predict/compare", `{}`, http.StatusOK},
		{http.MethodGet, "/predict", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, tc.status, w.Code, "%s %s", tc.method, tc.path)
		assert.NotEmpty(t, w.Header().Get(requestIDHeader), "%s %s", tc.method, tc.path)
	}
}

func TestRouter_PredictResponseShape(t *testing.T) {
	router := newTestRouter(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewBufferString(`{"policy_mode":"non_eco"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"prediction": "689.9 TOE"}, body)
}

func TestRouter_RateLimitsPredictions(t *testing.T) {
	router := newTestRouter(t, 2)

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/predict", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "health is not rate limited")
}

func TestRouter_DistinctInputsDoNotGrowCache(t *testing.T) {
	cache := repository.NewMemoryCache(50, time.Minute)
	router := newTestRouterWithCache(t, 10000, cache)

	for i := 0; i < 500; i++ {
		body := fmt.Sprintf(`{"oil_price": %d}`, 20+i)
		req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 50, cache.Len())
}
