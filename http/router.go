package http

import (
	"net/http"

	"energy-predictor/service"
)

// NewRouter wires every endpoint. Prediction endpoints are rate limited;
// pages and the health check are not.
func NewRouter(
	predictionService *service.PredictionService,
	comparisonService *service.PolicyComparisonService,
	limiter *RateLimiter,
) http.Handler {

	predictionHandler := NewPredictionHandler(predictionService)
	comparisonHandler := NewPolicyComparisonHandler(comparisonService)
	pageHandler := NewPageHandler(predictionService)

	mux := http.NewServeMux()
	mux.Handle(
		"/predict",
		RateLimitMiddleware(limiter, http.HandlerFunc(predictionHandler.Predict)),
	)
	mux.Handle(
		"/predict/compare",
		RateLimitMiddleware(limiter, http.HandlerFunc(comparisonHandler.ComparePolicies)),
	)
	mux.Handle(
		"/panel",
		RateLimitMiddleware(limiter, http.HandlerFunc(pageHandler.Panel)),
	)
	mux.HandleFunc("/health", Health)
	mux.HandleFunc("/", pageHandler.Index)

	return RequestLogMiddleware(mux)
}
