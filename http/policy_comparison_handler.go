package http

import (
	"log"
	"net/http"

	"energy-predictor/service"
)

type PolicyComparisonHandler struct {
	service *service.PolicyComparisonService
}

func NewPolicyComparisonHandler(service *service.PolicyComparisonService) *PolicyComparisonHandler {
	return &PolicyComparisonHandler{service: service}
}

func (h *PolicyComparisonHandler) ComparePolicies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input, err := decodePredictionInput(r.Body)
	if err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.service.ComparePolicies(r.Context(), input))
}
