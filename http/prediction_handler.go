package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"energy-predictor/service"
)

type PredictionResponse struct {
	Prediction string `json:"prediction"`
}

type PredictionHandler struct {
	service *service.PredictionService
}

func NewPredictionHandler(service *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, PredictionResponse{
		Prediction: h.service.Describe(r.Context(), input),
	})
}

// writeJSON encodes into a buffer first so a failed encode can still
// produce a 500.
func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
