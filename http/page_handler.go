package http

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"energy-predictor/domain"
	"energy-predictor/service"
)

//go:embed templates/index.html templates/panel.html
var templateFS embed.FS

var panelTemplate = template.Must(template.ParseFS(templateFS, "templates/panel.html"))

type panelData struct {
	Input       domain.PredictionInput
	Seasons     []domain.Season
	PolicyModes []domain.PolicyMode
	Output      string
}

// PageHandler serves the two browser front ends: the static form page
// that posts JSON to /predict, and the server-rendered panel.
type PageHandler struct {
	service *service.PredictionService
	index   []byte
}

func NewPageHandler(service *service.PredictionService) *PageHandler {
	index, err := templateFS.ReadFile("templates/index.html")
	if err != nil {
		// The file is embedded at build time.
		panic(err)
	}
	return &PageHandler{service: service, index: index}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(h.index); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func (h *PageHandler) Panel(w http.ResponseWriter, r *http.Request) {
	data := panelData{
		Input:       service.DefaultInput(),
		Seasons:     []domain.Season{domain.SeasonSpringFall, domain.SeasonSummer, domain.SeasonWinter},
		PolicyModes: domain.PolicyModes,
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		data.Input = formPredictionInput(r.PostForm)
		data.Output = h.service.Describe(r.Context(), data.Input)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := panelTemplate.Execute(&buf, data); err != nil {
		log.Printf("Error rendering panel: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"service": "energy-predictor",
	})
}
