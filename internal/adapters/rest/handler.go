package rest

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ewilliams-labs/moodboard/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator
	logger *slog.Logger
	page   *template.Template
	router *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		svc:    svc,
		logger: logger,
		page:   pageTemplate,
		router: http.NewServeMux(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface. Every request passes
// through the request-ID and access-log middleware first.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withRequestID(withAccessLog(h.logger, h.router)).ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)
	h.router.HandleFunc("GET /api/moodboard", h.GetMoodboard)
	h.router.HandleFunc("GET /api/classify", h.Classify)
	h.router.HandleFunc("GET /{$}", h.MoodPage)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
