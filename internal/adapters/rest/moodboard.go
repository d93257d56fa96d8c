package rest

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/ewilliams-labs/moodboard/internal/core/domain"
)

const errCodeMissingText = "MISSING_TEXT"

type classifyResponse struct {
	Mood      domain.Mood    `json:"mood"`
	MoodLabel string         `json:"mood_label"`
	Scores    map[string]int `json:"scores"`
}

// GetMoodboard handles GET /api/moodboard
func (h *Handler) GetMoodboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Generate(r.Context()))
}

// Classify handles GET /api/classify?text=...
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		writeErrorWithCode(w, http.StatusBadRequest, "text query parameter is required", errCodeMissingText)
		return
	}

	mood, scores := h.svc.Classify(text)
	resp := classifyResponse{
		Mood:      mood,
		MoodLabel: mood.Display(),
		Scores:    make(map[string]int, len(scores)),
	}
	for _, m := range domain.Moods() {
		resp.Scores[m.String()] = scores[m]
	}
	writeJSON(w, http.StatusOK, resp)
}

// MoodPage handles GET /
func (h *Handler) MoodPage(w http.ResponseWriter, r *http.Request) {
	mb := h.svc.Generate(r.Context())

	// Render into a buffer so a template failure can still become a 500.
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, newPageView(mb)); err != nil {
		h.logger.Error("render page", "error", err, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
