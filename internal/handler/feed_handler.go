package handlers

import (
	"net/http"
	"time"
)

func (h *Handlers) RSS(w http.ResponseWriter, r *http.Request) {
	rss, err := h.FeedService.RSS(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (h *Handlers) Sitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := h.FeedService.Sitemap(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(sitemap)
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health is a liveness probe; it does not touch the database.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()}, http.StatusOK)
}
