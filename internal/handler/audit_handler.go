package handlers

import (
	"net/http"
	"strconv"

	"loveuadAdmin/internal/models"
)

type AuditTrailResponse struct {
	Success    bool                     `json:"success"`
	AuditTrail []models.AiAuditLogEntry `json:"audit_trail"`
}

func (h *Handlers) AuditTrail(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, "limit must be a number", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.AuditService.Trail(r.Context(), query.Get("code_hash"), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, AuditTrailResponse{Success: true, AuditTrail: entries}, http.StatusOK)
}
