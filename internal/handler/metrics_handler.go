package handlers

import (
	"net/http"
)

func (h *Handlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	report, err := h.MetricsService.Report(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, report, http.StatusOK)
}
