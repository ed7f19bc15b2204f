package handlers

import (
	"net/http"

	"loveuadAdmin/internal/models"
)

type CostCreatedResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type CostHistoryResponse struct {
	Success bool                `json:"success"`
	History []models.ManualCost `json:"history"`
}

func (h *Handlers) AddManualCost(w http.ResponseWriter, r *http.Request) {
	var req models.AddManualCostRequest
	if err := h.decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	cost, err := h.CostService.AddCost(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, CostCreatedResponse{Success: true, ID: cost.ID}, http.StatusOK)
}

func (h *Handlers) CostHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.CostService.History(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, CostHistoryResponse{Success: true, History: history}, http.StatusOK)
}
