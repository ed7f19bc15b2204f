package handlers

import (
	"errors"
	"net/http"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
)

type DeletionsResponse struct {
	Success  bool                     `json:"success"`
	Requests []models.DeletionRequest `json:"requests"`
}

func (h *Handlers) ListDeletions(w http.ResponseWriter, r *http.Request) {
	requests, err := h.DeletionService.ListPending(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, DeletionsResponse{Success: true, Requests: requests}, http.StatusOK)
}

func (h *Handlers) ProcessDeletion(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessDeletionRequest
	if err := h.decodeJSON(r, &req); err != nil {
		WriteError(w, "patient_code required", http.StatusBadRequest)
		return
	}

	if err := h.DeletionService.Process(r.Context(), req.PatientCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Request not found", http.StatusNotFound)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}
