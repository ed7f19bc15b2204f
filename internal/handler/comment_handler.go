package handlers

import (
	"net/http"

	"loveuadAdmin/internal/models"
)

type CommentsResponse struct {
	Success  bool                 `json:"success"`
	Comments []models.BlogComment `json:"comments"`
}

type CommentCreatedResponse struct {
	Success bool                `json:"success"`
	Comment *models.BlogComment `json:"comment"`
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, CommentsResponse{Success: true, Comments: comments}, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req models.CreateCommentRequest
	if err := h.decodeJSON(r, &req); err != nil {
		WriteError(w, "Content required", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, CommentCreatedResponse{Success: true, Comment: comment}, http.StatusOK)
}
