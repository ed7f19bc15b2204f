package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/session"
)

type PostsResponse struct {
	Success bool                     `json:"success"`
	Posts   []models.BlogPostSummary `json:"posts"`
}

type PostResponse struct {
	Success bool             `json:"success"`
	Post    *models.BlogPost `json:"post"`
}

type PostCreatedResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Slug    string `json:"slug"`
}

func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListPosts returns every post to admins and published posts to everyone
// else.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context(), session.IsAdmin(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, PostsResponse{Success: true, Posts: posts}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), id, session.IsAdmin(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, PostResponse{Success: true, Post: post}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := h.decodeJSON(r, &req); err != nil {
		if msg, ok := tooLong(err); ok {
			WriteError(w, msg, http.StatusBadRequest)
			return
		}
		WriteError(w, "Title and content required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, PostCreatedResponse{Success: true, ID: post.ID, Slug: post.Slug}, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req models.UpdatePostRequest
	if err := h.decodeJSON(r, &req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, PostResponse{Success: true, Post: post}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

// UploadPostImage stores a multipart "image" file as the post's featured
// image.
func (h *Handlers) UploadPostImage(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "File too large or invalid form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	post, err := h.PostService.SetFeaturedImage(r.Context(), id, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, PostResponse{Success: true, Post: post}, http.StatusOK)
}
