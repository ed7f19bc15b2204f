package handlers

import (
	"errors"
	"net/http"
	"time"

	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/service"
	"loveuadAdmin/internal/session"
)

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.Pages.render(w, r, "login.html", nil)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeJSON(w, SuccessResponse{Success: false}, http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.AuthService.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeJSON(w, SuccessResponse{Success: false}, http.StatusUnauthorized)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.Cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}
