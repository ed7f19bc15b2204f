package middleware

import (
	"log/slog"
	"net/http"
	"time"

	handlers "loveuadAdmin/internal/handler"
	"loveuadAdmin/internal/session"
)

type Middleware func(http.Handler) http.Handler

// TokenValidator turns a session token into an identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (session.Identity, error)
}

// SessionMiddleware attaches the caller's identity to the request context.
// A missing or invalid cookie yields the anonymous identity; rejecting the
// request is left to RequireAdmin.
func SessionMiddleware(auth TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := session.Anonymous()

			if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
				validated, err := auth.ValidateToken(cookie.Value)
				if err != nil {
					slog.DebugContext(r.Context(), "session rejected", "err", err)
				} else {
					id = validated
				}
			}

			next.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), id)))
		})
	}
}

// RequireAdmin answers 401 unless the request carries an admin session.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.IsAdmin(r.Context()) {
			handlers.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

// Chain wraps h so that the first middleware listed runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
