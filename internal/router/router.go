package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handlers "loveuadAdmin/internal/handler"
	"loveuadAdmin/internal/middleware"
)

// New builds the route table. Every request passes through logging, CORS
// and session resolution; admin routes additionally require a session.
func New(h *handlers.Handlers, metrics http.Handler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/login", h.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodGet)
	r.HandleFunc("/", h.Dashboard).Methods(http.MethodGet)

	// public blog
	r.HandleFunc("/blog", h.BlogIndex).Methods(http.MethodGet)
	r.HandleFunc("/blog/", h.BlogIndex).Methods(http.MethodGet)
	r.HandleFunc("/blog/rss", h.RSS).Methods(http.MethodGet)
	r.HandleFunc("/blog/sitemap.xml", h.Sitemap).Methods(http.MethodGet)
	r.HandleFunc("/blog/{slug}", h.BlogPostPage).Methods(http.MethodGet)

	r.HandleFunc("/api/blog/posts", h.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/blog/posts/{id:[0-9]+}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/blog/posts/{id:[0-9]+}/comments", h.ListComments).Methods(http.MethodGet)
	r.HandleFunc("/api/blog/posts/{id:[0-9]+}/comments", h.AddComment).Methods(http.MethodPost)

	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(fn)
	}

	r.Handle("/api/metrics", admin(h.GetMetrics)).Methods(http.MethodGet)
	r.Handle("/api/manual-costs/add", admin(h.AddManualCost)).Methods(http.MethodPost)
	r.Handle("/api/manual-costs/history", admin(h.CostHistory)).Methods(http.MethodGet)
	r.Handle("/api/deletions", admin(h.ListDeletions)).Methods(http.MethodGet)
	r.Handle("/api/deletions/process", admin(h.ProcessDeletion)).Methods(http.MethodPost)
	r.Handle("/api/compliance/ai-audit", admin(h.AuditTrail)).Methods(http.MethodGet)
	r.Handle("/api/blog/posts", admin(h.CreatePost)).Methods(http.MethodPost)
	r.Handle("/api/blog/posts/{id:[0-9]+}", admin(h.UpdatePost)).Methods(http.MethodPut)
	r.Handle("/api/blog/posts/{id:[0-9]+}", admin(h.DeletePost)).Methods(http.MethodDelete)
	r.Handle("/api/blog/posts/{id:[0-9]+}/image", admin(h.UploadPostImage)).Methods(http.MethodPost)

	if metrics == nil {
		metrics = promhttp.Handler()
	}
	r.Handle("/debug/metrics", middleware.RequireAdmin(metrics)).Methods(http.MethodGet)

	return middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.SessionMiddleware(h.AuthService),
	)
}
