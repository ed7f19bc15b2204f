package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"

	"loveuadAdmin/internal/config"
	"loveuadAdmin/internal/models"
	"loveuadAdmin/internal/repository"
	"loveuadAdmin/internal/session"
)

//go:embed templates/*.html
var templateFiles embed.FS

const postsPerPage = 10

var pageNames = []string{"login.html", "dashboard.html", "blog_index.html", "blog_post.html", "not_found.html"}

// Pages holds the parsed HTML templates, one set per page.
type Pages struct {
	blog      config.Blog
	templates map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"ago": func(t interface{}) string {
		switch v := t.(type) {
		case *time.Time:
			if v == nil {
				return ""
			}
			return humanize.Time(*v)
		case time.Time:
			return humanize.Time(v)
		}
		return ""
	},
	"str": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	// post bodies are written by the admin and rendered as-is
	"trusted": func(s string) template.HTML {
		return template.HTML(s)
	},
	"add": func(a, b int) int { return a + b },
}

func NewPages(blog config.Blog) *Pages {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		templates[name] = template.Must(template.New(name).Funcs(templateFuncs).
			ParseFS(templateFiles, "templates/layout.html", "templates/"+name))
	}

	return &Pages{blog: blog, templates: templates}
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	p.renderStatus(w, r, name, data, http.StatusOK)
}

func (p *Pages) renderStatus(w http.ResponseWriter, r *http.Request, name string, data interface{}, status int) {
	var buf bytes.Buffer
	if err := p.templates[name].ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(r.Context(), "template render failed", "template", name, "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

type pageData struct {
	Blog config.Blog
}

type blogIndexData struct {
	Blog       config.Blog
	Posts      []models.BlogPostSummary
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

type blogPostData struct {
	Blog     config.Blog
	Post     *models.BlogPost
	URL      string
	Comments []models.BlogComment
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !session.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.Pages.render(w, r, "dashboard.html", pageData{Blog: h.Pages.blog})
}

func (h *Handlers) BlogIndex(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	posts, total, err := h.PostService.ListPublishedPage(r.Context(), page, postsPerPage)
	if err != nil {
		slog.ErrorContext(r.Context(), "blog index failed", "err", err)
		http.Error(w, "Error loading blog", http.StatusInternalServerError)
		return
	}

	totalPages := (total + postsPerPage - 1) / postsPerPage
	h.Pages.render(w, r, "blog_index.html", blogIndexData{
		Blog:       h.Pages.blog,
		Posts:      posts,
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	})
}

func (h *Handlers) BlogPostPage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.PostService.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		if isNotFound(err) {
			h.Pages.renderStatus(w, r, "not_found.html", pageData{Blog: h.Pages.blog}, http.StatusNotFound)
			return
		}
		slog.ErrorContext(r.Context(), "blog post failed", "slug", slug, "err", err)
		http.Error(w, "Error loading post", http.StatusInternalServerError)
		return
	}

	comments, err := h.CommentService.ListComments(r.Context(), post.ID)
	if err != nil {
		slog.WarnContext(r.Context(), "comments unavailable", "post_id", post.ID, "err", err)
		comments = []models.BlogComment{}
	}

	h.Pages.render(w, r, "blog_post.html", blogPostData{
		Blog:     h.Pages.blog,
		Post:     post,
		URL:      h.FeedService.PostURL(post.Slug),
		Comments: comments,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
