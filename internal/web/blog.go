package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/folio/internal/apperr"
	"github.com/starford/folio/internal/content"
	"github.com/starford/folio/internal/nav"
)

type likeButton struct {
	ID     string
	Count  int
	Action string
}

func (h *Handler) fillBlog(r *http.Request, p *pageData) {
	q := r.URL.Query()
	p.Query = q.Get("q")
	p.Category = q.Get("category")
	p.Categories = h.deps.Blog.Categories()
	for _, post := range h.deps.Blog.List(p.Query, p.Category) {
		p.Posts = append(p.Posts, postItem{Post: post, Likes: h.deps.Blog.Likes(post.ID)})
	}
}

// BlogList handles GET /blog?q=&category=.
func (h *Handler) BlogList(w http.ResponseWriter, r *http.Request) {
	h.showSection(w, r, nav.Blog)
}

// BlogPost handles GET /blog/{id}.
func (h *Handler) BlogPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a, err := h.deps.Blog.Open(r.Context(), id)
	if err != nil {
		// Fetch failures are logged by the service; the visitor only sees 404.
		h.NotFound(w, r)
		return
	}

	sh, _ := shellFor(r, nav.Blog)
	p := h.newPage(r, sh)
	p.Title = a.Title
	p.Article = &a
	p.ShareURL = shareURL(r, a.Title)
	h.render(w, r, http.StatusOK, p)
}

// LikePost handles POST /blog/{id}/like.
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := h.deps.Blog.Like(r.Context(), id)
	if errors.Is(err, apperr.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Warn("like not persisted", slog.String("id", id), slog.String("error", err.Error()))
	}
	h.likeResponse(w, r, likeButton{ID: id, Count: n, Action: "/blog/" + id + "/like"}, "/blog/"+id)
}

// LikeCertificate handles POST /likes/{id} for certificates.
func (h *Handler) LikeCertificate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := content.CertificateByID(content.Certificates, id); !ok {
		h.NotFound(w, r)
		return
	}
	n, err := h.deps.Likes.Like(r.Context(), id)
	if err != nil {
		h.logger.Warn("like not persisted", slog.String("id", id), slog.String("error", err.Error()))
	}
	if h.deps.Broker != nil {
		h.deps.Broker.PublishLike(id, n)
	}
	h.likeResponse(w, r, likeButton{ID: id, Count: n, Action: "/likes/" + id}, "/sections/"+nav.Projects)
}

// shareURL builds a mailto link carrying the absolute post address.
func shareURL(r *http.Request, title string) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	link := (&url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}).String()
	q := url.Values{"subject": {title}, "body": {link}}.Encode()
	return "mailto:?" + strings.ReplaceAll(q, "+", "%20")
}

// likeResponse returns the refreshed button for HTMX or redirects back.
func (h *Handler) likeResponse(w http.ResponseWriter, r *http.Request, b likeButton, back string) {
	if !isHTMX(r) {
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "like-button", b); err != nil {
		h.logger.Error("render like button failed", slog.String("error", err.Error()))
	}
}
