// Package web serves the portfolio: server-rendered pages with HTMX
// fragments, blog and like endpoints, the contact API, static assets and
// the live event stream.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/starford/folio/internal/blog"
	"github.com/starford/folio/internal/checksum"
	"github.com/starford/folio/internal/contact"
	"github.com/starford/folio/internal/likes"
	"github.com/starford/folio/internal/nav"
	"github.com/starford/folio/internal/render"
	"github.com/starford/folio/internal/sse"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps are the collaborators the router needs.
type Deps struct {
	Blog      *blog.Service
	Likes     *likes.Counter
	Broker    *sse.Broker
	Submitter contact.Submitter
	// SiteRoot holds the post directory, pdf/, images/ and static/.
	SiteRoot string
	// PostDir is the post asset directory; empty means blog.DefaultDir.
	PostDir        string
	AllowedOrigins []string
	// Ready reports readiness; nil means always ready.
	Ready  func(ctx context.Context) error
	Logger *slog.Logger
}

// Handler holds the route handlers.
type Handler struct {
	deps         Deps
	tmpl         *template.Template
	logger       *slog.Logger
	highlightCSS []byte
	highlightTag string
}

// NewRouter builds the full site router.
func NewRouter(d Deps) (http.Handler, error) {
	h, err := NewHandler(d)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", h.Live)
	r.Get("/health/ready", h.Ready)

	r.Get("/", h.Home)
	r.Get("/sections/{key}", h.Section)
	r.Get("/blog", h.BlogList)
	r.Get("/blog/{id}", h.BlogPost)
	r.Post("/blog/{id}/like", h.LikePost)
	r.Post("/likes/{id}", h.LikeCertificate)
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.ContactSubmit)

	r.Get("/static/highlight.css", h.HighlightCSS)
	postDir := d.PostDir
	if postDir == "" {
		postDir = blog.DefaultDir
	}
	r.Handle("/"+postDir+"/*", rawSource(staticDir(d.SiteRoot, postDir)))
	for _, dir := range []string{"pdf", "images", "static"} {
		r.Handle("/"+dir+"/*", staticDir(d.SiteRoot, dir))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
		r.Post("/contact", h.APIContact)
		if d.Broker != nil {
			r.Get("/events", d.Broker.ServeHTTP)
		}
	})

	r.NotFound(h.NotFound)
	return r, nil
}

// NewHandler parses templates and prepares generated assets.
func NewHandler(d Deps) (*Handler, error) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	var css bytes.Buffer
	if err := render.WriteCSS(&css); err != nil {
		return nil, err
	}
	return &Handler{
		deps:         d,
		tmpl:         tmpl,
		logger:       d.Logger,
		highlightCSS: css.Bytes(),
		highlightTag: checksum.ETag(css.Bytes()),
	}, nil
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"sectionHref": sectionHref,
		"tooltip": func(sh *nav.Shell, sec nav.Section) string {
			s := *sh
			s.Hover(sec.Label)
			return s.Tooltip(sec)
		},
		"join": strings.Join,
		"inc":  func(i int) int { return i + 1 },
		"likeOf": func(id string, count int, action string) likeButton {
			return likeButton{ID: id, Count: count, Action: action}
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return tmpl, nil
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func sectionHref(key string, labels bool) string {
	href := "/sections/" + key
	if key == nav.Home {
		href = "/"
	}
	if labels {
		href += "?labels=1"
	}
	return href
}
