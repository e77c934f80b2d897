package web

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/folio/internal/apperr"
	"github.com/starford/folio/internal/blog"
	"github.com/starford/folio/internal/contact"
	"github.com/starford/folio/internal/content"
	"github.com/starford/folio/internal/modal"
	"github.com/starford/folio/internal/models"
	"github.com/starford/folio/internal/nav"
)

type certItem struct {
	models.Certificate
	Likes   int
	ViewURL string
}

type projectItem struct {
	models.Project
	ViewURL string
}

type postItem struct {
	models.Post
	Likes int
}

// pageData is the template input for every section.
type pageData struct {
	Shell     *nav.Shell
	Sections  []nav.Section
	Title     string
	Body      template.HTML
	LabelsURL string

	Profile    models.Profile
	About      []string
	Skills     []models.SkillGroup
	Education  []models.Degree
	Experience []models.Job

	Certificates []certItem
	Projects     []projectItem
	ShowAll      bool
	HasHidden    bool
	ShowAllURL   string
	Modal        *modal.Modal
	ScrollLocked bool
	CloseURL     string
	PrevURL      string
	NextURL      string

	Posts      []postItem
	Query      string
	Category   string
	Categories []string
	Article    *blog.Article
	ShareURL   string

	Form *contact.Form
}

// shellFor rebuilds navigation state from the request.
func shellFor(r *http.Request, key string) (*nav.Shell, error) {
	sh := nav.New()
	if err := sh.Select(key); err != nil {
		return nil, err
	}
	if r.URL.Query().Get("labels") == "1" {
		sh.ToggleLabels()
	}
	return sh, nil
}

func (h *Handler) newPage(r *http.Request, sh *nav.Shell) *pageData {
	q := r.URL.Query()
	if sh.LabelsVisible {
		q.Del("labels")
	} else {
		q.Set("labels", "1")
	}
	labelsURL := r.URL.Path
	if enc := q.Encode(); enc != "" {
		labelsURL += "?" + enc
	}
	return &pageData{
		Shell:     sh,
		Sections:  nav.Sections(),
		Title:     sh.Current().Label,
		LabelsURL: labelsURL,
		Profile:   content.Profile,
	}
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.showSection(w, r, nav.Home)
}

// Section handles GET /sections/{key}.
func (h *Handler) Section(w http.ResponseWriter, r *http.Request) {
	h.showSection(w, r, chi.URLParam(r, "key"))
}

func (h *Handler) showSection(w http.ResponseWriter, r *http.Request, key string) {
	sh, err := shellFor(r, key)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p := h.newPage(r, sh)

	switch key {
	case nav.About:
		p.About = content.About
		p.Skills = content.Skills
	case nav.Education:
		p.Education = content.Education
	case nav.Experience:
		p.Experience = content.Experience
	case nav.Projects:
		h.fillProjects(r, p)
	case nav.Blog:
		h.fillBlog(r, p)
	case nav.Contact:
		p.Form = &contact.Form{}
	}
	h.render(w, r, http.StatusOK, p)
}

// render executes exactly one section template, then wraps it in the layout
// unless the request is an HTMX fragment request.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, p *pageData) {
	name := "section-" + p.Shell.Active
	if p.Article != nil {
		name = "post"
	}

	var body bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&body, name, p); err != nil {
		h.logger.Error("render section failed", slog.String("template", name), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "HX-Request")
	if isHTMX(r) {
		w.WriteHeader(status)
		_, _ = w.Write(body.Bytes())
		return
	}

	p.Body = template.HTML(body.String())
	var page bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&page, "layout", p); err != nil {
		h.logger.Error("render layout failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(page.Bytes())
}

// fillProjects applies the show-all toggle and modal state from the query.
func (h *Handler) fillProjects(r *http.Request, p *pageData) {
	q := r.URL.Query()
	labels := p.Shell.LabelsVisible
	p.ShowAll = q.Get("all") == "1"
	p.HasHidden = content.HasHidden(content.Certificates)
	p.ShowAllURL = projectsURL(labels, !p.ShowAll, nil)
	p.CloseURL = projectsURL(labels, p.ShowAll, nil)

	for _, c := range content.Displayed(content.Certificates, p.ShowAll) {
		p.Certificates = append(p.Certificates, certItem{
			Certificate: c,
			Likes:       h.deps.Likes.Count(c.ID),
			ViewURL:     projectsURL(labels, p.ShowAll, url.Values{"pdf": {c.PDFURL}}),
		})
	}
	for _, pr := range content.Projects {
		p.Projects = append(p.Projects, projectItem{
			Project: pr,
			ViewURL: projectsURL(labels, p.ShowAll, url.Values{"project": {pr.Slug}}),
		})
	}

	m := &modal.Modal{}
	if c, ok := content.CertificateByPDF(content.Certificates, q.Get("pdf")); ok {
		m.OpenPDF(c.PDFURL)
	} else if pr, ok := content.ProjectBySlug(content.Projects, q.Get("project")); ok {
		idx, _ := strconv.Atoi(q.Get("image"))
		m.OpenProjectAt(pr, idx)
		c := m.Carousel()
		p.PrevURL = projectsURL(labels, p.ShowAll, url.Values{"project": {pr.Slug}, "image": {strconv.Itoa(c.PrevIndex())}})
		p.NextURL = projectsURL(labels, p.ShowAll, url.Values{"project": {pr.Slug}, "image": {strconv.Itoa(c.NextIndex())}})
	}
	if m.IsOpen() {
		p.Modal = m
		p.ScrollLocked = m.ScrollLocked()
	}
}

func projectsURL(labels, all bool, extra url.Values) string {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	if all {
		q.Set("all", "1")
	}
	if labels {
		q.Set("labels", "1")
	}
	u := "/sections/" + nav.Projects
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// NotFound renders the not-found page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.tmpl.ExecuteTemplate(w, "not-found", nil); err != nil {
		h.logger.Error("render not-found failed", slog.String("error", err.Error()))
	}
}

// fail maps domain errors to HTML responses.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrUnknownSection):
		h.NotFound(w, r)
	case errors.Is(err, apperr.ErrInvalidInput):
		http.Error(w, "bad request", http.StatusBadRequest)
	default:
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
