package web

import (
	"net/http"
	"path/filepath"
	"strings"
)

// staticDir serves root/dir under /dir/ without directory listings.
func staticDir(root, dir string) http.Handler {
	fs := http.StripPrefix("/"+dir+"/", http.FileServer(http.Dir(filepath.Join(root, dir))))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

// rawSource serves post sources as inert text. Rendered posts live under
// /blog/{id}.
func rawSource(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "sandbox")
		next.ServeHTTP(w, r)
	})
}

// HighlightCSS handles GET /static/highlight.css.
func (h *Handler) HighlightCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", h.highlightTag)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Header.Get("If-None-Match") == h.highlightTag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(h.highlightCSS)
}
