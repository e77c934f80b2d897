package blog

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/starford/folio/internal/checksum"
	"github.com/starford/folio/internal/models"
	"github.com/starford/folio/internal/parser"
	"github.com/starford/folio/internal/sse"
	"github.com/starford/folio/internal/storage"
)

// Load fetches every post body once. A markdown post that cannot be fetched
// is dropped from the listing; an HTML post that cannot be fetched is only
// logged. When the store can list assets, assets missing from the catalog
// are added as posts.
func (s *Service) Load(ctx context.Context) error {
	if lister, ok := s.store.(storage.Lister); ok {
		assets, err := lister.List(ctx, s.dir)
		if err != nil {
			s.logger.Warn("blog: list assets failed", slog.String("error", err.Error()))
		}
		for _, a := range assets {
			s.discover(a.Path)
		}
	}

	for _, id := range s.ids() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.fetch(ctx, id); err != nil {
			s.fetchFailed(id, err)
		}
	}
	return nil
}

func (s *Service) ids() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

func (s *Service) fetchFailed(id string, err error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && e.post.Format == models.FormatMarkdown {
		e.hidden = true
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	if e.post.Format == models.FormatMarkdown {
		s.logger.Warn("blog: markdown post dropped", slog.String("id", id), slog.String("error", err.Error()))
		return
	}
	s.logger.Warn("blog: html post unavailable", slog.String("id", id), slog.String("error", err.Error()))
}

// fetch reads, parses and renders the body of id. changed is false when the
// content checksum matches the cached body.
func (s *Service) fetch(ctx context.Context, id string) (changed bool, err error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	if !ok {
		s.mu.RUnlock()
		return false, fmt.Errorf("blog: fetch %s: unknown post", id)
	}
	post := e.base
	s.mu.RUnlock()

	data, err := s.store.Read(ctx, s.assetPath(post))
	if err != nil {
		return false, err
	}
	sum := checksum.Sum(data)

	s.mu.RLock()
	same := e.loaded && e.checksum == sum
	s.mu.RUnlock()
	if same {
		return false, nil
	}

	res, err := parser.Parse(data, post.Format == models.FormatHTML)
	if err != nil {
		return false, err
	}
	body, err := s.renderer.Body(post.Format, []byte(res.Body))
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	applyMeta(&post, res, post.Source)
	e.post = post
	e.checksum = sum
	e.body = body
	e.loaded = true
	e.hidden = false
	return true, nil
}

// applyMeta fills fields left blank by the catalog from frontmatter and the
// body. p must start from the catalog fields so edits to an asset replace
// earlier metadata.
func applyMeta(p *models.Post, res *parser.Result, source string) {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = strings.TrimSpace(v)
		}
	}
	if res.Meta != nil {
		fill(&p.Title, res.Meta.Title)
		fill(&p.Category, res.Meta.Category)
		fill(&p.Date, res.Meta.Date)
		fill(&p.Image, res.Meta.Image)
		fill(&p.Excerpt, res.Meta.Excerpt)
	}
	fill(&p.Title, res.Title)
	fill(&p.Title, parser.TitleFromFilename(source))
}

// discover registers an asset that is not in the catalog yet. It returns the
// post id and whether a new entry was created.
func (s *Service) discover(rel string) (string, bool) {
	if !storage.IsPostAsset(rel) || !strings.HasPrefix(rel, s.dir+"/") {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.bySource[rel]; ok {
		return id, false
	}

	source := strings.TrimPrefix(rel, s.dir+"/")
	ext := path.Ext(source)
	id := strings.TrimSuffix(path.Base(source), ext)
	if _, taken := s.entries[id]; taken {
		return "", false
	}

	format := models.FormatMarkdown
	if strings.EqualFold(ext, ".html") {
		format = models.FormatHTML
	}
	s.add(&entry{post: models.Post{ID: id, Source: source, Format: format}})
	return id, true
}

// Changed refreshes the post behind the asset rel after it was created or
// written, publishing post.created or post.updated.
func (s *Service) Changed(ctx context.Context, rel string) {
	id, created := s.discover(rel)
	if id == "" {
		s.mu.RLock()
		id = s.bySource[rel]
		s.mu.RUnlock()
	}
	if id == "" {
		return
	}

	changed, err := s.fetch(ctx, id)
	if err != nil {
		s.fetchFailed(id, err)
		return
	}
	if !changed && !created {
		return
	}
	s.logger.Debug("blog: refreshed", slog.String("id", id), slog.String("path", rel))
	if s.notifier == nil {
		return
	}
	if created {
		s.notifier.PublishPostEvent(sse.PostCreated, id)
	} else {
		s.notifier.PublishPostEvent(sse.PostUpdated, id)
	}
}

// Removed handles a deleted asset. Discovered posts leave the catalog;
// catalog markdown posts are hidden; catalog HTML posts lose their body.
func (s *Service) Removed(rel string) {
	s.mu.Lock()
	id, ok := s.bySource[rel]
	if !ok {
		s.mu.Unlock()
		return
	}
	e := s.entries[id]
	switch {
	case !e.builtin:
		s.remove(id)
	case e.post.Format == models.FormatMarkdown:
		e.hidden = true
		e.loaded = false
		e.body = ""
		e.checksum = ""
	default:
		e.loaded = false
		e.body = ""
		e.checksum = ""
	}
	s.mu.Unlock()

	s.logger.Debug("blog: removed", slog.String("id", id), slog.String("path", rel))
	if s.notifier != nil {
		s.notifier.PublishPostEvent(sse.PostDeleted, id)
	}
}

// Reconcile compares the catalog against the listed assets, removing posts
// whose asset vanished and refreshing the rest.
func (s *Service) Reconcile(ctx context.Context) {
	lister, ok := s.store.(storage.Lister)
	if !ok {
		return
	}
	assets, err := lister.List(ctx, s.dir)
	if err != nil {
		s.logger.Warn("blog: reconcile list failed", slog.String("error", err.Error()))
		return
	}
	disk := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		disk[a.Path] = struct{}{}
	}

	s.mu.RLock()
	var gone []string
	for src, id := range s.bySource {
		if _, ok := disk[src]; ok {
			continue
		}
		if e := s.entries[id]; e.loaded || !e.builtin {
			gone = append(gone, src)
		}
	}
	s.mu.RUnlock()

	for _, src := range gone {
		s.Removed(src)
	}
	for _, a := range assets {
		if s.current(a) {
			continue
		}
		s.Changed(ctx, a.Path)
	}
}

// current reports whether a matches the cached body of its post.
func (s *Service) current(a storage.Asset) bool {
	if a.Checksum == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.bySource[a.Path]
	if !ok {
		return false
	}
	e := s.entries[id]
	return e.loaded && e.checksum == a.Checksum
}
