// Package blog is the blog reader: catalog filtering, lazy body fetching and
// rendering, likes, and live refresh of post assets.
package blog

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/starford/folio/internal/apperr"
	"github.com/starford/folio/internal/likes"
	"github.com/starford/folio/internal/models"
	"github.com/starford/folio/internal/render"
	"github.com/starford/folio/internal/sse"
	"github.com/starford/folio/internal/storage"
)

// DefaultDir is the asset directory holding post bodies.
const DefaultDir = "blogPosts"

// Notifier receives post and like changes.
type Notifier interface {
	PublishPostEvent(change sse.PostChange, id string)
	PublishLike(id string, count int)
}

// Article is an opened post with its rendered body.
type Article struct {
	models.Post
	Body  template.HTML
	Likes int
}

type entry struct {
	// base holds the catalog fields; post is base plus fetched metadata.
	base     models.Post
	post     models.Post
	builtin  bool
	hidden   bool
	loaded   bool
	checksum string
	body     template.HTML
}

// Service owns the post catalog and body cache.
type Service struct {
	store    storage.Provider
	renderer *render.Renderer
	counter  *likes.Counter
	notifier Notifier
	logger   *slog.Logger
	dir      string

	mu       sync.RWMutex
	order    []string
	entries  map[string]*entry
	bySource map[string]string
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier sets the receiver of post and like events.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithDir overrides the asset directory.
func WithDir(dir string) Option {
	return func(s *Service) { s.dir = strings.Trim(dir, "/") }
}

// New builds a service over the given catalog. Bodies are not fetched until
// Load or Open.
func New(store storage.Provider, renderer *render.Renderer, counter *likes.Counter, posts []models.Post, opts ...Option) *Service {
	s := &Service{
		store:    store,
		renderer: renderer,
		counter:  counter,
		logger:   slog.Default(),
		dir:      DefaultDir,
		entries:  make(map[string]*entry, len(posts)),
		bySource: make(map[string]string, len(posts)),
	}
	for _, o := range opts {
		o(s)
	}
	for _, p := range posts {
		s.add(&entry{post: p, builtin: true})
	}
	return s
}

// add registers e. Caller holds mu or owns s exclusively.
func (s *Service) add(e *entry) {
	if _, dup := s.entries[e.post.ID]; dup {
		return
	}
	e.base = e.post
	s.order = append(s.order, e.post.ID)
	s.entries[e.post.ID] = e
	s.bySource[s.assetPath(e.post)] = e.post.ID
}

// remove drops a discovered entry. Caller holds mu.
func (s *Service) remove(id string) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	delete(s.entries, id)
	delete(s.bySource, s.assetPath(e.post))
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Service) assetPath(p models.Post) string {
	return path.Join(s.dir, p.Source)
}

// List returns visible posts whose title contains query (case-insensitive)
// and whose category equals category (case-insensitive). Empty filters match
// everything. Catalog order is preserved.
func (s *Service) List(query, category string) []models.Post {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.order))
	for _, id := range s.order {
		e := s.entries[id]
		if e.hidden {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.post.Title), q) {
			continue
		}
		if category != "" && !strings.EqualFold(e.post.Category, category) {
			continue
		}
		out = append(out, e.post)
	}
	return out
}

// Categories returns the distinct categories of visible posts in catalog
// order.
func (s *Service) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]struct{}{}
	var out []string
	for _, id := range s.order {
		e := s.entries[id]
		if e.hidden || e.post.Category == "" {
			continue
		}
		key := strings.ToLower(e.post.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e.post.Category)
	}
	return out
}

// Post returns catalog metadata for id.
func (s *Service) Post(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return models.Post{}, false
	}
	return e.post, true
}

// Open returns the post with its rendered body, fetching it when it is not
// cached yet.
func (s *Service) Open(ctx context.Context, id string) (Article, error) {
	if _, ok := s.Post(id); !ok {
		return Article{}, fmt.Errorf("blog: post %s: %w", id, apperr.ErrNotFound)
	}

	s.mu.RLock()
	loaded := s.entries[id].loaded
	s.mu.RUnlock()

	if !loaded {
		if _, err := s.fetch(ctx, id); err != nil {
			s.logger.Warn("blog: open failed", slog.String("id", id), slog.String("error", err.Error()))
			return Article{}, fmt.Errorf("blog: open %s: %w", id, err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return Article{}, fmt.Errorf("blog: post %s: %w", id, apperr.ErrNotFound)
	}
	return Article{Post: e.post, Body: e.body, Likes: s.counter.Count(id)}, nil
}

// Likes returns the like count of id.
func (s *Service) Likes(id string) int {
	return s.counter.Count(id)
}

// Like increments the like counter of a listed post.
func (s *Service) Like(ctx context.Context, id string) (int, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	listed := ok && !e.hidden
	s.mu.RUnlock()
	if !listed {
		return 0, fmt.Errorf("blog: like %s: %w", id, apperr.ErrNotFound)
	}
	n, err := s.counter.Like(ctx, id)
	if s.notifier != nil && n > 0 {
		s.notifier.PublishLike(id, n)
	}
	return n, err
}
