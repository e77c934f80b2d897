package blog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/starford/folio/internal/apperr"
	"github.com/starford/folio/internal/content"
	"github.com/starford/folio/internal/likes"
	"github.com/starford/folio/internal/models"
	"github.com/starford/folio/internal/render"
	"github.com/starford/folio/internal/sse"
	"github.com/starford/folio/internal/storage"
	"github.com/starford/folio/internal/testutil"
)

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) PublishPostEvent(change sse.PostChange, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := map[sse.PostChange]string{sse.PostCreated: "created", sse.PostUpdated: "updated", sse.PostDeleted: "deleted"}[change]
	r.events = append(r.events, name+":"+id)
}

func (r *recorder) PublishLike(id string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "like:"+id)
}

func (r *recorder) has(e string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.events {
		if v == e {
			return true
		}
	}
	return false
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

const (
	sqlPost  = "# Understanding SQL Joins\n\n```sql\nSELECT * FROM a JOIN b USING (id);\n```\n"
	gridPost = "<h1>Mastering CSS Grid</h1><p>Use <code>grid-template-areas</code>.</p><script>alert(1)</script>"
)

func testEnv(t *testing.T, files map[string]string, posts []models.Post) (*Service, string, *recorder) {
	t.Helper()
	root := testutil.SiteRoot(t, files)
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	counter, err := likes.Load(context.Background(), testutil.OpenKV(t, testutil.TempDBPath(t)), quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	svc := New(store, render.New(), counter, posts, WithNotifier(rec), WithLogger(quietLogger()))
	return svc, root, rec
}

func defaultFiles() map[string]string {
	return map[string]string{
		"blogPosts/2025-02-03.md":   sqlPost,
		"blogPosts/2025-01-10.html": gridPost,
	}
}

func TestList_TitleSearch(t *testing.T) {
	svc, _, _ := testEnv(t, defaultFiles(), content.Posts)

	got := svc.List("SQL", "")
	if len(got) != 1 || got[0].Title != "Understanding SQL Joins" {
		t.Errorf("List(SQL) = %+v", got)
	}
	if got := svc.List("sql", ""); len(got) != 1 {
		t.Errorf("search should be case-insensitive, got %d", len(got))
	}
	if got := svc.List("zzz", ""); len(got) != 0 {
		t.Errorf("List(zzz) = %+v, want empty", got)
	}
}

func TestList_CategoryAndOrder(t *testing.T) {
	svc, _, _ := testEnv(t, defaultFiles(), content.Posts)

	all := svc.List("", "")
	if len(all) != 2 || all[0].ID != "2025-02-03" || all[1].ID != "2025-01-10" {
		t.Fatalf("List() = %+v, want catalog order", all)
	}
	if got := svc.List("", "web development"); len(got) != 1 || got[0].ID != "2025-01-10" {
		t.Errorf("category filter = %+v", got)
	}
	if got := svc.List("SQL", "Web Development"); len(got) != 0 {
		t.Errorf("filters must both match, got %+v", got)
	}
	if got := svc.List("", "Web"); len(got) != 0 {
		t.Errorf("category is exact, got %+v", got)
	}
}

func TestCategories(t *testing.T) {
	svc, _, _ := testEnv(t, defaultFiles(), content.Posts)
	cats := svc.Categories()
	if len(cats) != 2 || cats[0] != "Data Analytics" || cats[1] != "Web Development" {
		t.Errorf("Categories = %v", cats)
	}
}

func TestLoad_DropsMissingMarkdownKeepsHTML(t *testing.T) {
	svc, _, _ := testEnv(t, map[string]string{"blogPosts/other.txt": "x"}, content.Posts)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := svc.List("", "")
	if len(got) != 1 || got[0].ID != "2025-01-10" {
		t.Errorf("after Load = %+v, want only the html post", got)
	}
	if _, err := svc.Open(context.Background(), "2025-01-10"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Open missing html: err = %v", err)
	}
}

func TestOpen_Markdown(t *testing.T) {
	svc, _, _ := testEnv(t, defaultFiles(), content.Posts)
	a, err := svc.Open(context.Background(), "2025-02-03")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if a.Title != "Understanding SQL Joins" {
		t.Errorf("title = %q", a.Title)
	}
	body := string(a.Body)
	if !strings.Contains(body, "<h1") || !strings.Contains(body, `class="chroma"`) {
		t.Errorf("body not rendered: %s", body)
	}
}

func TestOpen_HTMLSanitized(t *testing.T) {
	svc, _, _ := testEnv(t, defaultFiles(), content.Posts)
	a, err := svc.Open(context.Background(), "2025-01-10")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	body := string(a.Body)
	if strings.Contains(body, "<script") {
		t.Errorf("script survived: %s", body)
	}
	if !strings.Contains(body, "grid-template-areas") {
		t.Errorf("content lost: %s", body)
	}
}

func TestOpen_Unknown(t *testing.T) {
	svc, _, _ := testEnv(t, defaultFiles(), content.Posts)
	if _, err := svc.Open(context.Background(), "nope"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLike(t *testing.T) {
	svc, _, rec := testEnv(t, defaultFiles(), content.Posts)
	ctx := context.Background()
	for range 3 {
		if _, err := svc.Like(ctx, "2025-02-03"); err != nil {
			t.Fatalf("Like: %v", err)
		}
	}
	if svc.Likes("2025-02-03") != 3 || svc.Likes("2025-01-10") != 0 {
		t.Errorf("likes = %d/%d", svc.Likes("2025-02-03"), svc.Likes("2025-01-10"))
	}
	if !rec.has("like:2025-02-03") {
		t.Error("like event not published")
	}
	if _, err := svc.Like(ctx, "nope"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown like: err = %v", err)
	}
}

func TestLoad_DiscoversFrontmatterPost(t *testing.T) {
	files := defaultFiles()
	files["blogPosts/go-generics.md"] = "---\ntitle: Go Generics\ncategory: Programming\nexcerpt: Type parameters.\n---\nBody\n"
	svc, _, _ := testEnv(t, files, content.Posts)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := svc.List("generics", "programming")
	if len(got) != 1 || got[0].ID != "go-generics" || got[0].Excerpt != "Type parameters." {
		t.Fatalf("discovered = %+v", got)
	}
	a, err := svc.Open(context.Background(), "go-generics")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if strings.Contains(string(a.Body), "title:") {
		t.Errorf("frontmatter leaked into body: %s", a.Body)
	}
}

func TestChangedAndRemoved(t *testing.T) {
	svc, root, rec := testEnv(t, defaultFiles(), content.Posts)
	ctx := context.Background()
	_ = svc.Load(ctx)

	svc.Changed(ctx, "blogPosts/2025-02-03.md")
	if rec.count() != 0 {
		t.Errorf("unchanged content published events: %v", rec.events)
	}

	testutil.WriteFile(t, root, "blogPosts/2025-02-03.md", "# Joins, revised\n")
	svc.Changed(ctx, "blogPosts/2025-02-03.md")
	if !rec.has("updated:2025-02-03") {
		t.Errorf("events = %v", rec.events)
	}
	a, _ := svc.Open(ctx, "2025-02-03")
	if !strings.Contains(string(a.Body), "revised") {
		t.Errorf("body not refreshed: %s", a.Body)
	}

	testutil.WriteFile(t, root, "blogPosts/fresh.md", "# Fresh\n")
	svc.Changed(ctx, "blogPosts/fresh.md")
	if !rec.has("created:fresh") {
		t.Errorf("events = %v", rec.events)
	}
	if p, ok := svc.Post("fresh"); !ok || p.Title != "Fresh" {
		t.Errorf("fresh post = %+v, %v", p, ok)
	}

	svc.Removed("blogPosts/fresh.md")
	if _, ok := svc.Post("fresh"); ok {
		t.Error("discovered post should leave the catalog")
	}
	svc.Removed("blogPosts/2025-02-03.md")
	if got := svc.List("SQL", ""); len(got) != 0 {
		t.Errorf("removed markdown post still listed: %+v", got)
	}
	if !rec.has("deleted:2025-02-03") {
		t.Errorf("events = %v", rec.events)
	}
}

func TestChanged_RefreshesFrontmatter(t *testing.T) {
	svc, root, rec := testEnv(t, defaultFiles(), content.Posts)
	ctx := context.Background()

	testutil.WriteFile(t, root, "blogPosts/draft.md", "---\ntitle: Old Title\ncategory: Go\n---\nfirst\n")
	svc.Changed(ctx, "blogPosts/draft.md")
	testutil.WriteFile(t, root, "blogPosts/draft.md", "---\ntitle: New Title\ncategory: Rust\n---\nsecond\n")
	svc.Changed(ctx, "blogPosts/draft.md")

	if !rec.has("created:draft") || !rec.has("updated:draft") {
		t.Fatalf("events = %v", rec.events)
	}
	p, ok := svc.Post("draft")
	if !ok || p.Title != "New Title" || p.Category != "Rust" {
		t.Errorf("post = %+v, want refreshed metadata", p)
	}
	if got := svc.List("new", "rust"); len(got) != 1 {
		t.Errorf("List(new, rust) = %+v", got)
	}
	if got := svc.List("old", ""); len(got) != 0 {
		t.Errorf("stale title still searchable: %+v", got)
	}
}

func TestChanged_CatalogFieldsWin(t *testing.T) {
	svc, root, _ := testEnv(t, defaultFiles(), content.Posts)
	ctx := context.Background()
	_ = svc.Load(ctx)

	testutil.WriteFile(t, root, "blogPosts/2025-02-03.md", "---\ntitle: Renamed\nexcerpt: ignored\n---\nbody\n")
	svc.Changed(ctx, "blogPosts/2025-02-03.md")

	p, _ := svc.Post("2025-02-03")
	if p.Title != "Understanding SQL Joins" || p.Category != "Data Analytics" {
		t.Errorf("catalog fields overwritten: %+v", p)
	}
}

func TestLike_HiddenPostRejected(t *testing.T) {
	svc, _, _ := testEnv(t, map[string]string{"blogPosts/2025-01-10.html": gridPost}, content.Posts)
	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := svc.Like(ctx, "2025-02-03"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("like dropped post: err = %v, want ErrNotFound", err)
	}
	if svc.Likes("2025-02-03") != 0 {
		t.Errorf("dropped post counted a like")
	}
	if _, err := svc.Like(ctx, "2025-01-10"); err != nil {
		t.Errorf("like listed post: %v", err)
	}
}

type countingFS struct {
	*storage.FS
	mu    sync.Mutex
	reads int
}

func (c *countingFS) Read(ctx context.Context, path string) ([]byte, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.FS.Read(ctx, path)
}

func (c *countingFS) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

func TestReconcile_SkipsUnchangedAssets(t *testing.T) {
	root := testutil.SiteRoot(t, defaultFiles())
	fs, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	store := &countingFS{FS: fs}
	counter, err := likes.Load(context.Background(), testutil.OpenKV(t, testutil.TempDBPath(t)), quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	svc := New(store, render.New(), counter, content.Posts, WithLogger(quietLogger()))
	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := store.count()

	svc.Reconcile(ctx)
	if got := store.count(); got != before {
		t.Errorf("reconcile re-read unchanged assets: %d reads", got-before)
	}

	testutil.WriteFile(t, root, "blogPosts/2025-02-03.md", "# Joins again\n")
	svc.Reconcile(ctx)
	if got := store.count(); got != before+1 {
		t.Errorf("reads after one edit = %d, want 1", got-before)
	}
}

func TestWithDir(t *testing.T) {
	root := testutil.SiteRoot(t, map[string]string{"posts/hello.md": "# Hello\n"})
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	counter, err := likes.Load(context.Background(), testutil.OpenKV(t, testutil.TempDBPath(t)), quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	svc := New(store, render.New(), counter, nil, WithDir("/posts/"), WithLogger(quietLogger()))
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p, ok := svc.Post("hello"); !ok || p.Title != "Hello" {
		t.Errorf("post = %+v, %v", p, ok)
	}
}
