package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/starford/folio/internal/contact"
	"github.com/starford/folio/internal/likes"
	"github.com/starford/folio/internal/storage"
	"github.com/starford/folio/internal/testutil"
)

func TestNewSubmitter_Modes(t *testing.T) {
	logger := slog.Default()

	s, err := newSubmitter(ContactConfig{Mode: ContactModeLog}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(contact.LogSubmitter); !ok {
		t.Errorf("log mode built %T", s)
	}

	s, err = newSubmitter(ContactConfig{Mode: ContactModeRelay, Endpoint: "http://localhost/x"}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*contact.RelaySubmitter); !ok {
		t.Errorf("relay mode built %T", s)
	}

	s, err = newSubmitter(ContactConfig{Mode: ContactModeSMTP}, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*contact.MailSubmitter); !ok {
		t.Errorf("smtp mode built %T", s)
	}

	if _, err := newSubmitter(ContactConfig{Mode: "fax"}, logger); err == nil {
		t.Error("unknown mode should fail")
	}
}

func TestNewBlog_LoadsFromSiteRoot(t *testing.T) {
	root := testutil.SiteRoot(t, map[string]string{
		"blogPosts/2030-01-01.md": "---\ntitle: Local Post\ncategory: Notes\n---\nhello",
	})
	site, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	counter, err := likes.Load(context.Background(), testutil.OpenKV(t, testutil.TempDBPath(t)), slog.Default())
	if err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	cfg.Site.Root = root
	posts, err := newBlog(cfg, site, counter, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := posts.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, p := range posts.List("local post", "") {
		if p.Title == "Local Post" {
			found = true
		}
	}
	if !found {
		t.Error("discovered post missing from listing")
	}
}

func TestNewBlog_HTTPSourceRequiresValidURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Blog.Source = BlogSourceHTTP
	cfg.Blog.BaseURL = "ftp://example.com"
	if _, err := newBlog(cfg, nil, nil, slog.Default()); err == nil {
		t.Error("non-http base url should fail")
	}
}

func TestRun_RequiresConfig(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Error("Run without config should fail")
	}
	if err := RunMCP(context.Background()); err == nil {
		t.Error("RunMCP without config should fail")
	}
}
