// Package storage reads blog post assets from the site root or a remote host.
package storage

import (
	"context"
	"path"
	"strings"
	"time"
)

// Asset describes one post asset file.
type Asset struct {
	Path      string    // relative to the provider root, slash separated
	Checksum  string    // hex SHA-256 of the content
	UpdatedAt time.Time // zero when unknown
}

// Provider fetches raw asset bytes.
type Provider interface {
	// Read returns the raw bytes of the asset at path (relative to root).
	// A missing asset yields an error wrapping apperr.ErrNotFound.
	Read(ctx context.Context, path string) ([]byte, error)
}

// Lister is implemented by providers that can enumerate their assets.
type Lister interface {
	// List returns every .md and .html asset under dir.
	List(ctx context.Context, dir string) ([]Asset, error)
}

// IsPostAsset reports whether name has a post asset extension.
func IsPostAsset(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".html":
		return true
	}
	return false
}
