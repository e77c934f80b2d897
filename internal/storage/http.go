package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/starford/folio/internal/apperr"
)

// maxAssetSize caps a single remote asset.
const maxAssetSize = 4 << 20

// HTTP implements Provider by fetching assets relative to a base URL.
type HTTP struct {
	base   *url.URL
	client *http.Client
}

// NewHTTP returns a provider for assets served under baseURL.
func NewHTTP(baseURL string, timeout time.Duration) (*HTTP, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("storage: base url must be http(s): %s: %w", baseURL, apperr.ErrInvalidInput)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTP{base: u, client: &http.Client{Timeout: timeout}}, nil
}

// Read fetches base/path with one GET.
func (h *HTTP) Read(ctx context.Context, path string) ([]byte, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil || ref.IsAbs() || strings.Contains(path, "..") {
		return nil, fmt.Errorf("storage: bad asset path %q: %w", path, apperr.ErrInvalidInput)
	}
	target := h.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("storage: build request: %w", err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("storage: fetch %s: %w", path, apperr.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("storage: fetch %s: status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize+1))
	if err != nil {
		return nil, fmt.Errorf("storage: read body %s: %w", path, err)
	}
	if len(data) > maxAssetSize {
		return nil, fmt.Errorf("storage: fetch %s: asset exceeds %d bytes: %w", path, maxAssetSize, apperr.ErrInvalidInput)
	}
	return data, nil
}
