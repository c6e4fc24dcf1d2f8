// Package assets downloads poster images referenced by movie metadata into a
// content-addressed on-disk cache, so repeated runs never re-fetch an image
// already present.
package assets

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"reelsort/internal/library"
	"reelsort/internal/logging"
)

// defaultExtension is used when the source URL does not carry a recognized
// image extension.
const defaultExtension = "jpg"

var imageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// Downloader fetches and caches poster images.
type Downloader struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient overrides the default HTTP client. Inject the run-wide
// shared client here so all outbound traffic uses one session.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Downloader) {
		if client != nil {
			d.httpClient = client
		}
	}
}

// NewDownloader constructs a poster downloader.
func NewDownloader(logger *slog.Logger, opts ...Option) *Downloader {
	d := &Downloader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.NewComponentLogger(logger, "assets"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CacheKey returns the deterministic content key a movie's poster is stored
// under: the hex md5 of the canonical movie name.
func CacheKey(movieName string) string {
	sum := md5.Sum([]byte(movieName))
	return hex.EncodeToString(sum[:])
}

// Download fetches the poster at posterURL into the cache under infoDir and
// returns the local path. It returns "" when the URL is empty, when the
// fetch fails, or when the write fails: a missing poster never blocks the
// pipeline, so every failure is logged and absorbed here. A cache hit
// returns immediately without touching the network.
func (d *Downloader) Download(ctx context.Context, posterURL, movieName, infoDir string) string {
	posterURL = strings.TrimSpace(posterURL)
	if posterURL == "" || posterURL == "N/A" {
		return ""
	}

	postersDir := filepath.Join(infoDir, library.PostersDirName)
	if err := os.MkdirAll(postersDir, 0o755); err != nil {
		d.logger.Error("could not create posters directory", logging.String("dir", postersDir), logging.Error(err))
		return ""
	}

	target := filepath.Join(postersDir, CacheKey(movieName)+"."+extensionFor(posterURL))
	if _, err := os.Stat(target); err == nil {
		return target
	}

	if err := d.fetch(ctx, posterURL, target); err != nil {
		d.logger.Error("poster download failed",
			logging.String("movie", movieName),
			logging.String("url", posterURL),
			logging.Error(err),
		)
		return ""
	}
	return target
}

func (d *Downloader) fetch(ctx context.Context, posterURL, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, posterURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("poster fetch returned %d", resp.StatusCode)
	}

	// Write through a temp file so a partial download never occupies the
	// cache key.
	tmp, err := os.CreateTemp(filepath.Dir(target), ".poster-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write poster: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalize poster: %w", err)
	}
	return nil
}

func extensionFor(posterURL string) string {
	parsed, err := url.Parse(posterURL)
	if err != nil {
		return defaultExtension
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(parsed.Path), "."))
	if _, ok := imageExtensions[ext]; !ok {
		return defaultExtension
	}
	return ext
}
