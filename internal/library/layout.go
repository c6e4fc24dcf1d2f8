// Package library defines the on-disk layout of an organized movie library
// and prepares it at the start of a run: genre folders, the manual-review
// bucket, and the metadata info store.
package library

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"reelsort/internal/catalog"
	"reelsort/internal/logging"
	"reelsort/internal/services"
)

const (
	// ManualReviewDirName is the fallback bucket for records without a
	// catalog-matched genre.
	ManualReviewDirName = "Manual Checking"
	// InfoDirName holds the per-movie metadata documents and poster cache.
	InfoDirName = "movies info"
	// PostersDirName is the content-addressed poster cache under the info dir.
	PostersDirName = "posters"
	// SummaryFileName is the per-run summary written at the library root.
	SummaryFileName = "process_summary.txt"
)

// InfoDir returns the metadata store path for a library root.
func InfoDir(root string) string {
	return filepath.Join(root, InfoDirName)
}

// ManualReviewDir returns the manual-review bucket path for a library root.
func ManualReviewDir(root string) string {
	return filepath.Join(root, ManualReviewDirName)
}

// IsReserved reports whether a folder name is structural rather than a movie
// candidate: the info store, the review bucket, or a genre folder.
func IsReserved(name string, cat *catalog.Catalog) bool {
	return name == InfoDirName || name == ManualReviewDirName || cat.Contains(name)
}

// Ensure creates the base layout under root: the info store, every genre
// folder in the catalog, and the manual-review bucket. A stray info store
// inside the review bucket left by an interrupted earlier run is migrated
// back to the root. Ensure failures abort the whole run.
func Ensure(root string, cat *catalog.Catalog, logger *slog.Logger) error {
	if err := os.MkdirAll(InfoDir(root), 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "layout", "create info store", "failed to create movies info directory", err)
	}
	for _, genre := range cat.Labels() {
		if err := os.MkdirAll(filepath.Join(root, genre), 0o755); err != nil {
			return services.Wrap(services.ErrConfiguration, "layout", "create genre folder", genre, err)
		}
	}
	if err := os.MkdirAll(ManualReviewDir(root), 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "layout", "create review bucket", "failed to create manual checking directory", err)
	}

	migrateStrayInfoDir(root, logger)
	return nil
}

// migrateStrayInfoDir moves metadata documents out of a duplicate
// "movies info" folder inside the review bucket, then removes the duplicate.
// Best-effort: failures are logged and never abort the run.
func migrateStrayInfoDir(root string, logger *slog.Logger) {
	if logger == nil {
		logger = logging.NewNop()
	}
	stray := filepath.Join(ManualReviewDir(root), InfoDirName)
	info, err := os.Stat(stray)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not inspect stray info directory", logging.String("path", stray), logging.Error(err))
		}
		return
	}
	if !info.IsDir() {
		return
	}

	entries, err := os.ReadDir(stray)
	if err != nil {
		logger.Warn("could not read stray info directory", logging.String("path", stray), logging.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		target := filepath.Join(InfoDir(root), entry.Name())
		if _, err := os.Stat(target); err == nil {
			continue
		}
		if err := os.Rename(filepath.Join(stray, entry.Name()), target); err != nil {
			logger.Warn("could not migrate metadata document", logging.String("file", entry.Name()), logging.Error(err))
		}
	}
	if err := os.RemoveAll(stray); err != nil {
		logger.Warn("could not remove stray info directory", logging.String("path", stray), logging.Error(err))
		return
	}
	logger.Info("removed stray info directory from review bucket", logging.String("path", stray))
}
