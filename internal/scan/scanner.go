// Package scan enumerates candidate movie folders beneath a library root and
// collapses duplicates, keeping the highest quality tier per normalized
// title.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"reelsort/internal/catalog"
	"reelsort/internal/library"
	"reelsort/internal/logging"
	"reelsort/internal/progress"
	"reelsort/internal/titleinfo"
)

// Scanner walks the immediate subdirectories of a root, extracting title
// guesses and deduplicating by quality-normalized name.
type Scanner struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewScanner constructs a scanner routing structural-folder checks through
// the supplied catalog.
func NewScanner(cat *catalog.Catalog, logger *slog.Logger) *Scanner {
	return &Scanner{catalog: cat, logger: logging.NewComponentLogger(logger, "scanner")}
}

// Scan returns one record per unique movie folder under root. Reserved
// structural folders are skipped; folders yielding no usable title are left
// untouched and silently excluded. When two folders normalize to the same
// title, only the higher quality tier survives; ties keep the first-seen
// record. Progress is emitted per top-level entry examined.
func (s *Scanner) Scan(root string, reporter progress.Reporter) ([]*Record, error) {
	if reporter == nil {
		reporter = progress.Nop()
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read library root: %w", err)
	}
	dirs := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry)
		}
	}

	var (
		records []*Record
		byKey   = make(map[string]int)
	)
	for i, entry := range dirs {
		reporter.Report(progress.StageScanning, float64(i)/float64(len(dirs))*100)

		name := entry.Name()
		if library.IsReserved(name, s.catalog) {
			continue
		}
		info, ok := titleinfo.Parse(name)
		if !ok {
			s.logger.Debug("no usable title, skipping folder", logging.String("folder", name))
			continue
		}
		candidate := &Record{
			Title:   info.Title,
			Quality: info.Quality,
			Path:    filepath.Join(root, name),
		}

		key := titleinfo.NormalizeForDedup(name)
		if idx, seen := byKey[key]; seen {
			kept := records[idx]
			if candidate.Quality > kept.Quality {
				s.logger.Info("replacing lower quality duplicate",
					logging.String("kept", filepath.Base(candidate.Path)),
					logging.String("dropped", filepath.Base(kept.Path)),
				)
				records[idx] = candidate
			} else {
				s.logger.Info("dropping duplicate",
					logging.String("kept", filepath.Base(kept.Path)),
					logging.String("dropped", filepath.Base(candidate.Path)),
				)
			}
			continue
		}
		byKey[key] = len(records)
		records = append(records, candidate)
	}
	return records, nil
}
