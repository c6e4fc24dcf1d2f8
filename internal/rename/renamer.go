// Package rename derives canonical folder names from extracted title
// attributes and performs safe, best-effort moves. One folder failing to
// rename never aborts the batch.
package rename

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"reelsort/internal/catalog"
	"reelsort/internal/fileutil"
	"reelsort/internal/library"
	"reelsort/internal/logging"
	"reelsort/internal/progress"
	"reelsort/internal/textutil"
	"reelsort/internal/titleinfo"
)

// Renamer renames movie folders to their canonical "{title} ({quality})"
// form.
type Renamer struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewRenamer constructs a renamer using the supplied catalog for reserved
// name checks.
func NewRenamer(cat *catalog.Catalog, logger *slog.Logger) *Renamer {
	return &Renamer{catalog: cat, logger: logging.NewComponentLogger(logger, "renamer")}
}

// CanonicalName composes the sanitized canonical folder name for an
// extraction result. The quality segment is omitted when unspecified.
func CanonicalName(info titleinfo.Info) string {
	name := info.Title
	if q := info.Quality.String(); q != "" {
		name = fmt.Sprintf("%s (%s)", info.Title, q)
	}
	return textutil.SanitizeFileName(name)
}

// Rename moves the folder at path to its canonical name and returns the
// resulting path. Reserved folders and folders without a usable title are
// returned unchanged. Failures are logged, not raised: the folder stays at
// its original path.
func (r *Renamer) Rename(path string) string {
	name := filepath.Base(path)
	if library.IsReserved(name, r.catalog) {
		return path
	}
	info, ok := titleinfo.Parse(name)
	if !ok {
		return path
	}
	canonical := CanonicalName(info)
	if canonical == "" || canonical == name {
		return path
	}
	newPath := filepath.Join(filepath.Dir(path), canonical)
	if err := fileutil.Move(path, newPath); err != nil {
		r.logger.Error("rename failed, folder left in place",
			logging.String("folder", name),
			logging.String("target", canonical),
			logging.Error(err),
		)
		return path
	}
	r.logger.Info("renamed folder", logging.String("from", name), logging.String("to", canonical))
	return newPath
}

// RenameAll performs the renaming pass over every immediate subdirectory of
// root, emitting progress per folder processed.
func (r *Renamer) RenameAll(root string, reporter progress.Reporter) error {
	if reporter == nil {
		reporter = progress.Nop()
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("read library root: %w", err)
	}
	dirs := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry)
		}
	}
	for i, entry := range dirs {
		r.Rename(filepath.Join(root, entry.Name()))
		reporter.Report(progress.StageRenaming, float64(i+1)/float64(len(dirs))*100)
	}
	return nil
}
