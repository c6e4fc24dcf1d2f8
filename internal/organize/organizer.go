// Package organize routes processed movie records into their genre folders
// (or the manual-review bucket), removes genre folders left empty, and
// writes the run summary.
package organize

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"reelsort/internal/catalog"
	"reelsort/internal/fileutil"
	"reelsort/internal/library"
	"reelsort/internal/logging"
	"reelsort/internal/progress"
	"reelsort/internal/scan"
)

// Organizer moves records into their final library location.
type Organizer struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewOrganizer constructs the organizer. Catalog membership is the sole
// authority for genre routing.
func NewOrganizer(cat *catalog.Catalog, logger *slog.Logger) *Organizer {
	return &Organizer{catalog: cat, logger: logging.NewComponentLogger(logger, "organizer")}
}

// Place moves one record into its destination: the primary-genre folder when
// that genre is in the catalog, the manual-review bucket otherwise
// (including when no genre was ever resolved). The record's path and
// destination are updated on success. A move whose source equals its
// destination is a no-op.
func (o *Organizer) Place(root string, rec *scan.Record) error {
	folder := filepath.Base(rec.Path)
	destDir := library.ManualReviewDir(root)
	manual := true
	if len(rec.Genres) > 0 {
		if primary := rec.Genres[0]; o.catalog.Contains(primary) {
			destDir = filepath.Join(root, primary)
			manual = false
		}
	}

	target := filepath.Join(destDir, folder)
	if err := fileutil.Move(rec.Path, target); err != nil {
		return fmt.Errorf("move %q to %q: %w", folder, filepath.Base(destDir), err)
	}
	rec.Path = target
	rec.Destination = target
	rec.ManualReview = manual
	return nil
}

// PlaceAll routes every record sequentially, emitting organizing progress
// per record. A single failed move is logged and the pass continues; the
// record keeps its old path.
func (o *Organizer) PlaceAll(root string, records []*scan.Record, reporter progress.Reporter) {
	if reporter == nil {
		reporter = progress.Nop()
	}
	for i, rec := range records {
		if err := o.Place(root, rec); err != nil {
			o.logger.Error("could not organize record",
				logging.String("folder", filepath.Base(rec.Path)),
				logging.Error(err),
			)
		} else {
			o.logger.Info("organized record",
				logging.String("folder", filepath.Base(rec.Path)),
				logging.String("destination", filepath.Base(filepath.Dir(rec.Destination))),
				logging.Bool("manual_review", rec.ManualReview),
			)
		}
		reporter.Report(progress.StageOrganizing, float64(i+1)/float64(len(records))*100)
	}
}
