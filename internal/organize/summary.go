package organize

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"reelsort/internal/library"
	"reelsort/internal/logging"
	"reelsort/internal/scan"
)

// Summary counts how a run's records were routed.
type Summary struct {
	Total        int
	ManualReview int
}

// Summarize tallies the manual-review share of a processed record set.
func Summarize(records []*scan.Record) Summary {
	s := Summary{Total: len(records)}
	for _, rec := range records {
		if rec.ManualReview {
			s.ManualReview++
		}
	}
	return s
}

// Line renders the single human-readable summary line.
func (s Summary) Line() string {
	return fmt.Sprintf("%d / %d movies are in '%s'", s.ManualReview, s.Total, library.ManualReviewDirName)
}

// WriteSummary writes the run summary to its fixed-name file at the library
// root. Failure to write is logged, never raised.
func WriteSummary(root string, s Summary, logger *slog.Logger) {
	if logger == nil {
		logger = logging.NewNop()
	}
	path := filepath.Join(root, library.SummaryFileName)
	if err := os.WriteFile(path, []byte(s.Line()), 0o644); err != nil {
		logger.Error("could not write summary file", logging.String("path", path), logging.Error(err))
		return
	}
	logger.Info("summary written", logging.String("summary", s.Line()))
}
