package organize

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"reelsort/internal/fileutil"
	"reelsort/internal/logging"
	"reelsort/internal/progress"
)

// Cleanup removes every genre folder left empty after organizing. The full
// catalog is swept, not just genres touched this run. Individual removal
// failures are logged and the pass continues. Progress finishes at 100.
func (o *Organizer) Cleanup(root string, reporter progress.Reporter) {
	if reporter == nil {
		reporter = progress.Nop()
	}
	labels := o.catalog.Labels()
	removed := 0
	for i, genre := range labels {
		dir := filepath.Join(root, genre)
		empty, err := fileutil.IsDirEmpty(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Already gone; nothing to do.
		case err != nil:
			o.logger.Error("could not inspect genre folder", logging.String("genre", genre), logging.Error(err))
		case empty:
			if err := os.Remove(dir); err != nil {
				o.logger.Error("could not remove empty genre folder", logging.String("genre", genre), logging.Error(err))
			} else {
				removed++
			}
		}
		reporter.Report(progress.StageCleaning, float64(i+1)/float64(len(labels))*100)
	}
	reporter.Report(progress.StageCleaning, 100)
	o.logger.Info("cleanup complete", logging.Int("removed", removed))
}
