// Package pipeline drives a full organizing run: rename, scan, metadata
// fetch, organize, cleanup, summary. It owns the per-run resources (HTTP
// session, library lock, ledger run) and threads progress reporting through
// every stage.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"reelsort/internal/assets"
	"reelsort/internal/catalog"
	"reelsort/internal/config"
	"reelsort/internal/ledger"
	"reelsort/internal/library"
	"reelsort/internal/logging"
	"reelsort/internal/metadata/omdb"
	"reelsort/internal/organize"
	"reelsort/internal/progress"
	"reelsort/internal/rename"
	"reelsort/internal/scan"
	"reelsort/internal/services"
)

const lockFileName = ".reelsort.lock"

// MetadataClient resolves a title to provider details. A nil result with a
// nil error means the provider has no match.
type MetadataClient interface {
	Lookup(ctx context.Context, title string) (omdb.Details, error)
}

// PosterFetcher caches a poster locally and returns its path, or empty when
// nothing could be cached.
type PosterFetcher interface {
	Download(ctx context.Context, posterURL, movieName, infoDir string) string
}

// Pipeline wires the organizing stages together for one library root.
type Pipeline struct {
	cfg       *config.Config
	logger    *slog.Logger
	catalog   *catalog.Catalog
	metadata  MetadataClient
	posters   PosterFetcher
	store     *ledger.Store
	batchSize int
}

// Result reports what a completed run did.
type Result struct {
	RunID   string
	Summary organize.Summary
}

// New constructs a pipeline from configuration. The metadata client and
// poster fetcher share one HTTP client so a run reuses connections. A ledger
// open failure is logged and disables run history rather than failing the
// pipeline.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("pipeline requires configuration")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	client, err := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL, omdb.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("metadata client: %w", err)
	}
	downloader := assets.NewDownloader(logger, assets.WithHTTPClient(httpClient))

	var store *ledger.Store
	if cfg.Paths.LedgerPath != "" {
		store, err = ledger.Open(cfg.Paths.LedgerPath)
		if err != nil {
			logger.Warn("run ledger unavailable", logging.Error(err))
			store = nil
		}
	}

	return NewWithDependencies(cfg, logger, client, downloader, store), nil
}

// NewWithDependencies constructs a pipeline with explicit collaborators.
// Tests use it to substitute stub metadata and poster services.
func NewWithDependencies(cfg *config.Config, logger *slog.Logger, metadata MetadataClient, posters PosterFetcher, store *ledger.Store) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	cat := catalog.Default()
	if len(cfg.Library.Genres) > 0 {
		cat = catalog.New(cfg.Library.Genres)
	}
	batch := cfg.Workflow.FetchBatchSize
	if batch <= 0 {
		batch = 1
	}
	return &Pipeline{
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
		catalog:   cat,
		metadata:  metadata,
		posters:   posters,
		store:     store,
		batchSize: batch,
	}
}

// Close releases pipeline-held resources.
func (p *Pipeline) Close() error {
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}

// Run executes every stage against root. The library lock is held for the
// whole run so two runs never reorganize the same tree concurrently.
func (p *Pipeline) Run(ctx context.Context, root string, reporter progress.Reporter) (Result, error) {
	if reporter == nil {
		reporter = progress.Nop()
	}

	lock := flock.New(filepath.Join(root, lockFileName))
	held, err := lock.TryLock()
	if err != nil {
		return Result{}, services.Wrap(services.ErrConfiguration, "pipeline", "lock", "acquire library lock", err)
	}
	if !held {
		return Result{}, services.Wrap(services.ErrValidation, "pipeline", "lock",
			fmt.Sprintf("another run is already organizing %s", root), nil)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			p.logger.Warn("failed to release library lock", logging.Error(unlockErr))
		}
	}()

	var result Result
	if p.store != nil {
		runID, beginErr := p.store.BeginRun(ctx, root)
		if beginErr != nil {
			p.logger.Warn("failed to open ledger run", logging.Error(beginErr))
		} else {
			result.RunID = runID
			ctx = services.WithRunID(ctx, runID)
		}
	}
	logger := logging.WithContext(ctx, p.logger)
	logger.Info("organizing run started", logging.String("root", root))

	if err := library.Ensure(root, p.catalog, logger); err != nil {
		return result, err
	}

	renamer := rename.NewRenamer(p.catalog, logger)
	if err := renamer.RenameAll(root, reporter); err != nil {
		return result, err
	}

	scanner := scan.NewScanner(p.catalog, logger)
	records, err := scanner.Scan(root, reporter)
	if err != nil {
		return result, err
	}
	logger.Info("scan complete", logging.Int("movies", len(records)))

	if err := p.fetchAll(ctx, root, records, reporter); err != nil {
		return result, err
	}

	organizer := organize.NewOrganizer(p.catalog, logger)
	organizer.PlaceAll(root, records, reporter)
	organizer.Cleanup(root, reporter)

	result.Summary = organize.Summarize(records)
	organize.WriteSummary(root, result.Summary, logger)
	logger.Info("organizing run finished", logging.String("summary", result.Summary.Line()))

	p.recordOutcomes(ctx, result, records)
	return result, nil
}

// fetchAll resolves metadata for records in fixed-size batches. Records in a
// batch run concurrently; batches run in sequence so the provider never sees
// more than batchSize requests in flight.
func (p *Pipeline) fetchAll(ctx context.Context, root string, records []*scan.Record, reporter progress.Reporter) error {
	total := len(records)
	if total == 0 {
		reporter.Report(progress.StageFetching, 100)
		return nil
	}

	for start := 0; start < total; start += p.batchSize {
		if err := ctx.Err(); err != nil {
			return services.Wrap(services.ErrTransient, "pipeline", "fetch", "metadata fetch interrupted", err)
		}
		end := start + p.batchSize
		if end > total {
			end = total
		}

		var wg sync.WaitGroup
		for _, rec := range records[start:end] {
			wg.Add(1)
			go func(rec *scan.Record) {
				defer wg.Done()
				p.fetchRecord(ctx, root, rec)
			}(rec)
		}
		wg.Wait()

		reporter.Report(progress.StageFetching, progress.Clamp(float64(end)/float64(total)*100))
	}
	return nil
}

// fetchRecord looks up one record and materializes its sidecar artifacts.
// Every failure is soft: the record simply stays without metadata and later
// lands in manual review.
func (p *Pipeline) fetchRecord(ctx context.Context, root string, rec *scan.Record) {
	folderName := filepath.Base(rec.Path)
	logger := logging.WithContext(services.WithMovie(ctx, folderName), p.logger)

	details, err := p.metadata.Lookup(ctx, rec.Title)
	if err != nil {
		logger.Warn("metadata lookup failed", logging.Error(err))
		return
	}
	if details == nil {
		logger.Info("no metadata match", logging.String("title", rec.Title))
		return
	}

	infoDir := library.InfoDir(root)
	local := p.posters.Download(ctx, details.Poster(), folderName, infoDir)
	details["LocalPoster"] = local

	p.writeAboutFile(infoDir, folderName, details, logger)

	rec.Genres = details.Genres()
	rec.Year = details.Year()
	rec.Raw = details
}

// writeAboutFile persists the metadata sidecar next to the posters cache.
func (p *Pipeline) writeAboutFile(infoDir, folderName string, details omdb.Details, logger *slog.Logger) {
	payload, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		logger.Warn("failed to encode metadata sidecar", logging.Error(err))
		return
	}
	target := filepath.Join(infoDir, folderName+"_about.json")
	if err := os.WriteFile(target, payload, 0o644); err != nil {
		logger.Warn("failed to write metadata sidecar", logging.String("path", target), logging.Error(err))
	}
}

// recordOutcomes persists per-record results to the ledger. Best effort.
func (p *Pipeline) recordOutcomes(ctx context.Context, result Result, records []*scan.Record) {
	if p.store == nil || result.RunID == "" {
		return
	}
	for _, rec := range records {
		status := ledger.StatusOrganized
		if rec.ManualReview {
			status = ledger.StatusReview
		}
		entry := ledger.Movie{
			Title:       rec.Title,
			Quality:     rec.Quality.String(),
			SourcePath:  rec.Path,
			Destination: rec.Destination,
			Status:      status,
		}
		if err := p.store.RecordMovie(ctx, result.RunID, entry); err != nil {
			p.logger.Warn("failed to record movie in ledger", logging.Error(err))
		}
	}
	if err := p.store.FinishRun(ctx, result.RunID, result.Summary.Total, result.Summary.ManualReview); err != nil {
		p.logger.Warn("failed to finish ledger run", logging.Error(err))
	}
}
