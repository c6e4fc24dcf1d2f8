// Package services defines shared utilities consumed by the pipeline stages.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, stage names, and record names for
//     logging.
//   - Structured error markers plus the Wrap helper that separate fatal
//     run-aborting failures from record-local degrading ones.
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across the pipeline.
package services
