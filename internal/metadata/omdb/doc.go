// Package omdb implements the remote metadata lookup used to enrich scanned
// movie records: title search against an OMDb-compatible HTTP API with a
// bounded retry budget, flat delays for rejected responses, and exponential
// backoff for transport failures.
package omdb
