// Package slogobs provides an observability.Provider backed by the standard
// library's log/slog, turning spans and span events into structured log
// records. It is the zero-dependency way to see what the dispatchers do.
package slogobs
