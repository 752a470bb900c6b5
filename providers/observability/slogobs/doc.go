// Package slogobs provides an observability.Provider backed by log/slog.
// Spans and metrics are rendered as log records; counters keep a running
// total in memory. Construct one with [New] and tune it with [WithFormat],
// [WithLevel], [WithOutput] or [WithLogger].
package slogobs
