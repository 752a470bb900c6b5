// Package observability defines the interfaces and semantic conventions used
// for tracing, metrics and structured logging throughout aitext.
//
// The central entry point is [Provider], which composes [Tracer], [Metrics],
// and [Logger] into a single injectable dependency. An active [Provider] and
// [Span] travel through a [context.Context] via [ContextWithObserver] and
// [ContextWithSpan]; retrieve them with [ObserverFromContext] and
// [SpanFromContext].
package observability
