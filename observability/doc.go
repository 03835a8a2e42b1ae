// Package observability defines the interfaces and semantic conventions
// used for tracing and structured logging around tool dispatch.
//
// The central entry point is [Provider], which composes [Tracer] and
// [Logger] into a single injectable dependency. Callers attach an active
// [Span] to a [context.Context] with [ContextWithSpan]; the dispatchers
// retrieve it with [SpanFromContext] and emit start/end events and error
// records on it. When no span is present, dispatch is silent.
//
// The semconv.go file contains the standard attribute-key and span-name
// constants that should be used when recording observations.
package observability
