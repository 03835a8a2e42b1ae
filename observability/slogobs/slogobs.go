package slogobs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/observability"
)

// Observer implements observability.Provider using Go's standard library
// slog. Spans become paired debug log records with a duration on the end
// record, making it suitable for lightweight observability without external
// dependencies.
type Observer struct {
	logger *slog.Logger
}

// Ensure Observer implements observability.Provider
var _ observability.Provider = (*Observer)(nil)

// options holds the configuration assembled by Option values.
type options struct {
	logger *slog.Logger
	level  slog.Leveler
	output io.Writer
	json   bool
}

// Option configures an [Observer] created via [New].
type Option func(*options)

// WithLogger uses an existing slog.Logger instead of constructing one.
// When set, the other options are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithLevel sets the minimum log level. Defaults to slog.LevelInfo; span
// events are emitted at debug level.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) { o.level = level }
}

// WithOutput sets the destination writer. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithJSON switches the constructed handler to JSON output.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// New creates a slog-based observer.
//
// Example:
//
//	observer := slogobs.New(slogobs.WithLevel(slog.LevelDebug))
//	ctx, span := observer.StartSpan(ctx, observability.SpanToolDispatch)
//	defer span.End()
func New(opts ...Option) *Observer {
	cfg := options{level: slog.LevelInfo, output: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		handlerOpts := &slog.HandlerOptions{Level: cfg.level}
		if cfg.json {
			logger = slog.New(slog.NewJSONHandler(cfg.output, handlerOpts))
		} else {
			logger = slog.New(slog.NewTextHandler(cfg.output, handlerOpts))
		}
	}

	return &Observer{logger: logger}
}

// --- TRACING ---

// StartSpan begins a new named span and emits a debug record at its start.
// The span is not attached to the returned context automatically; callers
// that want dispatchers to pick it up use observability.ContextWithSpan.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	span := &slogSpan{
		name:      name,
		startTime: time.Now(),
		logger:    o.logger,
		attrs:     attrs,
	}

	logAttrs := []slog.Attr{
		slog.String("span", name),
		slog.String("event", "span.start"),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, slog.LevelDebug, "Span started", logAttrs...)

	return ctx, span
}

type slogSpan struct {
	name      string
	startTime time.Time
	logger    *slog.Logger

	mu     sync.Mutex
	attrs  []observability.Attribute
	status observability.StatusCode
	desc   string
}

// End completes the span, logging the accumulated attributes and elapsed
// duration at debug level.
func (s *slogSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	logAttrs := []slog.Attr{
		slog.String("span", s.name),
		slog.String("event", "span.end"),
		slog.Duration("duration", time.Since(s.startTime)),
	}
	if s.status == observability.StatusError {
		logAttrs = append(logAttrs, slog.String("status", "error"))
		if s.desc != "" {
			logAttrs = append(logAttrs, slog.String("status_description", s.desc))
		}
	}
	for _, attr := range s.attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span ended", logAttrs...)
}

// SetAttributes appends the provided attributes to the span.
func (s *slogSpan) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

// SetStatus records the span status, reported when the span ends.
func (s *slogSpan) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
	s.desc = description
}

// RecordError marks the span as failed and logs the error immediately.
func (s *slogSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	s.status = observability.StatusError
	s.mu.Unlock()

	s.logger.LogAttrs(context.Background(), slog.LevelError, "Span error",
		slog.String("span", s.name),
		slog.String("error", err.Error()),
	)
}

// AddEvent logs a named point-in-time event within the span.
func (s *slogSpan) AddEvent(name string, attrs ...observability.Attribute) {
	logAttrs := []slog.Attr{
		slog.String("span", s.name),
		slog.String("event", name),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span event", logAttrs...)
}

// --- LOGGING ---

// Debug logs a message at debug level.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs)
}

// Info logs a message at info level.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs)
}

// Warn logs a message at warn level.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs)
}

// Error logs a message at error level.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs []observability.Attribute) {
	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, level, msg, logAttrs...)
}
