package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls a slog attribute out of a request context.
// Returning false skips the attribute for that record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ExtractorHandler wraps a slog.Handler and runs context extractors on every
// Handle call, so request-scoped values stay fresh per record.
type ExtractorHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewExtractorHandler decorates next with the given extractors.
// Nil extractors are dropped.
func NewExtractorHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &ExtractorHandler{next: next, extractors: clean}
}

func (h *ExtractorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ExtractorHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *ExtractorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ExtractorHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ExtractorHandler) WithGroup(name string) slog.Handler {
	return &ExtractorHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
