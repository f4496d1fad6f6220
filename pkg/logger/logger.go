package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger writing to stdout, decorated with the given
// context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewExtractorHandler(h, extractors...))
}

// NewNope creates a logger that discards all output. Use it as the default
// when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
