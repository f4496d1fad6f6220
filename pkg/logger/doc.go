// Package logger builds structured slog loggers for the translation service.
//
// Loggers write JSON to stdout and can fan out to Sentry when a DSN is
// configured. Context extractors inject request-scoped attributes (request
// ID, negotiated locale) into every record without threading them through
// call sites.
//
// Basic usage:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "translations reloaded", slog.Int("sources", 3))
//
// With Sentry error reporting:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
//
// An empty DSN falls back to stdout-only logging, so the same code path
// works in development and production.
package logger
