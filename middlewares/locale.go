package middlewares

import (
	"context"
	"net/http"

	"github.com/tj-hand/echoes/pkg/i18n"
	"github.com/tj-hand/echoes/pkg/l10n"
)

// DefaultLocaleHeader is the header carrying an explicit locale override.
const DefaultLocaleHeader = "X-Locale"

type (
	localeCtxKey     struct{}
	translatorCtxKey struct{}
)

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	// OverrideHeader is checked first for an explicit locale choice.
	OverrideHeader string
	// Formats maps locale codes to pre-built formatters. Locales not in the
	// map get a formatter built once and memoized.
	Formats map[string]*l10n.Formatter
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithOverrideHeader changes the explicit-override header name.
func WithOverrideHeader(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		if name != "" {
			cfg.OverrideHeader = name
		}
	}
}

// WithFormats sets the locale-to-formatter mapping.
func WithFormats(m map[string]*l10n.Formatter) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Formats = m
	}
}

// Locale returns middleware that negotiates the request locale and stores it
// in the context together with a bound Translator.
//
// Priority: the override header (explicit user preference), then
// Accept-Language matched against the service's locale catalog, then the
// service default. The result is always normalized to its primary subtag.
func Locale(svc *i18n.Service, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{OverrideHeader: DefaultLocaleHeader}
	for _, opt := range opts {
		opt(cfg)
	}

	// Formatters carry locale data tables; building one per request is
	// wasteful, so locales outside cfg.Formats are memoized here.
	formats := l10n.NewFormatterCache()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := i18n.NormalizeLocale(r.Header.Get(cfg.OverrideHeader))
			if locale == "" {
				locale = svc.DetectLocale(r.Header.Get("Accept-Language"))
			}

			var format *l10n.Formatter
			if cfg.Formats != nil {
				format = cfg.Formats[locale]
			}
			if format == nil {
				if f, err := formats.Get(locale); err == nil {
					format = f
				}
			}
			tr := i18n.NewTranslator(svc, locale, format)

			ctx := context.WithValue(r.Context(), localeCtxKey{}, locale)
			ctx = context.WithValue(ctx, translatorCtxKey{}, tr)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the negotiated locale for the request.
// Returns an empty string if the Locale middleware is not installed.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(localeCtxKey{}).(string); ok {
		return v
	}
	return ""
}

// TranslatorFromContext returns the request's bound Translator.
// Returns nil if the Locale middleware is not installed.
func TranslatorFromContext(ctx context.Context) *i18n.Translator {
	if v, ok := ctx.Value(translatorCtxKey{}).(*i18n.Translator); ok {
		return v
	}
	return nil
}
