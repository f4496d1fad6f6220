package i18n

import (
	"io"
	"log/slog"
	"strings"
)

// Service resolves translation keys against a Store.
//
// Resolution never fails: a key that cannot be resolved in the requested
// locale or the default locale yields the missing-translation marker
// "[key]" instead of an error. Construct one Service per composition root
// and share it; all methods are safe for concurrent use.
type Service struct {
	store         *Store
	defaultLocale string
	log           *slog.Logger
	missingKey    func(locale, key string)
}

// Option configures a Service during construction.
type Option func(*Service) error

// WithDefaultLocale sets the fallback locale consulted when a key is absent
// from the requested locale's table.
func WithDefaultLocale(locale string) Option {
	return func(s *Service) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		s.defaultLocale = locale
		return nil
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) error {
		if log != nil {
			s.log = log
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked whenever a key resolves to
// the missing-translation marker. Useful for monitoring translation gaps.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(s *Service) error {
		s.missingKey = handler
		return nil
	}
}

// New creates a translation service backed by the given store.
func New(store *Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	s := &Service{
		store:         store,
		defaultLocale: DefaultLocale,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Store returns the backing translation store.
func (s *Service) Store() *Store {
	return s.store
}

// DefaultLocale returns the configured fallback locale.
func (s *Service) DefaultLocale() string {
	return s.defaultLocale
}

// Translate resolves a dotted key for a locale and interpolates params.
//
// An empty locale means the default locale. The key is looked up in the
// requested locale's merged table first, then in the default locale's table.
// When neither holds a string leaf for the key, the missing-translation
// marker "[key]" is returned. Interpolation replaces {name} placeholders
// with values from params; unknown placeholders stay verbatim.
func (s *Service) Translate(key, locale string, params M) string {
	if locale == "" {
		locale = s.defaultLocale
	}

	value, ok := lookup(s.store.MergedTranslations(locale), key)
	if !ok {
		value, ok = lookup(s.store.MergedTranslations(s.defaultLocale), key)
	}
	if !ok {
		if s.missingKey != nil {
			s.missingKey(locale, key)
		}
		value = "[" + key + "]"
	}

	if len(params) > 0 {
		value = Interpolate(value, params)
	}

	return value
}

// TranslatePlural resolves a pluralized key for a count.
//
// The plural form for the count and locale picks the sibling key
// "{key}.{form}". The count is always injected into the interpolation
// params under "count", overriding any caller-supplied value. When the form
// key is missing and the form is not "other", "{key}.other" is tried once.
func (s *Service) TranslatePlural(key string, count int, locale string, params M) string {
	if locale == "" {
		locale = s.defaultLocale
	}

	form := PluralForm(count, locale)
	pluralKey := key + "." + form

	merged := make(M, len(params)+1)
	for name, value := range params {
		merged[name] = value
	}
	merged["count"] = count

	result := s.Translate(pluralKey, locale, merged)

	if form != PluralOther && result == "["+pluralKey+"]" {
		result = s.Translate(key+"."+PluralOther, locale, merged)
	}

	return result
}

// HasTranslation reports whether a string leaf resolves for the key in the
// given locale's table. The default locale is consulted only when locale is
// empty; there is no fallback.
func (s *Service) HasTranslation(key, locale string) bool {
	if locale == "" {
		locale = s.defaultLocale
	}
	_, ok := lookup(s.store.MergedTranslations(locale), key)
	return ok
}

// DetectLocale returns the best matching catalog locale for an
// Accept-Language header, or the default locale when nothing matches.
func (s *Service) DetectLocale(acceptLanguage string) string {
	codes := make([]string, 0, len(availableLocales))
	for _, loc := range availableLocales {
		codes = append(codes, loc.Code)
	}

	if locale, ok := MatchLocale(acceptLanguage, codes); ok {
		return locale
	}
	return s.defaultLocale
}

// LoadedLocales returns the locales currently present in the merged view.
func (s *Service) LoadedLocales() []string {
	return s.store.Locales()
}

// lookup descends a nested tree along a dot-delimited key. The terminal
// value must be a string; a missing segment, a non-map intermediate, or a
// non-string terminal all report not found.
func lookup(tree map[string]any, key string) (string, bool) {
	var current any = tree

	for _, segment := range strings.Split(key, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return "", false
			}
			current = value
		case map[string]string:
			value, ok := node[segment]
			if !ok {
				return "", false
			}
			current = value
		default:
			return "", false
		}
	}

	value, ok := current.(string)
	return value, ok
}
