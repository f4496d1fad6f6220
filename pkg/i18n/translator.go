package i18n

import (
	"maps"
	"time"

	"github.com/tj-hand/echoes/pkg/l10n"
)

// Translator binds a Service to a single locale, typically the locale
// negotiated for one request. It removes the need to thread the locale
// through every translation call and carries the locale's formatter.
type Translator struct {
	svc    *Service
	format *l10n.Formatter
	locale string
}

// NewTranslator creates a Translator for the given locale.
// An empty locale means the service's default locale. A nil format falls
// back to a formatter for the resolved locale, or for the default locale
// when the resolved one is not a valid tag.
func NewTranslator(svc *Service, locale string, format *l10n.Formatter) *Translator {
	if svc == nil {
		panic("i18n: service is not provided")
	}
	if locale == "" {
		locale = svc.DefaultLocale()
	}
	if format == nil {
		var err error
		if format, err = l10n.NewFormatter(locale); err != nil {
			format, _ = l10n.NewFormatter(DefaultLocale)
		}
	}
	return &Translator{
		svc:    svc,
		locale: locale,
		format: format,
	}
}

// T translates a key in the translator's locale.
func (t *Translator) T(key string, params ...M) string {
	return t.svc.Translate(key, t.locale, mergeParams(params))
}

// Tn translates a key with pluralization in the translator's locale.
func (t *Translator) Tn(key string, count int, params ...M) string {
	return t.svc.TranslatePlural(key, count, t.locale, mergeParams(params))
}

// Has reports whether the key resolves in the translator's locale.
func (t *Translator) Has(key string) bool {
	return t.svc.HasTranslation(key, t.locale)
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Format returns the locale formatter used by this translator.
func (t *Translator) Format() *l10n.Formatter {
	return t.format
}

// FormatNumber formats a number with locale-specific separators.
func (t *Translator) FormatNumber(v float64, decimals int) string {
	return t.format.FormatNumber(v, decimals)
}

// FormatCurrency formats an amount in the given ISO 4217 currency.
func (t *Translator) FormatCurrency(v float64, code string) (string, error) {
	return t.format.FormatCurrency(v, code)
}

// FormatPercent formats a decimal fraction as a percentage.
func (t *Translator) FormatPercent(v float64, decimals int) string {
	return t.format.FormatPercent(v, decimals)
}

// FormatDate formats a date in the translator's locale.
func (t *Translator) FormatDate(date time.Time, style string) string {
	return t.format.FormatDate(date, style)
}

// FormatDateTime formats a datetime in the translator's locale.
func (t *Translator) FormatDateTime(datetime time.Time, style string) string {
	return t.format.FormatDateTime(datetime, style)
}

// mergeParams flattens variadic parameter maps; later maps win.
func mergeParams(params []M) M {
	switch len(params) {
	case 0:
		return nil
	case 1:
		return params[0]
	}
	merged := make(M)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
