// Package l10n provides locale-aware formatting of numbers, currencies,
// percentages, and dates on top of golang.org/x/text locale data.
//
// Unlike translation lookup, formatting failures are real errors: a
// structurally invalid locale tag or an unknown currency code propagates to
// the caller instead of degrading to a fallback string.
package l10n

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Date and time styles accepted by FormatDate, FormatTime, and
// FormatDateTime. Unknown styles fall back to StyleMedium.
const (
	StyleShort  = "short"
	StyleMedium = "medium"
	StyleLong   = "long"
	StyleFull   = "full"
)

// Formatter renders locale-specific representations for a single parsed
// locale tag. It is immutable after creation and safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	dates   datePatterns
}

// NewFormatter parses the locale tag and builds a formatter for it.
// A structurally invalid tag returns an error.
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("l10n: invalid locale tag %q: %w", locale, err)
	}

	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		dates:   datePatternsFor(tag),
	}, nil
}

// Tag returns the parsed locale tag.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// FormatNumber formats a number with locale-specific separators.
// Pass a negative decimals value to keep the value's natural precision.
func (f *Formatter) FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		return f.printer.Sprint(number.Decimal(v))
	}
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatPercent formats a decimal fraction as a percentage (0.5 renders as
// 50% in English locales).
func (f *Formatter) FormatPercent(v float64, decimals int) string {
	return f.printer.Sprint(number.Percent(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatCurrency formats an amount in the given ISO 4217 currency.
// An unrecognized currency code returns an error.
func (f *Formatter) FormatCurrency(v float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("l10n: invalid currency code %q: %w", code, err)
	}
	return f.printer.Sprint(currency.Symbol(unit.Amount(v))), nil
}

// FormatDate formats the date part of t in the given style.
func (f *Formatter) FormatDate(t time.Time, style string) string {
	return t.Format(f.dates.date(style))
}

// FormatTime formats the time part of t in the given style.
func (f *Formatter) FormatTime(t time.Time, style string) string {
	return t.Format(f.dates.clock(style))
}

// FormatDateTime formats date and time of t in the given style.
func (f *Formatter) FormatDateTime(t time.Time, style string) string {
	return t.Format(f.dates.date(style) + " " + f.dates.clock(style))
}
