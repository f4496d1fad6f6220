package l10n

import "golang.org/x/text/language"

// datePatterns holds Go reference-time layouts per style for one language.
// x/text ships no CLDR date patterns, so the layouts are a fixed table per
// supported base language, selected from the parsed tag.
type datePatterns struct {
	short   string
	medium  string
	long    string
	full    string
	clock24 bool
}

func (p datePatterns) date(style string) string {
	switch style {
	case StyleShort:
		return p.short
	case StyleLong:
		return p.long
	case StyleFull:
		return p.full
	default:
		return p.medium
	}
}

func (p datePatterns) clock(style string) string {
	if p.clock24 {
		if style == StyleLong || style == StyleFull {
			return "15:04:05"
		}
		return "15:04"
	}
	if style == StyleLong || style == StyleFull {
		return "3:04:05 PM"
	}
	return "3:04 PM"
}

var (
	englishDates = datePatterns{
		short:  "1/2/2006",
		medium: "Jan 2, 2006",
		long:   "January 2, 2006",
		full:   "Monday, January 2, 2006",
	}
	// Day-first numeric layouts shared by Portuguese, Spanish, and French.
	// Numeric on purpose: Go layouts spell month and weekday names in
	// English only.
	dayFirstDates = datePatterns{
		short:   "02/01/2006",
		medium:  "02/01/2006",
		long:    "2/01/2006",
		full:    "2/01/2006",
		clock24: true,
	}
	germanDates = datePatterns{
		short:   "02.01.2006",
		medium:  "02.01.2006",
		long:    "2.01.2006",
		full:    "2.01.2006",
		clock24: true,
	}
)

// datePatternsFor picks the layout table for a tag's base language.
// Unknown languages use the English layouts.
func datePatternsFor(tag language.Tag) datePatterns {
	base, _ := tag.Base()
	switch base.String() {
	case "pt", "es", "fr", "it":
		return dayFirstDates
	case "de":
		return germanDates
	default:
		return englishDates
	}
}
