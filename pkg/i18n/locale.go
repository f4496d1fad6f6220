package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLocale is the fallback locale used when none is configured.
const DefaultLocale = "en"

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

// Locale describes an entry in the built-in catalog of supported locales.
type Locale struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// availableLocales is the static catalog of locales the service advertises.
// It is configuration, not derived from loaded bundles.
var availableLocales = []Locale{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
}

// AvailableLocales returns the built-in locale catalog.
// The returned slice is a copy; callers may modify it freely.
func AvailableLocales() []Locale {
	return slices.Clone(availableLocales)
}

// NormalizeLocale lowercases a locale code and truncates it to the primary
// subtag: "en-US" and "en_US" both become "en". Whitespace is trimmed.
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}

// languageTag is a parsed Accept-Language entry with its quality value.
type languageTag struct {
	tag     string
	quality float64
}

// MatchLocale parses an Accept-Language header and returns the best matching
// locale from the available list, honoring quality values. Matching is done
// on the primary subtag, so "en-US" matches an available "en".
// Returns false when the header is empty or nothing matches.
func MatchLocale(header string, available []string) (string, bool) {
	if header == "" || len(available) == 0 {
		return "", false
	}

	for _, tag := range parseLanguageTags(header) {
		base := NormalizeLocale(tag.tag)
		for _, avail := range available {
			if base == NormalizeLocale(avail) {
				return avail, true
			}
		}
	}

	return "", false
}

// parseLanguageTags splits an Accept-Language header into tags sorted by
// descending quality. Wildcard and empty entries are dropped.
func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, languageTag{tag: langPart, quality: quality})
		}
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}
