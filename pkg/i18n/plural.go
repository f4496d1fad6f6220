package i18n

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralForm selects the plural category for a count in a given locale.
// Rules are keyed by the locale's primary subtag ("pt-BR" uses the "pt" rules).
//
// French and Arabic handle zero inside their own branches; every other locale
// maps zero to PluralZero before its language rule is consulted. Callers that
// lack a ".zero" entry recover through the ".other" retry in TranslatePlural.
func PluralForm(count int, locale string) string {
	switch NormalizeLocale(locale) {
	case "fr":
		// French treats both 0 and 1 as singular.
		if count == 0 || count == 1 {
			return PluralOne
		}
		return PluralOther

	case "ar":
		switch count {
		case 0:
			return PluralZero
		case 1:
			return PluralOne
		case 2:
			return PluralTwo
		}
		mod100 := count % 100
		if mod100 >= 3 && mod100 <= 10 {
			return PluralFew
		}
		if mod100 >= 11 {
			return PluralMany
		}
		return PluralOther

	case "ru":
		if count == 0 {
			return PluralZero
		}
		mod10 := count % 10
		mod100 := count % 100
		if mod10 == 1 && mod100 != 11 {
			return PluralOne
		}
		if mod10 >= 2 && mod10 <= 4 && !(mod100 >= 12 && mod100 <= 14) {
			return PluralFew
		}
		return PluralMany

	default:
		// English, Portuguese, Spanish, German, Italian, and everything else.
		if count == 0 {
			return PluralZero
		}
		if count == 1 {
			return PluralOne
		}
		return PluralOther
	}
}
