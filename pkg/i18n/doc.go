// Package i18n provides translation lookup with pluralization for
// request-scoped internationalization.
//
// A Store collects translations from named sources (bundle directories with
// one JSON or YAML document per locale, inline data, or both) and maintains
// a lazily rebuilt merged view per locale. A Service resolves dot-delimited
// keys against that view with fallback to a default locale, CLDR-style
// plural-form selection, and {name} parameter interpolation.
//
// # Basic Usage
//
//	store := i18n.NewStore()
//	_ = store.RegisterSource("guardian", i18n.WithPath("modules/guardian/locales"))
//	_ = store.RegisterTranslations("app", "en", map[string]any{
//		"greeting": "Hello {name}",
//		"items": map[string]any{
//			"one":   "{count} item",
//			"other": "{count} items",
//		},
//	})
//
//	svc, err := i18n.New(store, i18n.WithDefaultLocale("en"))
//	if err != nil {
//		// handle err
//	}
//
//	svc.Translate("greeting", "en", i18n.M{"name": "Ann"}) // "Hello Ann"
//	svc.TranslatePlural("items", 3, "en", nil)             // "3 items"
//
// # Resolution Semantics
//
// A key resolves to a string leaf in the requested locale's merged tree,
// then in the default locale's tree. When neither resolves, the
// missing-translation marker "[key]" is returned; lookups never fail with
// an error. Sources merge in registration order, so the last-registered
// source wins on key conflicts.
//
// # Request Scoping
//
// NewTranslator binds the service to one negotiated locale for the lifetime
// of a request and carries the matching l10n formatter:
//
//	tr := i18n.NewTranslator(svc, "pt", nil)
//	tr.T("greeting", i18n.M{"name": "Ana"})
//	tr.Tn("items", 2)
//
// All types are safe for concurrent use; the Store guards its merged cache
// with a read-write lock so readers never observe a partial rebuild.
package i18n
