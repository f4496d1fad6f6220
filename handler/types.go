package handler

import "github.com/tj-hand/echoes/pkg/i18n"

// LocaleListResponse lists the locale catalog and the default locale.
type LocaleListResponse struct {
	Locales []i18n.Locale `json:"locales"`
	Default string        `json:"default"`
}

// TranslationResponse carries the merged translation tree for a locale.
type TranslationResponse struct {
	Locale       string         `json:"locale"`
	Translations map[string]any `json:"translations"`
}

// DetectLocaleRequest asks for the best match for an Accept-Language header.
type DetectLocaleRequest struct {
	AcceptLanguage string `json:"accept_language"`
}

// DetectLocaleResponse reports the detected locale and whether it is in the
// catalog.
type DetectLocaleResponse struct {
	Detected  string `json:"detected"`
	Supported bool   `json:"supported"`
}

// TranslateRequest resolves a single key. Locale falls back to the request's
// negotiated locale when empty.
type TranslateRequest struct {
	Key    string `json:"key"`
	Locale string `json:"locale,omitempty"`
	Params i18n.M `json:"params,omitempty"`
}

// TranslateResponse is the resolved text for a key.
type TranslateResponse struct {
	Key    string `json:"key"`
	Locale string `json:"locale"`
	Text   string `json:"text"`
}

// TranslateBatchRequest resolves several keys in one round trip.
type TranslateBatchRequest struct {
	Keys   []string `json:"keys"`
	Locale string   `json:"locale,omitempty"`
}

// TranslateBatchResponse maps each requested key to its resolved text.
type TranslateBatchResponse struct {
	Locale       string            `json:"locale"`
	Translations map[string]string `json:"translations"`
}

// CurrentLocaleResponse reports the locale negotiated for this request.
type CurrentLocaleResponse struct {
	Locale string `json:"locale"`
}

// StatusResponse is the service health summary.
type StatusResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	DefaultLocale    string `json:"default_locale"`
	AvailableLocales int    `json:"available_locales"`
	LoadedLocales    int    `json:"loaded_locales"`
}

type errorResponse struct {
	Error string `json:"error"`
}
