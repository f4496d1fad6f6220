package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tj-hand/echoes/middlewares"
	"github.com/tj-hand/echoes/pkg/i18n"
	"github.com/tj-hand/echoes/pkg/logger"
)

const serviceName = "echoes"

// Handler serves the translation API.
type Handler struct {
	svc *i18n.Service
	log *slog.Logger
}

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// New creates a Handler backed by the given translation service.
func New(svc *i18n.Service, opts ...Option) *Handler {
	h := &Handler{
		svc: svc,
		log: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes declares all translation API routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/locales", h.listLocales)
	r.Get("/translations/{locale}", h.getTranslations)
	r.Post("/detect", h.detectLocale)
	r.Post("/translate", h.translate)
	r.Post("/translate/batch", h.translateBatch)
	r.Get("/current-locale", h.currentLocale)
	r.Get("/health", h.healthStatus)
}

// listLocales returns the locale catalog with display names.
func (h *Handler) listLocales(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, LocaleListResponse{
		Locales: i18n.AvailableLocales(),
		Default: h.svc.DefaultLocale(),
	})
}

// getTranslations returns the merged translation tree for a locale,
// optionally narrowed to one module's subtree.
func (h *Handler) getTranslations(w http.ResponseWriter, r *http.Request) {
	locale := i18n.NormalizeLocale(chi.URLParam(r, "locale"))
	if locale == "" {
		h.respondError(w, http.StatusBadRequest, "locale is required")
		return
	}

	translations := h.svc.Store().MergedTranslations(locale)
	if module := r.URL.Query().Get("module"); module != "" {
		translations = filterModule(translations, module)
	}

	h.respond(w, http.StatusOK, TranslationResponse{
		Locale:       locale,
		Translations: translations,
	})
}

// detectLocale matches an Accept-Language header against the catalog.
func (h *Handler) detectLocale(w http.ResponseWriter, r *http.Request) {
	var req DetectLocaleRequest
	if !h.decode(w, r, &req) {
		return
	}

	detected := h.svc.DetectLocale(req.AcceptLanguage)

	supported := false
	for _, loc := range i18n.AvailableLocales() {
		if loc.Code == detected {
			supported = true
			break
		}
	}

	h.respond(w, http.StatusOK, DetectLocaleResponse{
		Detected:  detected,
		Supported: supported,
	})
}

// translate resolves a single key, interpolating any params.
func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Key == "" {
		h.respondError(w, http.StatusBadRequest, "key is required")
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = h.requestLocale(r)
	}

	h.respond(w, http.StatusOK, TranslateResponse{
		Key:    req.Key,
		Locale: locale,
		Text:   h.svc.Translate(req.Key, locale, req.Params),
	})
}

// translateBatch resolves several keys in one call, for page-level fetches.
func (h *Handler) translateBatch(w http.ResponseWriter, r *http.Request) {
	var req TranslateBatchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Keys) == 0 {
		h.respondError(w, http.StatusBadRequest, "keys is required")
		return
	}

	locale := req.Locale
	if locale == "" {
		locale = h.requestLocale(r)
	}

	translations := make(map[string]string, len(req.Keys))
	for _, key := range req.Keys {
		translations[key] = h.svc.Translate(key, locale, nil)
	}

	h.respond(w, http.StatusOK, TranslateBatchResponse{
		Locale:       locale,
		Translations: translations,
	})
}

// currentLocale reports the locale negotiated from request headers.
func (h *Handler) currentLocale(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, CurrentLocaleResponse{
		Locale: h.requestLocale(r),
	})
}

// healthStatus reports service status and basic statistics.
func (h *Handler) healthStatus(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, StatusResponse{
		Status:           "healthy",
		Service:          serviceName,
		DefaultLocale:    h.svc.DefaultLocale(),
		AvailableLocales: len(i18n.AvailableLocales()),
		LoadedLocales:    len(h.svc.LoadedLocales()),
	})
}

// requestLocale returns the locale negotiated by the Locale middleware, or
// the service default when the middleware is not installed.
func (h *Handler) requestLocale(r *http.Request) string {
	if locale := middlewares.LocaleFromContext(r.Context()); locale != "" {
		return locale
	}
	return h.svc.DefaultLocale()
}

// filterModule keeps only the subtree(s) belonging to the named module.
// Top-level keys match on equality or a "module." prefix.
func filterModule(translations map[string]any, module string) map[string]any {
	filtered := make(map[string]any)
	prefix := module + "."
	for key, value := range translations {
		if key == module || strings.HasPrefix(key, prefix) {
			filtered[key] = value
		}
	}
	return filtered
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("response encoding failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respond(w, status, errorResponse{Error: msg})
}
