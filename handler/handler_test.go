package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tj-hand/echoes/handler"
	"github.com/tj-hand/echoes/middlewares"
	"github.com/tj-hand/echoes/pkg/i18n"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := i18n.NewStore()
	require.NoError(t, store.RegisterTranslations("core", "en", map[string]any{
		"guardian": map[string]any{
			"login": map[string]any{
				"title":  "Sign in",
				"prompt": "Welcome back, {name}",
			},
		},
		"billing": map[string]any{
			"invoice": "Invoice",
		},
	}))
	require.NoError(t, store.RegisterTranslations("core", "pt", map[string]any{
		"guardian": map[string]any{
			"login": map[string]any{
				"title": "Entrar",
			},
		},
	}))

	svc, err := i18n.New(store)
	require.NoError(t, err)

	h := handler.New(svc)
	r := chi.NewRouter()
	r.Use(middlewares.Locale(svc))
	r.Route("/api/echoes", h.Routes)
	return r
}

func getJSON(t *testing.T, router http.Handler, target string, out any) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func postJSON(t *testing.T, router http.Handler, target, body string, headers map[string]string, out any) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestListLocales(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	var resp handler.LocaleListResponse
	rec := getJSON(t, router, "/api/echoes/locales", &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "en", resp.Default)
	require.NotEmpty(t, resp.Locales)

	codes := make([]string, 0, len(resp.Locales))
	for _, loc := range resp.Locales {
		codes = append(codes, loc.Code)
	}
	assert.Contains(t, codes, "en")
	assert.Contains(t, codes, "pt")
}

func TestGetTranslations(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("full tree", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslationResponse
		rec := getJSON(t, router, "/api/echoes/translations/en", &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", resp.Locale)
		assert.Contains(t, resp.Translations, "guardian")
		assert.Contains(t, resp.Translations, "billing")
	})

	t.Run("module filter", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslationResponse
		rec := getJSON(t, router, "/api/echoes/translations/en?module=billing", &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, resp.Translations, "billing")
		assert.NotContains(t, resp.Translations, "guardian")
	})

	t.Run("unknown locale yields empty tree", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslationResponse
		rec := getJSON(t, router, "/api/echoes/translations/de", &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "de", resp.Locale)
		assert.Empty(t, resp.Translations)
	})

	t.Run("region subtag is normalized", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslationResponse
		rec := getJSON(t, router, "/api/echoes/translations/pt-BR", &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "pt", resp.Locale)
		assert.Contains(t, resp.Translations, "guardian")
	})
}

func TestDetectLocale(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("supported match", func(t *testing.T) {
		t.Parallel()

		var resp handler.DetectLocaleResponse
		rec := postJSON(t, router, "/api/echoes/detect",
			`{"accept_language": "pt-BR,pt;q=0.9,en;q=0.8"}`, nil, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "pt", resp.Detected)
		require.True(t, resp.Supported)
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()

		var resp handler.DetectLocaleResponse
		rec := postJSON(t, router, "/api/echoes/detect",
			`{"accept_language": "zh-CN"}`, nil, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", resp.Detected)
		require.True(t, resp.Supported)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		rec := postJSON(t, router, "/api/echoes/detect", `{not json`, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("explicit locale", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslateResponse
		rec := postJSON(t, router, "/api/echoes/translate",
			`{"key": "guardian.login.title", "locale": "pt"}`, nil, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "pt", resp.Locale)
		require.Equal(t, "Entrar", resp.Text)
	})

	t.Run("locale from headers", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslateResponse
		rec := postJSON(t, router, "/api/echoes/translate",
			`{"key": "guardian.login.title"}`,
			map[string]string{"X-Locale": "pt"}, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "pt", resp.Locale)
		require.Equal(t, "Entrar", resp.Text)
	})

	t.Run("interpolation", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslateResponse
		rec := postJSON(t, router, "/api/echoes/translate",
			`{"key": "guardian.login.prompt", "locale": "en", "params": {"name": "Ana"}}`, nil, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Welcome back, Ana", resp.Text)
	})

	t.Run("missing key returns marker", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslateResponse
		rec := postJSON(t, router, "/api/echoes/translate",
			`{"key": "ghost.key", "locale": "en"}`, nil, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[ghost.key]", resp.Text)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		t.Parallel()

		rec := postJSON(t, router, "/api/echoes/translate", `{"locale": "en"}`, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTranslateBatch(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("resolves all keys", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslateBatchResponse
		rec := postJSON(t, router, "/api/echoes/translate/batch",
			`{"keys": ["guardian.login.title", "billing.invoice", "ghost.key"], "locale": "en"}`, nil, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", resp.Locale)
		require.Equal(t, map[string]string{
			"guardian.login.title": "Sign in",
			"billing.invoice":      "Invoice",
			"ghost.key":            "[ghost.key]",
		}, resp.Translations)
	})

	t.Run("pt falls back to default for missing keys", func(t *testing.T) {
		t.Parallel()

		var resp handler.TranslateBatchResponse
		rec := postJSON(t, router, "/api/echoes/translate/batch",
			`{"keys": ["guardian.login.title", "billing.invoice"], "locale": "pt"}`, nil, &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Entrar", resp.Translations["guardian.login.title"])
		require.Equal(t, "Invoice", resp.Translations["billing.invoice"])
	})

	t.Run("empty keys rejected", func(t *testing.T) {
		t.Parallel()

		rec := postJSON(t, router, "/api/echoes/translate/batch", `{"keys": []}`, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCurrentLocale(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("from override header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/echoes/current-locale", nil)
		req.Header.Set("X-Locale", "pt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var resp handler.CurrentLocaleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "pt", resp.Locale)
	})

	t.Run("defaults without headers", func(t *testing.T) {
		t.Parallel()

		var resp handler.CurrentLocaleResponse
		rec := getJSON(t, router, "/api/echoes/current-locale", &resp)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", resp.Locale)
	})
}

func TestHealthStatus(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	var resp handler.StatusResponse
	rec := getJSON(t, router, "/api/echoes/health", &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "healthy", resp.Status)
	require.Equal(t, "echoes", resp.Service)
	require.Equal(t, "en", resp.DefaultLocale)
	require.Equal(t, 5, resp.AvailableLocales)
	require.Equal(t, 2, resp.LoadedLocales)
}
