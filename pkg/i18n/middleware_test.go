package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

func TestDefaultLangExtractor(t *testing.T) {
	t.Run("cookie wins over query and header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "DE"})
		r.Header.Set("Accept-Language", "pl")
		assert.Equal(t, "de", i18n.DefaultLangExtractor()(r))
	})

	t.Run("query wins over header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?locale=fr", nil)
		r.Header.Set("Accept-Language", "pl")
		assert.Equal(t, "fr", i18n.DefaultLangExtractor(i18n.WithQueryParamName("locale"))(r))
	})

	t.Run("header best quality", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "pl;q=0.4, uk")
		assert.Equal(t, "uk", i18n.DefaultLangExtractor()(r))
	})

	t.Run("custom cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "ui_lang", Value: "es"})
		assert.Equal(t, "es", i18n.DefaultLangExtractor(i18n.WithCookieName("ui_lang"))(r))
	})

	t.Run("supported languages", func(t *testing.T) {
		extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "DE"))

		r := httptest.NewRequest(http.MethodGet, "/?lang=pl", nil)
		r.Header.Set("Accept-Language", "de-CH, pl;q=0.5")
		assert.Equal(t, "de", extract(r), "unsupported query value falls through to the header")

		r = httptest.NewRequest(http.MethodGet, "/?lang=de-AT", nil)
		assert.Equal(t, "de", extract(r))

		r = httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "ja")
		assert.Empty(t, extract(r))
	})

	t.Run("nothing found", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, i18n.DefaultLangExtractor()(r))
	})
}

func TestMiddleware(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	})

	t.Run("stores detected language", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		i18n.Middleware(nil)(next).ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, "de", got)
	})

	t.Run("defaults when nothing detected", func(t *testing.T) {
		extract := func(*http.Request) string { return "" }
		i18n.Middleware(extract)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, i18n.DefaultLanguage, got)
	})
}
