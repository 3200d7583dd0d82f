package i18n

import (
	"net/http"
	"strings"
)

// maxLangCodeLength follows the RFC 5646 recommendation for language tags.
const maxLangCodeLength = 35

// LangExtractor returns the preferred language of a request, or "" when it has none.
type LangExtractor func(r *http.Request) string

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

type extractorConfig struct {
	cookie    string
	query     string
	supported []string
}

// WithCookieName sets the cookie holding the language. Default "lang".
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.cookie = name }
}

// WithQueryParamName sets the query parameter holding the language. Default "lang".
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.query = name }
}

// WithSupportedLanguages restricts the extracted languages. Unsupported regional tags fall back
// to their base language when it is supported.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *extractorConfig) {
		c.supported = make([]string, len(langs))
		for i, l := range langs {
			c.supported[i] = strings.ToLower(l)
		}
	}
}

// DefaultLangExtractor checks, in order: the cookie, the query parameter and the
// Accept-Language header.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &extractorConfig{cookie: "lang", query: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if cfg.cookie != "" {
			if c, err := r.Cookie(cfg.cookie); err == nil {
				if lang := cfg.accept(c.Value); lang != "" {
					return lang
				}
			}
		}
		if cfg.query != "" {
			if lang := cfg.accept(r.URL.Query().Get(cfg.query)); lang != "" {
				return lang
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(cfg.supported) > 0 {
			return ParseAcceptLanguage(header, cfg.supported, "")
		}
		if langs := parseAcceptLanguage(header); len(langs) > 0 {
			return langs[0].lang
		}
		return ""
	}
}

// accept normalizes lang and checks it against the supported languages.
func (c *extractorConfig) accept(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	if len(c.supported) == 0 {
		return lang
	}
	for _, s := range c.supported {
		if s == lang {
			return lang
		}
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		for _, s := range c.supported {
			if s == base {
				return base
			}
		}
	}
	return ""
}

// Middleware stores the language found by extract (DefaultLangExtractor when nil) in the
// request context; see GetLocale. Requests without a preference get DefaultLanguage.
func Middleware(extract LangExtractor) func(http.Handler) http.Handler {
	if extract == nil {
		extract = DefaultLangExtractor()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extract(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
