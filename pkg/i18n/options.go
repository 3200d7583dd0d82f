package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language keys fall back to.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing translations (the default)
// or an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger. A discarding logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}
