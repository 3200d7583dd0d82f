package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys to texts per language. It is safe for concurrent use.
type Translator struct {
	mu           sync.RWMutex
	translations map[string]map[string]any

	adapter        TranslationAdapter
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the adapter again and swaps the translations in one step.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	// Language codes are matched case-insensitively.
	normalized := make(map[string]map[string]any, len(translations))
	for lang, keys := range translations {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if keys == nil {
			return fmt.Errorf("%w: %s", ErrNoTranslations, lang)
		}
		lang = strings.ToLower(lang)
		normalized[lang] = mergeKeys(normalized[lang], keys)
	}
	if len(normalized) == 0 {
		t.logger.WarnContext(ctx, "no translations loaded")
	}

	t.mu.Lock()
	t.translations = normalized
	t.mu.Unlock()

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the language used when a key is missing in the requested one.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// HasTranslation reports whether lang itself defines a text for key, without any fallback.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := lookup(t.translations[strings.ToLower(lang)], key)
	if !ok {
		return false
	}
	_, isGroup := v.(map[string]any)
	return !isGroup
}

// T translates key into lang. Arguments are name/value pairs substituted into %{name}
// placeholders:
//
//	t.T("en", "validation.min_length", "min", "3") // "Must be at least 3 characters long."
//
// A key missing in lang is looked up in its base language ("de-AT" falls back to "de") and
// then in the default language. When it is missing everywhere the key itself is returned,
// unless the translator was built WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	if text, ok := t.find(lang, key); ok {
		return substitute(text, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is T with an explicit default text instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if text, ok := t.find(lang, key); ok {
		return substitute(text, args)
	}
	return substitute(defaultValue, args)
}

// Tc translates key into the language stored in ctx by SetLocale or Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) find(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, candidate := range candidates(lang, t.defaultLang) {
		keys, ok := t.translations[candidate]
		if !ok {
			continue
		}
		val, ok := lookup(keys, key)
		if !ok {
			continue
		}
		if text, ok := val.(string); ok {
			return text, true
		}
		if s, ok := val.(fmt.Stringer); ok {
			return s.String(), true
		}
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", logger.Language(candidate), logger.TranslationKey(key))
		}
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", logger.Language(lang), logger.TranslationKey(key))
	}
	return "", false
}

// candidates lists lang, its base language and the default language, without duplicates.
func candidates(lang, defaultLang string) []string {
	lang = strings.ToLower(lang)
	out := make([]string, 0, 3)
	add := func(l string) {
		if l == "" {
			return
		}
		for _, seen := range out {
			if seen == l {
				return
			}
		}
		out = append(out, l)
	}
	add(lang)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		add(lang[:i])
	}
	add(strings.ToLower(defaultLang))
	return out
}

// lookup resolves a dot-separated key. A flat key containing dots wins over nesting, so both
// {"validation.null": "..."} and {"validation": {"null": "..."}} work.
func lookup(m map[string]any, key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if v, ok := m[key]; ok {
		return v, true
	}

	head, rest, nested := strings.Cut(key, ".")
	if !nested {
		return nil, false
	}
	child, ok := m[head].(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(child, rest)
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are left as they are.
func substitute(text string, args []string) string {
	if len(args) < 2 || !strings.Contains(text, "%{") {
		return text
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
