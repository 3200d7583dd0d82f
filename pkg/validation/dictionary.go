package validation

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

//go:embed messages/*.yaml
var messagesFS embed.FS

// Dictionary resolves a message code to its default text in a language, substituting
// %{name} placeholders from params.
type Dictionary interface {
	Text(lang, code string, params map[string]string) string
}

// DictionaryFunc adapts a function to Dictionary.
type DictionaryFunc func(lang, code string, params map[string]string) string

func (f DictionaryFunc) Text(lang, code string, params map[string]string) string {
	return f(lang, code, params)
}

type translatorDictionary struct {
	t *i18n.Translator
}

// NewDictionary serves texts from a translator. Unknown codes render as the code itself.
func NewDictionary(t *i18n.Translator) Dictionary {
	return translatorDictionary{t: t}
}

func (d translatorDictionary) Text(lang, code string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, params[k])
	}
	return d.t.Td(lang, code, code, args...)
}

// EmbeddedMessages returns an adapter over the built-in catalogues.
func EmbeddedMessages() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(i18n.NewYAMLParser(), messagesFS, "messages")
}

// LoadDictionary loads the built-in catalogues and, when dir is not empty, the YAML and JSON
// catalogues found in dir on top of them.
func LoadDictionary(ctx context.Context, dir string, opts ...i18n.Option) (Dictionary, error) {
	adapters := []i18n.TranslationAdapter{EmbeddedMessages()}
	if dir != "" {
		adapters = append(adapters, i18n.NewDirectoryAdapter(dir))
	}
	t, err := i18n.NewTranslator(ctx, i18n.ChainAdapter(adapters...), opts...)
	if err != nil {
		return nil, fmt.Errorf("load validation messages: %w", err)
	}
	return NewDictionary(t), nil
}

var defaultDictionary = sync.OnceValue(func() Dictionary {
	d, err := LoadDictionary(context.Background(), "")
	if err != nil {
		// The catalogue is compiled in; failing to read it is a build defect.
		panic(err)
	}
	return d
})

// DefaultDictionary returns the dictionary built from the embedded catalogues.
func DefaultDictionary() Dictionary { return defaultDictionary() }
