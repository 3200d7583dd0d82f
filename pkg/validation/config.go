package validation

import (
	"context"

	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/value"
)

// Config is the environment configuration of validation sets.
type Config struct {
	Language          string `env:"VALIDATION_LANGUAGE" envDefault:"en"`
	DateLayout        string `env:"VALIDATION_DATE_LAYOUT" envDefault:"2006-01-02T15:04:05.000Z07:00"`
	ArrayItselfPrefix string `env:"VALIDATION_ARRAY_ITSELF_PREFIX" envDefault:"_"`

	// TranslationsDir holds YAML or JSON catalogues overriding the built-in message texts.
	TranslationsDir string `env:"VALIDATION_TRANSLATIONS_DIR"`
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithConfig applies the language, date layout and array-itself prefix of cfg.
// The translations directory is applied by NewFactory.
func WithConfig(cfg Config) Option {
	return func(s *Set) {
		if cfg.Language != "" {
			s.lang = cfg.Language
		}
		if cfg.DateLayout != "" {
			c := value.Default
			c.DateLayout = cfg.DateLayout
			s.conv = c
		}
		if cfg.ArrayItselfPrefix != "" {
			s.arrayItselfPrefix = cfg.ArrayItselfPrefix
		}
	}
}

// Factory creates sets sharing one configuration and dictionary.
type Factory struct {
	opts []Option
}

// NewFactory prepares a factory from cfg. opts are applied to every set after cfg.
func NewFactory(ctx context.Context, cfg Config, opts ...Option) (*Factory, error) {
	dict := DefaultDictionary()
	if cfg.TranslationsDir != "" {
		d, err := LoadDictionary(ctx, cfg.TranslationsDir)
		if err != nil {
			return nil, err
		}
		dict = d
	}

	base := []Option{WithConfig(cfg), WithDictionary(dict)}
	return &Factory{opts: append(base, opts...)}, nil
}

// NewSet creates an empty set.
func (f *Factory) NewSet(opts ...Option) *Set {
	all := make([]Option, 0, len(f.opts)+len(opts))
	all = append(all, f.opts...)
	return NewSet(append(all, opts...)...)
}

// ForDocument creates an empty set bound to doc.
func (f *Factory) ForDocument(doc any, opts ...Option) *Set {
	return f.NewSet(append([]Option{WithDocument(doc)}, opts...)...)
}
