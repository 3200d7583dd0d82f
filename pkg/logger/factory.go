package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the log output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config is the environment driven logger configuration, loadable with config.Load.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Service string `env:"LOG_SERVICE"`
}

// Option configures New.
type Option func(*options)

type options struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format. An unknown format panics.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithHandlerOptions replaces the handler options, level included.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(o *options) {
		if opts != nil {
			o.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithService tags every record with the service name.
func WithService(name string) Option {
	return func(o *options) {
		if name != "" {
			o.attrs = append(o.attrs, slog.String("service", name))
		}
	}
}

func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) { o.extractors = append(o.extractors, extractors...) }
}

// WithContextValue logs the context value stored under key as name, when present.
func WithContextValue(name string, key any) Option {
	return func(o *options) {
		if name == "" || key == nil {
			return
		}
		o.extractors = append(o.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithConfig applies a Config. Unknown levels or formats panic, so a bad environment stops the
// process at startup.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.Level != "" {
			var l slog.Level
			if err := l.UnmarshalText([]byte(cfg.Level)); err != nil {
				panic(fmt.Errorf("invalid log level %q: %w", cfg.Level, err))
			}
			o.level = l
		}
		if cfg.Format != "" {
			WithFormat(Format(strings.ToLower(cfg.Format)))(o)
		}
		WithService(cfg.Service)(o)
	}
}

// New creates a logger. Defaults: JSON to stdout at Info.
func New(opts ...Option) *slog.Logger {
	o := &options{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := o.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: o.level}
	}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}
	return slog.New(NewContextHandler(handler, o.extractors...))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
