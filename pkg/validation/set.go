package validation

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/value"
)

// DefaultArrayItselfPrefix is prepended to the base path of an array validation to build the
// default path of its array-itself message: "tags" gets "_tags".
const DefaultArrayItselfPrefix = "_"

// Set collects validation messages by path. Paths keep their first-insertion order and messages
// keep the order they were added in.
//
// A Set is not safe for concurrent mutation. Validate in separate sets and Merge them.
type Set struct {
	messages map[string][]Message
	paths    []string

	doc               any
	dict              Dictionary
	lang              string
	conv              value.Converter
	log               *slog.Logger
	arrayItselfPrefix string
}

// Option configures a Set.
type Option func(*Set)

// WithDocument binds a decoded JSON document (map[string]any or []any) the JSONPath targets
// read from.
func WithDocument(doc any) Option {
	return func(s *Set) {
		s.doc = doc
	}
}

// WithDictionary sets the dictionary default message texts are looked up in.
func WithDictionary(d Dictionary) Option {
	return func(s *Set) {
		if d != nil {
			s.dict = d
		}
	}
}

// WithLanguage sets the language of default message texts.
func WithLanguage(lang string) Option {
	return func(s *Set) {
		if lang != "" {
			s.lang = lang
		}
	}
}

// WithLocale takes the language from a context populated by i18n.SetLocale or the i18n
// middleware.
func WithLocale(ctx context.Context) Option {
	return WithLanguage(i18n.GetLocale(ctx))
}

// WithConverter replaces the converter used for coercion, mostly to change date layouts.
func WithConverter(c value.Converter) Option {
	return func(s *Set) {
		s.conv = c
	}
}

// WithLogger sets the logger. Failed rules are logged at debug level, builder misuse at error
// level. A discarding logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Set) {
		if l != nil {
			s.log = l
		}
	}
}

// WithArrayItselfPrefix changes the prefix of default array-itself paths.
func WithArrayItselfPrefix(prefix string) Option {
	return func(s *Set) {
		s.arrayItselfPrefix = prefix
	}
}

// NewSet creates an empty set.
func NewSet(opts ...Option) *Set {
	s := &Set{
		messages:          make(map[string][]Message),
		lang:              i18n.DefaultLanguage,
		conv:              value.Default,
		log:               logger.Discard(),
		arrayItselfPrefix: DefaultArrayItselfPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dict == nil {
		s.dict = DefaultDictionary()
	}
	return s
}

// Document returns the bound document, or nil.
func (s *Set) Document() any { return s.doc }

// Language returns the language default texts are rendered in.
func (s *Set) Language() string { return s.lang }

// Converter returns the converter rules are evaluated with.
func (s *Set) Converter() value.Converter { return s.conv }

// Add appends m to the messages at path.
func (s *Set) Add(path string, m Message) {
	if _, ok := s.messages[path]; !ok {
		s.paths = append(s.paths, path)
	}
	s.messages[path] = append(s.messages[path], m)
}

func (s *Set) AddError(path, code, text string) {
	s.Add(path, NewMessage(LevelError, code, text))
}

func (s *Set) AddWarning(path, code, text string) {
	s.Add(path, NewMessage(LevelWarning, code, text))
}

func (s *Set) AddSuccess(path, code, text string) {
	s.Add(path, NewMessage(LevelSuccess, code, text))
}

// Messages returns a copy of the messages at path. It never returns nil.
func (s *Set) Messages(path string) []Message {
	msgs := s.messages[path]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// Has reports whether at least one message is recorded at path.
func (s *Set) Has(path string) bool { return len(s.messages[path]) > 0 }

// Paths returns the paths holding messages, in first-insertion order.
func (s *Set) Paths() []string { return slices.Clone(s.paths) }

// All returns a copy of every path and its messages.
func (s *Set) All() map[string][]Message {
	out := make(map[string][]Message, len(s.messages))
	for path := range s.messages {
		out[path] = s.Messages(path)
	}
	return out
}

// Size returns the total number of messages.
func (s *Set) Size() int {
	n := 0
	for _, msgs := range s.messages {
		n += len(msgs)
	}
	return n
}

// Status returns the worst level in the set; an empty set is successful.
func (s *Set) Status() Level {
	worst := LevelSuccess
	for _, msgs := range s.messages {
		worst = max(worst, worstOf(msgs))
	}
	return worst
}

// PathStatus returns the worst level recorded at path.
func (s *Set) PathStatus(path string) Level { return worstOf(s.messages[path]) }

func worstOf(msgs []Message) Level {
	worst := LevelSuccess
	for _, m := range msgs {
		worst = max(worst, m.Level)
	}
	return worst
}

// IsValid reports whether the set holds no error.
func (s *Set) IsValid() bool { return s.Status() < LevelError }

func (s *Set) HasErrors() bool   { return s.hasLevel(LevelError) }
func (s *Set) HasWarnings() bool { return s.hasLevel(LevelWarning) }

func (s *Set) hasLevel(l Level) bool {
	for _, msgs := range s.messages {
		for _, m := range msgs {
			if m.Level == l {
				return true
			}
		}
	}
	return false
}

// IsError reports whether the worst message at path is an error.
func (s *Set) IsError(path string) bool { return s.PathStatus(path) == LevelError }

// IsWarning reports whether the worst message at path is a warning.
func (s *Set) IsWarning(path string) bool { return s.PathStatus(path) == LevelWarning }

// IsSuccess reports whether path holds no warning or error. A path without messages is
// successful.
func (s *Set) IsSuccess(path string) bool { return s.PathStatus(path) == LevelSuccess }

// HasMessageAtLeast reports whether path holds a message of level l or worse.
func (s *Set) HasMessageAtLeast(path string, l Level) bool {
	for _, m := range s.messages[path] {
		if m.Level >= l {
			return true
		}
	}
	return false
}

// Err returns nil when the set is valid and an *Error wrapping the set otherwise.
func (s *Set) Err() error {
	if s.IsValid() {
		return nil
	}
	return &Error{set: s}
}
