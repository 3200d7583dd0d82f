package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/jsonpath"
	"github.com/dmitrymomot/validkit/pkg/logger"
)

type targetMode uint8

const (
	targetNone targetMode = iota
	targetElement
	targetAll
)

// Builder configures one rule invocation against a set. Every step returns a modified copy, so
// a partially configured builder can be reused as a template:
//
//	name := set.MinLength(3).Key("name")
//	name.Element("ab").Validate()
//	name.Element("abc").Validate()
//
// A builder is finished by Validate, ValidateIfNoMessage or ValidateIfNoMessageAtLeast.
// Missing or blank keys, json paths without a document and similar mistakes panic.
type Builder struct {
	set  *Set
	rule Rule

	key     string
	keySet  bool
	target  targetMode
	element any

	failText    string
	failCode    string
	successText string
	asWarning   bool
	onSuccess   bool

	arrayFail        bool
	arraySuccess     bool
	arrayFailPath    string
	arraySuccessPath string
	arrayFailText    string
	arraySuccessText string
}

// Key sets the path messages are recorded at.
func (b Builder) Key(path string) Builder {
	if strings.TrimSpace(path) == "" {
		b.set.misuse(b.rule, fmt.Errorf("%w: %q", ErrBlankKey, path))
	}
	b.key = path
	b.keySet = true
	return b
}

// Element sets the value to validate.
func (b Builder) Element(v any) Builder {
	b.target = targetElement
	b.element = v
	return b
}

// All validates every element of an array. Element i is recorded at key[i]. A value that is
// not an array produces a single validation.not_an_array failure at the key.
func (b Builder) All(collection any) Builder {
	b.target = targetAll
	b.element = collection
	return b
}

// JSONPath reads the value at path from the set document and records messages at path, unless
// a key was set with Key. A missing value validates as null.
func (b Builder) JSONPath(path string) Builder {
	b.element = b.resolve(path)
	b.target = targetElement
	if !b.keySet {
		b.key = path
	}
	return b
}

// JSONPathAll is JSONPath followed by All on the resolved value.
func (b Builder) JSONPathAll(path string) Builder {
	b = b.JSONPath(path)
	b.target = targetAll
	return b
}

func (b Builder) resolve(path string) any {
	if strings.TrimSpace(path) == "" {
		b.set.misuse(b.rule, fmt.Errorf("%w: %q", ErrBlankJSONPath, path))
	}
	if b.set.doc == nil {
		b.set.misuse(b.rule, fmt.Errorf("%w: %q", ErrNoDocument, path))
	}
	p, err := jsonpath.Parse(path)
	if err != nil {
		b.set.misuse(b.rule, err)
	}
	v, _ := jsonpath.Get(b.set.doc, p)
	return v
}

// FailMessageText replaces the default failure text.
func (b Builder) FailMessageText(text string) Builder {
	b.failText = text
	return b
}

// FailMessageCode replaces the failure code. The default text is still looked up with the
// rule code unless FailMessageText is set as well.
func (b Builder) FailMessageCode(code string) Builder {
	b.failCode = code
	return b
}

// SuccessMessageText replaces the default success text. It only matters together with
// AddMessageOnSuccess.
func (b Builder) SuccessMessageText(text string) Builder {
	b.successText = text
	return b
}

// TreatErrorAsWarning records failures as warnings. Codes and texts are unchanged.
func (b Builder) TreatErrorAsWarning() Builder {
	b.asWarning = true
	return b
}

// AddMessageOnSuccess records a success message for every value that passes.
func (b Builder) AddMessageOnSuccess() Builder {
	b.onSuccess = true
	return b
}

// IgnoreNullValues leaves null elements out of size counts.
func (b Builder) IgnoreNullValues() Builder {
	b.rule = b.rule.IgnoringNullValues()
	return b
}

// ArrayItselfAddFailMessage records one extra failure at path when any element of an All
// target fails. An empty path uses the array-itself prefix followed by the key: "_tags".
func (b Builder) ArrayItselfAddFailMessage(path string) Builder {
	b.arrayFail = true
	b.arrayFailPath = path
	return b
}

// ArrayItselfAddSuccessMessage records one extra success at path when every element of an All
// target passes.
func (b Builder) ArrayItselfAddSuccessMessage(path string) Builder {
	b.arraySuccess = true
	b.arraySuccessPath = path
	return b
}

func (b Builder) ArrayItselfFailMessageText(text string) Builder {
	b.arrayFailText = text
	return b
}

func (b Builder) ArrayItselfSuccessMessageText(text string) Builder {
	b.arraySuccessText = text
	return b
}

// Validate evaluates the rule and records the resulting messages. It reports whether the
// invocation recorded no error and no warning.
func (b Builder) Validate() bool {
	b.check()
	if b.target == targetAll {
		return b.validateAll()
	}
	return b.validateOne(b.key, b.element)
}

// ValidateIfNoMessage skips the evaluation when the key already holds any message. A skipped
// validation reports true.
func (b Builder) ValidateIfNoMessage() bool {
	return b.ValidateIfNoMessageAtLeast(LevelSuccess)
}

// ValidateIfNoMessageAtLeast skips the evaluation when the key already holds a message of
// level l or worse.
func (b Builder) ValidateIfNoMessageAtLeast(l Level) bool {
	b.check()
	if b.set.HasMessageAtLeast(b.key, l) {
		return true
	}
	return b.Validate()
}

func (b Builder) check() {
	if b.set == nil {
		panic(fmt.Errorf("%w: builder is not bound to a set", ErrInvalidRule))
	}
	if b.key == "" {
		b.set.misuse(b.rule, ErrMissingKey)
	}
	if b.target == targetNone {
		b.set.misuse(b.rule, fmt.Errorf("%w: key %q", ErrMissingTarget, b.key))
	}
}

func (b Builder) failLevel() Level {
	if b.asWarning {
		return LevelWarning
	}
	return LevelError
}

func (b Builder) validateOne(path string, v any) bool {
	s := b.set
	verdict := b.rule.EvaluateWith(s.conv, v)
	if verdict.Passed {
		if b.onSuccess {
			text := b.successText
			if text == "" {
				text = s.dict.Text(s.lang, CodeSuccess, verdict.Params)
			}
			s.AddSuccess(path, CodeSuccess, text)
		}
		return true
	}

	code := verdict.Code
	if b.failCode != "" {
		code = b.failCode
	}
	text := b.failText
	if text == "" {
		text = s.dict.Text(s.lang, verdict.Code, verdict.Params)
	}
	b.record(path, NewMessage(b.failLevel(), code, text))
	return false
}

func (b Builder) validateAll() bool {
	s := b.set
	items, ok := s.conv.Elements(b.element)
	if !ok {
		text := s.dict.Text(s.lang, CodeNotAnArray, nil)
		b.record(b.key, NewMessage(b.failLevel(), CodeNotAnArray, text))
		return false
	}

	valid := true
	for i, item := range items {
		if !b.validateOne(b.key+"["+strconv.Itoa(i)+"]", item) {
			valid = false
		}
	}

	switch {
	case !valid && b.arrayFail:
		text := b.arrayFailText
		if text == "" {
			text = s.dict.Text(s.lang, CodeArrayItself, nil)
		}
		b.record(b.arrayItselfPath(b.arrayFailPath), NewMessage(b.failLevel(), CodeArrayItself, text))
	case valid && b.arraySuccess:
		text := b.arraySuccessText
		if text == "" {
			text = s.dict.Text(s.lang, CodeArrayItselfSuccess, nil)
		}
		s.AddSuccess(b.arrayItselfPath(b.arraySuccessPath), CodeArrayItselfSuccess, text)
	}
	return valid
}

func (b Builder) arrayItselfPath(path string) string {
	if path == "" {
		return b.set.arrayItselfPrefix + b.key
	}
	return path
}

func (b Builder) record(path string, m Message) {
	b.set.Add(path, m)
	b.set.log.Debug("validation failed",
		logger.ValidationPath(path),
		logger.ValidationCode(m.Code),
		logger.ValidationLevel(m.Level.String()),
		logger.Rule(b.rule.kind.String()),
	)
}

// misuse logs and panics with err.
func (s *Set) misuse(r Rule, err error) {
	s.log.Error("invalid validation", logger.Rule(r.kind.String()), logger.Error(err))
	panic(err)
}
