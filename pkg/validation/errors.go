package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Builder misuse. These are programming errors and are raised as panics wrapping one of the
// sentinels below, never recorded as messages.
var (
	ErrBlankKey       = errors.New("validation key is blank")
	ErrBlankJSONPath  = errors.New("validation json path is blank")
	ErrNoDocument     = errors.New("validation set has no document to resolve json paths against")
	ErrMissingKey     = errors.New("validation has no key or json path")
	ErrMissingTarget  = errors.New("validation has no element to validate")
	ErrInvalidPattern = errors.New("invalid validation pattern")
	ErrInvalidRule    = errors.New("invalid validation rule")
)

var (
	ErrUnknownLevel     = errors.New("unknown validation level")
	ErrValidationFailed = errors.New("validation failed")
)

// Error carries a failed Set through error returns. It matches ErrValidationFailed with errors.Is.
type Error struct {
	set *Set
}

// Set returns the failed set.
func (e *Error) Set() *Set { return e.set }

func (e *Error) Error() string {
	var parts []string
	for _, path := range e.set.Paths() {
		for _, m := range e.set.Messages(path) {
			if m.Level == LevelSuccess {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", path, m.Text))
		}
	}
	if len(parts) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool { return target == ErrValidationFailed }

// AsSet extracts the set from an error chain holding an *Error.
func AsSet(err error) (*Set, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.set, true
	}
	return nil, false
}
