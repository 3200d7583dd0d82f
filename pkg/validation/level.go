package validation

import (
	"fmt"
	"strings"
)

// Level is the severity of a Message. Levels are ordered: Success < Warning < Error.
type Level uint8

const (
	LevelSuccess Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", uint8(l))
}

// MarshalText encodes the level as its lowercase name.
func (l Level) MarshalText() ([]byte, error) {
	if l > LevelError {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, uint8(l))
	}
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel accepts the level names in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SUCCESS":
		return LevelSuccess, nil
	case "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
