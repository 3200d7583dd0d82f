package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError is an error with an HTTP status. Key is a machine readable code such as
// "not_found".
type HTTPError struct {
	Code int
	Key  string
}

// NewHTTPError creates an HTTPError. An empty key defaults to the status text in snake case.
func NewHTTPError(code int, key string) HTTPError {
	if key == "" {
		key = statusKey(code)
	}
	return HTTPError{Code: code, Key: key}
}

func (e HTTPError) Error() string { return e.Key }

// statusKey turns "Unsupported Media Type" into "unsupported_media_type".
func statusKey(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return "error"
	}
	b := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c >= 'A' && c <= 'Z':
			b = append(b, c+'a'-'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b = append(b, c)
		default:
			if len(b) > 0 && b[len(b)-1] != '_' {
				b = append(b, '_')
			}
		}
	}
	return string(b)
}
