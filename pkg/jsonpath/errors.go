package jsonpath

import "errors"

var (
	ErrInvalidPath  = errors.New("invalid json path")
	ErrNotContainer = errors.New("json path crosses a value that is not an object or array")
)
