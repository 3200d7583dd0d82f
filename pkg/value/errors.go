package value

import "errors"

var (
	ErrUnknownKind    = errors.New("unknown value kind")
	ErrNotConvertible = errors.New("value is not convertible")
)
