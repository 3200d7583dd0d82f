package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrBinderNotApplicable  = errors.New("binder target must be *any or *map[string]any")
)
