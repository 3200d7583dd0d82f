package i18n

import "errors"

var (
	ErrNilAdapter      = errors.New("translation adapter is nil")
	ErrEmptyLanguage   = errors.New("empty language code in translations")
	ErrNoTranslations  = errors.New("no translations found")
	ErrUnsupportedFile = errors.New("unsupported translation file format")

	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrFailedToParseYAML     = errors.New("failed to parse YAML translations")
	ErrFailedToParseJSON     = errors.New("failed to parse JSON translations")
	ErrLoadingCancelled      = errors.New("loading translations cancelled")
)
