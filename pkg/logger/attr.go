package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from attrs.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil err gives an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errs under the key "errors", indexed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// RequestID records the request identifier under the key "request_id".
// A nil id gives an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// ValidationPath records the path a validation message belongs to.
func ValidationPath(path string) slog.Attr {
	return slog.String("validation_path", path)
}

// ValidationCode records a validation message code.
func ValidationCode(code string) slog.Attr {
	return slog.String("validation_code", code)
}

// ValidationLevel records a validation message level.
func ValidationLevel(level string) slog.Attr {
	return slog.String("validation_level", level)
}

func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Language records a language code under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// TranslationKey records a message catalogue key.
func TranslationKey(key string) slog.Attr {
	return slog.String("translation_key", key)
}
