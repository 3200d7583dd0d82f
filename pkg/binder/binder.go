package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

const (
	// DefaultMaxJSONSize caps JSON request bodies.
	DefaultMaxJSONSize = 1 << 20
	// DefaultMaxMemory is the memory budget for multipart forms; larger parts go to disk.
	DefaultMaxMemory = 10 << 20
)

// Document binds the request body into a JSON document: a decoded JSON body, or the fields of
// an url-encoded or multipart form. v must be *any or *map[string]any; the latter also requires
// the document root to be an object.
//
//	var doc map[string]any
//	if err := binder.Document()(r, &doc); err != nil {
//		return err
//	}
//	set := validation.NewSet(validation.WithDocument(doc))
//	set.NotBlank().JSONPath("user.email").Validate()
func Document() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := checkTarget(v); err != nil {
			return err
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json, application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
		}

		switch {
		case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
			doc, err := decodeJSON(r)
			if err != nil {
				return err
			}
			return assign(v, doc, ErrFailedToParseJSON)
		case mediaType == "application/x-www-form-urlencoded", mediaType == "multipart/form-data":
			doc, err := decodeForm(r, mediaType)
			if err != nil {
				return err
			}
			return assign(v, doc, ErrFailedToParseForm)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

// Query binds the query string into a document, with the same key rules as forms.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := checkTarget(v); err != nil {
			return err
		}
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseQuery, err)
		}
		doc, err := buildDocument(values)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseQuery, err)
		}
		return assign(v, doc, ErrFailedToParseQuery)
	}
}

func checkTarget(v any) error {
	switch t := v.(type) {
	case *any:
		if t != nil {
			return nil
		}
	case *map[string]any:
		if t != nil {
			return nil
		}
	}
	return fmt.Errorf("%w: got %T", ErrBinderNotApplicable, v)
}

func assign(v, doc any, bindErr error) error {
	switch t := v.(type) {
	case *any:
		*t = doc
	case *map[string]any:
		m, ok := doc.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: document root is %T, not an object", bindErr, doc)
		}
		*t = m
	}
	return nil
}
