package binder

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/jsonpath"
)

// decodeForm turns form fields into a document. Field names are JSON paths, so "user.name" and
// "tags[0]" build nested objects and arrays. A name ending in "[]" always yields an array;
// other repeated names yield an array of their values, single ones a string.
//
// Multipart files become objects with "filename", "size" and "content_type", so the same rules
// can check uploads.
func decodeForm(r *http.Request, mediaType string) (map[string]any, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}

	var (
		values map[string][]string
		files  map[string][]*multipart.FileHeader
	)
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		// Only file headers are read, so spilled parts can go once the document is built.
		defer func() { _ = r.MultipartForm.RemoveAll() }()
		values = r.MultipartForm.Value
		files = r.MultipartForm.File
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		values = r.PostForm
	}

	doc, err := buildDocument(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}
	for _, name := range sortedKeys(files) {
		headers := files[name]
		items := make([]any, len(headers))
		for i, fh := range headers {
			items[i] = map[string]any{
				"filename":     sanitizeFilename(fh.Filename),
				"size":         fh.Size,
				"content_type": fh.Header.Get("Content-Type"),
			}
		}
		if err := put(doc, name, items); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
	}
	return doc, nil
}

// buildDocument places every field at its path, in name order.
func buildDocument(values map[string][]string) (map[string]any, error) {
	doc := make(map[string]any, len(values))
	for _, name := range sortedKeys(values) {
		vals := values[name]
		items := make([]any, len(vals))
		for i, v := range vals {
			items[i] = v
		}
		if err := put(doc, name, items); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// put stores items at the path named by a field. Names that are not valid paths, or that start
// with an index, are taken literally.
func put(doc map[string]any, name string, items []any) error {
	base, forceArray := strings.CutSuffix(name, "[]")

	var v any = items
	if len(items) == 1 && !forceArray {
		v = items[0]
	}

	p, err := jsonpath.Parse(base)
	if err != nil || p.IsEmpty() || p[0].IsIndex {
		p = jsonpath.Path{jsonpath.Field(base)}
	}
	if err := jsonpath.Put(doc, p, v); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// sanitizeFilename drops directory components and NUL bytes from an uploaded file name.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		return "unnamed"
	}
	return filename
}
