package i18n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file. The top level maps language codes to (possibly nested)
// key groups:
//
//	en:
//	  validation:
//	    not_null: "Can't be null."
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserFor returns the parser matching the extension of filename, or nil.
func ParserFor(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "yaml", "yml":
		return NewYAMLParser()
	case "json":
		return NewJSONParser()
	}
	return nil
}

type YAMLParser struct{}

func NewYAMLParser() *YAMLParser { return &YAMLParser{} }

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data, ErrFailedToParseYAML)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return ext == "yaml" || ext == "yml"
}

type JSONParser struct{}

func NewJSONParser() *JSONParser { return &JSONParser{} }

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data, ErrFailedToParseJSON)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func byLanguage(data map[string]any, parseErr error) (map[string]map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrNoTranslations
	}
	result := make(map[string]map[string]any, len(data))
	for lang, v := range data {
		keys, ok := normalize(v).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, not a key group", parseErr, lang, v)
		}
		result[lang] = keys
	}
	return result, nil
}

// normalize turns map[any]any groups into map[string]any, recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	}
	return v
}
