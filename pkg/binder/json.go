package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// decodeJSON reads a single JSON value. Numbers are kept as json.Number so that large integers
// and decimals survive unchanged.
func decodeJSON(r *http.Request) (any, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}
	return doc, nil
}
