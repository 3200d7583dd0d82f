package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/validkit/pkg/binder"
	"github.com/dmitrymomot/validkit/pkg/validation"
)

// JSONResponse is the JSON envelope.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details holds validation messages by path.
type ErrorDetail struct {
	Code      string                          `json:"code,omitempty"`
	Message   string                          `json:"message,omitempty"`
	Details   map[string][]validation.Message `json:"details,omitempty"`
	RequestID string                          `json:"request_id,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta merges meta into the response metadata.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		for k, v := range meta {
			r.meta()[k] = v
		}
	}
}

// WithValidation exposes the messages of set under meta.validation.<name>, keyed by path.
// Several sets can be attached under different names; a nil set is ignored.
//
//	handler.JSON(profile, handler.WithValidation("form", set))
//	// {"data": {...}, "meta": {"validation": {"form": {"email": [{"level": "warning", ...}]}}}}
func WithValidation(name string, set *validation.Set) JSONOption {
	return func(r *jsonResponse) {
		if set == nil {
			return
		}
		sets, ok := r.meta()["validation"].(map[string]any)
		if !ok {
			sets = map[string]any{}
			r.meta()["validation"] = sets
		}
		sets[name] = set.All()
	}
}

func (r *jsonResponse) meta() map[string]any {
	if r.body.Meta == nil {
		r.body.Meta = map[string]any{}
	}
	return r.body.Meta
}

// JSON renders v as the data of the envelope with status 200. An error or *ErrorDetail is
// rendered as JSONError would.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as the error of the envelope. A *validation.Error becomes 422 with
// code "validation_error" and the non-success messages of its set as details; an HTTPError
// keeps its status; binder errors map to 400 or 415; anything else is 500.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error = errorToDetail(e, &r.status)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToDetail(err error, status *int) *ErrorDetail {
	if set, ok := validation.AsSet(err); ok {
		*status = http.StatusUnprocessableEntity
		return &ErrorDetail{
			Code:    "validation_error",
			Message: validation.ErrValidationFailed.Error(),
			Details: failures(set),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	if code := bindStatus(err); code != 0 {
		*status = code
		return &ErrorDetail{Code: statusKey(code), Message: err.Error()}
	}

	*status = http.StatusInternalServerError
	return &ErrorDetail{Code: "internal_error", Message: err.Error()}
}

// bindStatus maps binder errors to a client error status, or returns 0.
func bindStatus(err error) int {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return http.StatusBadRequest
	}
	return 0
}

// failures returns the warning and error messages of set by path.
func failures(set *validation.Set) map[string][]validation.Message {
	out := map[string][]validation.Message{}
	for _, path := range set.Paths() {
		for _, m := range set.Messages(path) {
			if m.Level != validation.LevelSuccess {
				out[path] = append(out[path], m)
			}
		}
	}
	return out
}
