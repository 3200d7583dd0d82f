package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/handler"
	"github.com/dmitrymomot/validkit/pkg/binder"
	"github.com/dmitrymomot/validkit/pkg/validation"
)

func render(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, resp.Render(w, r))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func failedSet() *validation.Set {
	set := validation.NewSet()
	set.AddError("email", validation.CodeNotBlank, "Can't be blank.")
	set.AddWarning("age", validation.CodeEquivalentOrGreater, "Too young.")
	set.AddSuccess("name", validation.CodeSuccess, "Looks good.")
	return set
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data", func(t *testing.T) {
		t.Parallel()
		w, body := render(t, handler.JSON(map[string]string{"id": "123"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, map[string]any{"data": map[string]any{"id": "123"}}, body)
	})

	t.Run("status and meta", func(t *testing.T) {
		t.Parallel()
		w, body := render(t, handler.JSON("ok",
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"page": 1}),
			handler.WithJSONMeta(map[string]any{"total": 3}),
		))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, map[string]any{"page": float64(1), "total": float64(3)}, body["meta"])
	})

	t.Run("validation sets under meta", func(t *testing.T) {
		t.Parallel()
		other := validation.NewSet()
		other.AddError("sku", validation.CodeNotNull, "Can't be null.")

		_, body := render(t, handler.JSON("ok",
			handler.WithJSONMeta(map[string]any{"page": 1}),
			handler.WithValidation("form", failedSet()),
			handler.WithValidation("items", other),
			handler.WithValidation("ignored", nil),
		))

		meta := body["meta"].(map[string]any)
		assert.Equal(t, float64(1), meta["page"])
		sets := meta["validation"].(map[string]any)
		require.Len(t, sets, 2)

		form := sets["form"].(map[string]any)
		assert.Equal(t, []any{map[string]any{
			"level": "error", "code": validation.CodeNotBlank, "text": "Can't be blank.",
		}}, form["email"])
		assert.Equal(t, []any{map[string]any{
			"level": "success", "code": validation.CodeSuccess, "text": "Looks good.",
		}}, form["name"])
		assert.Contains(t, sets["items"], "sku")
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()
		w, body := render(t, handler.JSON(errors.New("boom")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Nil(t, body["data"])
		assert.Equal(t, map[string]any{"code": "internal_error", "message": "boom"}, body["error"])
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("signup: %w", failedSet().Err())

		w := httptest.NewRecorder()
		require.NoError(t, handler.JSONError(err).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.Error)
		assert.Equal(t, "validation_error", got.Error.Code)
		assert.Equal(t, validation.ErrValidationFailed.Error(), got.Error.Message)
		assert.Equal(t, map[string][]validation.Message{
			"email": {validation.NewMessage(validation.LevelError, validation.CodeNotBlank, "Can't be blank.")},
			"age":   {validation.NewMessage(validation.LevelWarning, validation.CodeEquivalentOrGreater, "Too young.")},
		}, got.Error.Details)
	})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", handler.NewHTTPError(http.StatusNotFound, "user_not_found"), http.StatusNotFound, "user_not_found"},
		{"http error default key", handler.NewHTTPError(http.StatusUnsupportedMediaType, ""), http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"wrapped http error", fmt.Errorf("load: %w", handler.NewHTTPError(http.StatusForbidden, "forbidden")), http.StatusForbidden, "forbidden"},
		{"bad json", fmt.Errorf("%w: unexpected EOF", binder.ErrFailedToParseJSON), http.StatusBadRequest, "bad_request"},
		{"missing content type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"plain error", errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, body := render(t, handler.JSONError(tt.err))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, body["error"].(map[string]any)["code"])
		})
	}

	t.Run("error detail with options", func(t *testing.T) {
		t.Parallel()
		detail := &handler.ErrorDetail{Code: "quota", Message: "Quota exceeded"}
		w, body := render(t, handler.JSONError(detail, handler.WithJSONStatus(http.StatusTooManyRequests)))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, map[string]any{"code": "quota", "message": "Quota exceeded"}, body["error"])
	})
}
