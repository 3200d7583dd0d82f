package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/handler"
	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/requestid"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{"validation error", failedSet().Err(), http.StatusUnprocessableEntity, "WARN"},
		{"http error", handler.NewHTTPError(http.StatusNotFound, "not_found"), http.StatusNotFound, "WARN"},
		{"internal error", errors.New("db down"), http.StatusInternalServerError, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			eh := handler.NewErrorHandler[handler.Context](newLogger(&buf))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/signup", nil)
			r = r.WithContext(i18n.SetLocale(r.Context(), "de"))
			eh(handler.NewContext(w, r), tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request error", entry["msg"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "error_handler", entry["component"])
			assert.Equal(t, float64(tt.status), entry["status_code"])
			assert.Equal(t, "/signup", entry["path"])
			assert.Equal(t, "de", entry["lang"])
		})
	}

	t.Run("validation paths are logged", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		eh := handler.NewErrorHandler[handler.Context](newLogger(&buf))
		eh(handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil)), failedSet().Err())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, []any{"email", "age", "name"}, entry["validation_paths"])
	})

	t.Run("datastar request gets signals", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Accept", "text/event-stream")

		eh := handler.NewErrorHandler[handler.Context](nil)
		eh(handler.NewContext(w, r), failedSet().Err())

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"validation":{`)
		assert.Contains(t, body, `"email":["Can't be blank."]`)
	})

	t.Run("datastar request gets error signal", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("Accept", "text/event-stream")

		eh := handler.NewErrorHandler[handler.Context](nil)
		eh(handler.NewContext(w, r), handler.NewHTTPError(http.StatusForbidden, "forbidden"))

		assert.Contains(t, w.Body.String(), `"error":{"code":"forbidden","message":"Forbidden"}`)
	})
}

func TestNewErrorHandler_RequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	eh := handler.NewErrorHandler[handler.Context](newLogger(&buf))
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		eh(handler.NewContext(w, r), errors.New("db down"))
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(requestid.Header, "req-1")
	h.ServeHTTP(w, r)

	var got handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotNil(t, got.Error)
	assert.Equal(t, "req-1", got.Error.RequestID)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
}
