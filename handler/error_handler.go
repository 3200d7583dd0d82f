package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/requestid"
	"github.com/dmitrymomot/validkit/pkg/validation"
)

// ValidationSignalName is the signal a failed set is sent under to DataStar clients.
const ValidationSignalName = "validation"

// NewErrorHandler returns an ErrorHandler that logs err and renders it as JSONError does,
// adding the request id set by requestid.Middleware. Client errors are logged at Warn and
// server errors at Error; loggers from logger.New pick the request id up from the context.
// DataStar clients receive the failure as signals instead: a failed validation set as
// {"validation": {path: [texts]}}, anything else as {"error": {"code": ..., "message": ...}}.
//
// A nil log discards.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx C, err error) {
		r := ctx.Request()
		status := http.StatusInternalServerError
		detail := errorToDetail(err, &status)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		attrs := []slog.Attr{
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Language(i18n.GetLocale(ctx)),
		}
		if id := requestid.FromContext(ctx); id != "" {
			detail.RequestID = id
		}
		if set, ok := validation.AsSet(err); ok {
			attrs = append(attrs, slog.Any("validation_paths", set.Paths()))
		}
		log.LogAttrs(ctx, level, "request error", attrs...)

		if sse := ctx.SSE(); sse != nil {
			signals := map[string]any{"error": detail}
			if set, ok := validation.AsSet(err); ok {
				signals = map[string]any{ValidationSignalName: messageTexts(set)}
			}
			data, merr := json.Marshal(signals)
			if merr == nil {
				merr = sse.PatchSignals(data)
			}
			if merr != nil {
				log.ErrorContext(ctx, "failed to send error signals", logger.Error(merr))
			}
			return
		}

		res := &jsonResponse{status: status, body: JSONResponse{Error: detail}}
		if rerr := res.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(ctx, "failed to render error", logger.Error(rerr))
		}
	}
}
