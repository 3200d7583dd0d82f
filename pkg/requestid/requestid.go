// Package requestid tags every request with an identifier that follows it through logs and
// error responses.
package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// Header carries the identifier in both directions.
const Header = "X-Request-ID"

const maxLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identifier stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Middleware keeps a well-formed incoming X-Request-ID and generates a UUID otherwise. The
// identifier is echoed in the response header and stored in the request context, both on its
// own and as a logger context attribute, so loggers from logger.New tag records with it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := logger.ContextWithAttrs(WithContext(r.Context(), id), logger.RequestID(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Valid reports whether id is a non-empty token of at most 128 letters, digits, '-' or '_'.
func Valid(id string) bool {
	return id != "" && len(id) <= maxLength && validID.MatchString(id)
}

// LoggerExtractor adds the request id to records logged with a context built by WithContext
// alone, outside Middleware:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
