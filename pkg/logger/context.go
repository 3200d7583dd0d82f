package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor pulls an attribute out of a context. The bool reports whether one was found.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type attrsKey struct{}

// ContextWithAttrs returns a copy of ctx carrying attrs in addition to the ones already stored.
// An attribute replaces a stored one with the same key. Loggers built by New add them to every
// record logged with the context, so middleware can tag a request once:
//
//	ctx = logger.ContextWithAttrs(ctx, logger.RequestID(id))
//	log.InfoContext(ctx, "handled") // ... request_id=<id>
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	merged := AttrsFromContext(ctx)
	for _, a := range attrs {
		merged = setAttr(merged, a)
	}
	return context.WithValue(ctx, attrsKey{}, merged)
}

// AttrsFromContext returns a copy of the attributes stored by ContextWithAttrs.
func AttrsFromContext(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	return slices.Clone(attrs)
}

// setAttr replaces the attribute with the key of a, or appends a. Empty attributes are dropped.
func setAttr(attrs []slog.Attr, a slog.Attr) []slog.Attr {
	if a.Equal(slog.Attr{}) {
		return attrs
	}
	if i := slices.IndexFunc(attrs, func(x slog.Attr) bool { return x.Key == a.Key }); i >= 0 {
		attrs[i] = a
		return attrs
	}
	return append(attrs, a)
}

// contextHandler adds the context attributes, then the extracted ones, to every record. An
// extracted attribute wins over a context attribute with the same key, so each key is logged once.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are skipped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	return &contextHandler{
		next:       next,
		extractors: slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool { return ex == nil }),
	}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle reads ctx on every call, so request scoped values are current.
func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		return h.next.Handle(ctx, rec)
	}
	attrs := AttrsFromContext(ctx)
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			attrs = setAttr(attrs, attr)
		}
	}
	if len(attrs) > 0 {
		rec.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
