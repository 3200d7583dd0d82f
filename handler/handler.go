package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/validkit/pkg/binder"
)

// HandlerFunc handles a bound request of type R with a context of type C.
//
//	signup := handler.HandlerFunc[handler.Context, map[string]any](
//		func(ctx handler.Context, doc map[string]any) handler.Response {
//			set := validation.NewSet(validation.WithDocument(doc), validation.WithLocale(ctx))
//			set.NotBlank().JSONPath("email").Validate()
//			if err := set.Err(); err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(doc)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses a request into v. binder.Document and binder.Query satisfy it.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to WithDecorators is the outermost.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder replaces the binders with b.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders applied in order. A binder returning
// binder.ErrBinderNotApplicable is skipped:
//
//	http.HandleFunc("/signup", handler.Wrap(signup,
//		handler.WithBinders[handler.Context, map[string]any](
//			binder.Query(),
//			binder.Document(),
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets the factory for custom context types.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler renders err with JSONError.
func defaultErrorHandler[C Context](ctx C, err error) {
	if rerr := JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
		http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc. Binders fill the request value, the
// decorated handler produces a Response and any error on the way goes to the error handler.
//
//	http.HandleFunc("/signup", handler.Wrap(signup,
//		handler.WithBinder[handler.Context, map[string]any](binder.Document()),
//		handler.WithErrorHandler[handler.Context, map[string]any](handler.NewErrorHandler[handler.Context](log)),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := any(NewContext(w, r)).(C); ok {
				return c
			}
			panic("handler: custom context type requires WithContextFactory")
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
