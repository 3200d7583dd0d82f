// Package handler provides typed HTTP handlers that bind requests into documents, validate them
// and render the outcome as JSON, HTML or DataStar signals.
//
// A handler receives a Context and a bound request value and returns a Response:
//
//	func signup(ctx handler.Context, doc map[string]any) handler.Response {
//		set := validation.NewSet(validation.WithDocument(doc), validation.WithLocale(ctx))
//		set.NotBlank().JSONPath("email").Validate()
//		set.MinLength(8).JSONPath("password").Validate()
//		if err := set.Err(); err != nil {
//			return handler.JSONError(err) // 422 with messages by path
//		}
//		return handler.JSON(doc, handler.WithValidation("form", set))
//	}
//
//	mux.Handle("POST /signup", i18n.Middleware(nil)(handler.Wrap(signup,
//		handler.WithBinder[handler.Context, map[string]any](binder.Document()),
//		handler.WithErrorHandler[handler.Context, map[string]any](handler.NewErrorHandler[handler.Context](log)),
//	)))
//
// # Responses
//
// JSON and JSONError render the JSONResponse envelope. A failed validation set travels as a
// *validation.Error and becomes status 422 with code "validation_error"; WithValidation
// attaches any set, valid or not, under meta.validation.<name>.
//
// Templ renders a templ component, patching it into the page for DataStar requests.
// ValidationMessages and ValidationClass render the messages at one path inside templates, and
// ValidationSignals pushes a whole set to a DataStar client as signals. SSE keeps a stream open
// for a StreamContext.
//
// # Errors
//
// Errors from binders, handlers and rendering go to the ErrorHandler. The default one renders
// JSONError; NewErrorHandler also logs with pkg/logger attributes and answers DataStar clients
// with signals.
package handler
