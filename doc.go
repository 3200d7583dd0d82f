// Package validkit validates loosely typed input (decoded JSON documents, form fields, plain Go
// values) against coercing rules, and collects the outcome as leveled, localized messages keyed
// by path.
//
// The module is a set of small packages that build on each other:
//
//   - pkg/value converts between value kinds (text, numbers, decimals, dates, bytes, objects,
//     arrays) and compares values of different kinds.
//   - pkg/jsonpath parses and renders paths such as "items[0].sku" and reads or writes them in
//     decoded documents.
//   - pkg/validation holds the rules, the fluent Builder and the Set of messages.
//   - pkg/i18n resolves message texts per language and detects the request language.
//   - pkg/binder decodes JSON and form requests into documents.
//   - handler runs typed handlers and renders sets as JSON, HTML or DataStar signals.
//   - pkg/logger, pkg/config and pkg/requestid are the shared logging, configuration and request
//     tracing layers.
//
// A typical request:
//
//	func signup(ctx handler.Context, doc map[string]any) handler.Response {
//		set := validation.NewSet(validation.WithDocument(doc), validation.WithLocale(ctx))
//		set.NotBlank().JSONPath("email").Validate()
//		set.Pattern(`[^@]+@[^@]+`).JSONPath("email").ValidateIfNoMessage()
//		set.EquivalentOrGreater(18).JSONPath("age").TreatErrorAsWarning().Validate()
//		set.MinLength(2).JSONPathAll("tags").ArrayItselfAddFailMessage("").Validate()
//
//		if err := set.Err(); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(doc, handler.WithValidation("form", set))
//	}
//
//	mux.Handle("POST /signup", requestid.Middleware(i18n.Middleware(nil)(
//		handler.Wrap(signup, handler.WithBinder[handler.Context, map[string]any](binder.Document())),
//	)))
package validkit
