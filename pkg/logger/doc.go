// Package logger builds slog loggers and names the attributes used across the module.
//
// New creates a *slog.Logger from functional options (format, level, output, static
// attributes) and wraps its handler so that every record logged with a context also carries the
// attributes stored there by ContextWithAttrs, plus any found by the configured extractors:
//
//	log := logger.New(
//		logger.WithConfig(cfg), // LOG_LEVEL, LOG_FORMAT, LOG_SERVICE
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.DebugContext(ctx, "validation failed",
//		logger.ValidationPath("tags[1]"),
//		logger.ValidationCode("validation.min_length"),
//	)
//
// Attribute helpers such as Error return an empty slog.Attr for nil input, which slog omits,
// so they can be passed without a nil check.
package logger
