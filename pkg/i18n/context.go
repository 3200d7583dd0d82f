package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the request language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	if locale, _ := ctx.Value(localeContextKey{}).(string); locale != "" {
		return locale
	}
	return DefaultLanguage
}
