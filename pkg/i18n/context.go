package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the negotiated language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored in ctx or an empty string.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}
