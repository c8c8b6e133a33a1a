package i18n

import "net/http"

// LangExtractor returns the language preferences found in a request, most
// specific first.
type LangExtractor func(r *http.Request) []string

// DefaultLangExtractor reads the "lang" query parameter, the "lang" cookie
// and the Accept-Language header, in that order.
func DefaultLangExtractor() LangExtractor {
	return func(r *http.Request) []string {
		var prefs []string
		if v := r.URL.Query().Get("lang"); v != "" {
			prefs = append(prefs, v)
		}
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			prefs = append(prefs, c.Value)
		}
		if v := r.Header.Get("Accept-Language"); v != "" {
			prefs = append(prefs, v)
		}
		return prefs
	}
}

// Middleware negotiates the request language against t and stores it in
// the request context.
func Middleware(t *Translator, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := t.Match(extr(r)...)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
