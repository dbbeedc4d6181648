// Package language resolves the per-request display language. The
// preference is an explicit value threaded into read paths, never a
// process-wide setting.
package language

import "net/http"

const (
	English = "en"
	Arabic  = "ar"

	// CookieName is where the preference persists between requests.
	CookieName = "lang"

	// Default is used when no preference is present.
	Default = English
)

// Valid reports whether the value is a supported language code.
func Valid(lang string) bool {
	return lang == English || lang == Arabic
}

// FromRequest resolves the display language for a request: an explicit
// ?lang= query parameter wins, then the preference cookie, then the
// default. Unknown values fall back to the default.
func FromRequest(r *http.Request) string {
	if q := r.URL.Query().Get("lang"); Valid(q) {
		return q
	}
	if c, err := r.Cookie(CookieName); err == nil && Valid(c.Value) {
		return c.Value
	}
	return Default
}
