package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/i18n"
	"golang.org/x/text/language"
)

// Language stores the request language (lang query param or Accept-Language)
// on the context for translated record names.
func Language(fallback language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := i18n.FromRequest(r, fallback)
			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), tag)))
		})
	}
}
