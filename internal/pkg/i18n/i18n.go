// Package i18n resolves translatable record names stored as JSONB maps keyed
// by locale codes such as "en_US" or "id_ID".
package i18n

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Translations maps a locale code to a translated value.
type Translations map[string]string

type ctxKey struct{}

// ParseTag parses both "en_US" and "en-US" forms.
func ParseTag(code string) (language.Tag, bool) {
	code = strings.TrimSpace(strings.ReplaceAll(code, "_", "-"))
	if code == "" {
		return language.Und, false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// WithLanguage stores the request language on the context.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, ctxKey{}, tag)
}

// FromContext returns the request language, or fallback when none is set.
func FromContext(ctx context.Context, fallback language.Tag) language.Tag {
	if tag, ok := ctx.Value(ctxKey{}).(language.Tag); ok {
		return tag
	}
	return fallback
}

// FromRequest picks the language from the lang query param, then Accept-Language.
func FromRequest(r *http.Request, fallback language.Tag) language.Tag {
	if tag, ok := ParseTag(r.URL.Query().Get("lang")); ok {
		return tag
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return tags[0]
		}
	}
	return fallback
}

// Resolve returns the value best matching tag. When nothing matches tag or
// fallback, the value of the alphabetically first locale is returned.
func (t Translations) Resolve(tag, fallback language.Tag) string {
	if len(t) == 0 {
		return ""
	}

	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	supported := make([]language.Tag, 0, len(codes))
	index := make([]string, 0, len(codes))
	for _, code := range codes {
		if parsed, ok := ParseTag(code); ok {
			supported = append(supported, parsed)
			index = append(index, code)
		}
	}

	if len(supported) > 0 {
		matcher := language.NewMatcher(supported)
		for _, want := range []language.Tag{tag, fallback} {
			if want == language.Und {
				continue
			}
			_, i, confidence := matcher.Match(want)
			if confidence != language.No {
				return t[index[i]]
			}
		}
	}

	return t[codes[0]]
}
