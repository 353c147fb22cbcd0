// Package wire converts between the client's Go values and the backend's
// wire formats: snake_case JSON with ISO-8601 dates, and form bodies.
package wire

import (
	"strings"
	"unicode"
)

// SnakeCase converts a Go or camelCase identifier to snake_case.
// Acronyms are kept together ("TripID" -> "trip_id") and a digit-to-upper
// boundary splits ("Base64Data" -> "base64_data").
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CamelCase converts snake_case to lower camelCase: "start_date" -> "startDate".
func CamelCase(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))

	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
