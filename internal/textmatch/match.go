// Package textmatch provides case-insensitive keyword containment over text fields.
package textmatch

import "strings"

// Matches reports whether keyword occurs in the given fields.
// Fields are joined with a single space and compared lower-cased, so a
// keyword may span two adjacent fields. An empty keyword matches everything.
func Matches(fields []string, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	return strings.Contains(Haystack(fields), kw)
}

// Haystack returns the lower-cased, space-joined text that Matches searches.
func Haystack(fields []string) string {
	return strings.ToLower(strings.Join(fields, " "))
}
