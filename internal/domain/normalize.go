package domain

import "strings"

// NormalizeSemantic prepares a semantic key for storage and comparison:
// trims leading/trailing whitespace and lower-cases. All lookups and
// uniqueness checks operate on the normalized form.
func NormalizeSemantic(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeIcon trims an icon value. Icons are case-sensitive.
func NormalizeIcon(s string) string {
	return strings.TrimSpace(s)
}
