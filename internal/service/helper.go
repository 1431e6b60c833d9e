package service

import (
	"strings"
)

// DeriveSlug builds a URL slug from a firm name: lower-case, whitespace
// runs collapsed to a single '-', everything outside [a-z0-9-] dropped.
// Identical names always derive the identical slug.
func DeriveSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")

	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeList trims entries and drops the empty ones. Admin forms send
// list fields either as arrays or as comma-separated strings; by the time
// they reach here both shapes are a []string that may carry blanks.
func NormalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
