package geocoding

import "strings"

// Normalize collapses runs of whitespace so equivalent addresses share a cache key.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
