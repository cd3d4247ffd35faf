package sanitizer

import "strings"

// SingleLine collapses every run of whitespace, line breaks included, into a
// single space and trims both ends.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
