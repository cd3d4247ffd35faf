package sanitizer

import "golang.org/x/text/unicode/norm"

// IsNFC reports whether s is already in Unicode Normalization Form C. Text
// that is not, such as "e" followed by U+0301, can look valid on screen while
// containing combining marks that letter checks reject.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}
