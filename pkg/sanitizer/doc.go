// Package sanitizer inspects and tidies text around validation.
//
// IsNFC checks Unicode normalization using golang.org/x/text without changing
// the text, and EveryString applies such a check to every string leaf of a
// decoded JSON or YAML document:
//
//	ok := sanitizer.EveryString(doc, sanitizer.IsNFC)
//
// SingleLine flattens multi-line text such as wrapped decoder errors.
package sanitizer
