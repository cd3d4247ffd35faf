package validator

import (
	"strings"
	"unicode"
)

// LettersAndSpaces validates that value consists of Unicode letters, with
// ASCII spaces allowed anywhere. A value that is empty once spaces are removed
// fails.
func LettersAndSpaces(field, value string) Rule {
	return Rule{
		Check: func() bool {
			stripped := strings.ReplaceAll(value, " ", "")
			if stripped == "" {
				return false
			}
			for _, r := range stripped {
				if !unicode.IsLetter(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters and spaces",
		},
	}
}

// Check wraps an arbitrary predicate into a Rule.
func Check(field, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
