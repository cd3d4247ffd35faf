package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates a bare address: non-empty local part, "@", and a domain
// of at least two dot-separated labels. Display-name forms such as
// "John <john@example.com>" are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value || addr.Name != "" {
				return false
			}

			at := strings.LastIndex(value, "@")
			if at <= 0 {
				return false
			}

			return validDomain(value[at+1:])
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

func validDomain(domain string) bool {
	if !strings.Contains(domain, ".") || len(domain) > 253 {
		return false
	}

	for label := range strings.SplitSeq(domain, ".") {
		if !validLabel(label) {
			return false
		}
	}
	return true
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
