package validator

import "errors"

// ErrValidationFailed matches every ValidationError via errors.Is.
var ErrValidationFailed = errors.New("validation failed")
