package registration

import (
	"errors"

	"github.com/dmitrymomot/regcheck/pkg/validator"
)

// Field names as they appear in the canonical form.
const (
	FieldName        = "name"
	FieldAge         = "age"
	FieldEmail       = "email"
	FieldIsEmployed  = "isEmployed"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldStreet      = "street"
	FieldHouseNumber = "houseNumber"
)

const (
	minNameLen   = 2
	minAge       = 0
	maxAge       = 120
	minCityLen   = 2
	minStreetLen = 3

	minEmployedAge = 18
	maxEmployedAge = 65

	employmentAgeMessage = "If employed, age must be between 18 and 65"
)

// check runs rules with first-failure semantics and converts the failure to a
// *FieldError.
func check(rules ...validator.Rule) error {
	err := validator.First(rules...)
	if !errors.Is(err, validator.ErrValidationFailed) {
		return err
	}

	var verr validator.ValidationError
	if errors.As(err, &verr) {
		return &FieldError{Field: verr.Field, Message: verr.Message}
	}
	return err
}
