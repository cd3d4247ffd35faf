// Package registration validates user-registration records and renders them in
// a canonical form.
//
// A record holds a name, age, email, employment flag and a nested address.
// Validation runs in two phases:
//
//  1. Field checks, in the fixed order name, age, email, isEmployed, address
//     (and inside the address: city, street, houseNumber). The first failing
//     check stops validation and is returned as a *FieldError.
//  2. The cross-field rule: an employed user must be between 18 and 65 years
//     old inclusive. It runs only when every field passed and fails with a
//     *CrossFieldError.
//
// Input that cannot be decoded as a JSON (or YAML) object yields a *ParseError.
// Only the first problem is ever reported; errors are never aggregated.
//
// # Rules
//
//	name         string, at least 2 characters, letters and spaces only
//	age          integer, 0..120
//	email        bare address with a dotted domain
//	isEmployed   boolean
//	address      object
//	  city         string, at least 2 characters
//	  street       string, at least 3 characters
//	  houseNumber  integer, greater than 0
//
// Lengths count characters, not bytes. Strings are NFC-normalized before they
// are checked. Unknown keys are ignored. The snake_case keys is_employed and
// house_number are accepted in place of their canonical names unless disabled
// with WithLegacyKeys(false).
//
// # Usage
//
//	out := registration.Process(input)
//	// either the canonical JSON document, or
//	// "Validation Error: name: must contain only letters and spaces"
//
// For typed access use Validate, which returns a User or the first error:
//
//	user, err := registration.Validate([]byte(input))
//	var ferr *registration.FieldError
//	if errors.As(err, &ferr) {
//	    fmt.Println(ferr.Path(), ferr.Reason())
//	}
//
// # Canonical form
//
// User.Canonical renders the keys name, age, email, isEmployed and address
// (city, street, houseNumber) in that order, indented with four spaces.
// Numbers and booleans keep their JSON types. Validating the canonical form
// again yields the same output.
package registration
