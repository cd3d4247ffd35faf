package registration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrymomot/regcheck/pkg/validator"
)

// User is a validated registration record. It owns its Address by value.
type User struct {
	name       string
	age        int
	email      string
	isEmployed bool
	address    Address
}

// NewUser validates rec in two phases. First each field is checked on its own
// in the order name, age, email, isEmployed, address, stopping at the first
// failure. Only when all of them pass is the employment/age relation checked.
func NewUser(rec Record) (User, error) {
	u, err := userFields(rec)
	if err != nil {
		return User{}, err
	}
	if err := u.checkEmployment(); err != nil {
		return User{}, err
	}
	return u, nil
}

func userFields(rec Record) (User, error) {
	name, err := rec.Text(FieldName)
	if err != nil {
		return User{}, err
	}
	if err := check(
		validator.MinLen(FieldName, name, minNameLen),
		validator.LettersAndSpaces(FieldName, name),
	); err != nil {
		return User{}, err
	}

	age, err := rec.Int(FieldAge)
	if err != nil {
		return User{}, err
	}
	if err := check(validator.Between(FieldAge, age, minAge, maxAge)); err != nil {
		return User{}, err
	}

	email, err := rec.Text(FieldEmail)
	if err != nil {
		return User{}, err
	}
	if err := check(validator.ValidEmail(FieldEmail, email)); err != nil {
		return User{}, err
	}

	isEmployed, err := rec.Bool(FieldIsEmployed)
	if err != nil {
		return User{}, err
	}

	addrRec, err := rec.Object(FieldAddress)
	if err != nil {
		return User{}, err
	}
	address, err := NewAddress(addrRec)
	if err != nil {
		return User{}, &FieldError{Field: FieldAddress, Err: err}
	}

	return User{
		name:       name,
		age:        age,
		email:      email,
		isEmployed: isEmployed,
		address:    address,
	}, nil
}

func (u User) checkEmployment() error {
	err := validator.First(validator.Check(FieldAge, employmentAgeMessage, func() bool {
		return !u.isEmployed || (u.age >= minEmployedAge && u.age <= maxEmployedAge)
	}))

	var verr validator.ValidationError
	if errors.As(err, &verr) {
		return &CrossFieldError{
			Fields:  []string{FieldIsEmployed, verr.Field},
			Message: verr.Message,
		}
	}
	return err
}

// Name returns the validated name.
func (u User) Name() string { return u.name }

// Age returns the age in years.
func (u User) Age() int { return u.age }

// Email returns the address exactly as submitted.
func (u User) Email() string { return u.email }

// IsEmployed reports the employment flag.
func (u User) IsEmployed() bool { return u.isEmployed }

// Address returns the validated postal address.
func (u User) Address() Address { return u.address }

type userJSON struct {
	Name       string      `json:"name"`
	Age        int         `json:"age"`
	Email      string      `json:"email"`
	IsEmployed bool        `json:"isEmployed"`
	Address    addressJSON `json:"address"`
}

func (u User) view() userJSON {
	return userJSON{
		Name:       u.name,
		Age:        u.age,
		Email:      u.email,
		IsEmployed: u.isEmployed,
		Address:    u.address.view(),
	}
}

const canonicalIndent = "    "

// Canonical returns the pretty-printed canonical serialization: keys in
// declaration order, four-space indentation, no HTML escaping and no
// trailing newline.
func (u User) Canonical() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", canonicalIndent)
	if err := enc.Encode(u.view()); err != nil {
		return "", fmt.Errorf("encode user: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
