package registration

import "github.com/dmitrymomot/regcheck/pkg/validator"

// Address is a validated postal address. The zero value is not valid; obtain
// one from NewAddress.
type Address struct {
	city        string
	street      string
	houseNumber int
}

// NewAddress validates rec and returns the Address it describes. Fields are
// checked in the order city, street, houseNumber and the first failure is
// returned as a *FieldError.
func NewAddress(rec Record) (Address, error) {
	city, err := rec.Text(FieldCity)
	if err != nil {
		return Address{}, err
	}
	if err := check(validator.MinLen(FieldCity, city, minCityLen)); err != nil {
		return Address{}, err
	}

	street, err := rec.Text(FieldStreet)
	if err != nil {
		return Address{}, err
	}
	if err := check(validator.MinLen(FieldStreet, street, minStreetLen)); err != nil {
		return Address{}, err
	}

	houseNumber, err := rec.Int(FieldHouseNumber)
	if err != nil {
		return Address{}, err
	}
	if err := check(validator.Positive(FieldHouseNumber, houseNumber)); err != nil {
		return Address{}, err
	}

	return Address{city: city, street: street, houseNumber: houseNumber}, nil
}

// City returns the city name.
func (a Address) City() string { return a.city }

// Street returns the street name.
func (a Address) Street() string { return a.street }

// HouseNumber returns the house number, always greater than zero.
func (a Address) HouseNumber() int { return a.houseNumber }

type addressJSON struct {
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber int    `json:"houseNumber"`
}

func (a Address) view() addressJSON {
	return addressJSON{City: a.city, Street: a.street, HouseNumber: a.houseNumber}
}
