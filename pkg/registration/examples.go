package registration

// Example is a named demonstration payload.
type Example struct {
	Title   string
	Payload string
}

// Examples returns the demonstration payloads: one valid record, one employed
// user outside the working-age range and one name containing digits.
func Examples() []Example {
	return []Example{
		{
			Title: "VALID JSON",
			Payload: `{
    "name": "John Doe",
    "age": 30,
    "email": "john.doe@example.com",
    "isEmployed": true,
    "address": {
        "city": "New York",
        "street": "5th Avenue",
        "houseNumber": 123
    }
}`,
		},
		{
			Title: "INVALID JSON (age too high for employment)",
			Payload: `{
    "name": "John Doe",
    "age": 70,
    "email": "john.doe@example.com",
    "isEmployed": true,
    "address": {
        "city": "New York",
        "street": "5th Avenue",
        "houseNumber": 123
    }
}`,
		},
		{
			Title: "INVALID JSON (name with digits)",
			Payload: `{
    "name": "John123",
    "age": 25,
    "email": "john.doe@example.com",
    "isEmployed": false,
    "address": {
        "city": "NY",
        "street": "5th Avenue",
        "houseNumber": 123
    }
}`,
		},
	}
}
