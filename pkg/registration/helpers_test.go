package registration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// validDoc returns a fresh document that passes every rule.
func validDoc() map[string]any {
	return map[string]any{
		"name":       "John Doe",
		"age":        30,
		"email":      "john.doe@example.com",
		"isEmployed": true,
		"address": map[string]any{
			"city":        "New York",
			"street":      "5th Avenue",
			"houseNumber": 123,
		},
	}
}

// payload encodes validDoc after applying mutate.
func payload(t *testing.T, mutate func(doc map[string]any)) string {
	t.Helper()
	doc := validDoc()
	if mutate != nil {
		mutate(doc)
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func address(doc map[string]any) map[string]any {
	return doc["address"].(map[string]any)
}
