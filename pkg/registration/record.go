package registration

import (
	"encoding/json"
	"math"
	"strconv"
)

// Record is a decoded, not yet validated object: string keys mapped to
// strings, numbers, booleans, nested records or lists.
type Record map[string]any

const (
	msgRequired = "field is required"
	msgString   = "must be a string"
	msgInteger  = "must be an integer"
	msgBoolean  = "must be a boolean"
	msgObject   = "must be an object"
)

func (r Record) get(field string) (any, error) {
	v, ok := r[field]
	if !ok {
		return nil, &FieldError{Field: field, Message: msgRequired}
	}
	return v, nil
}

// Text returns field as a string.
func (r Record) Text(field string) (string, error) {
	v, err := r.get(field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: field, Message: msgString}
	}
	return s, nil
}

// Int returns field as an integer. Integral floating-point values such as 30.0
// are accepted; fractions, strings and booleans are not.
func (r Record) Int(field string) (int, error) {
	v, err := r.get(field)
	if err != nil {
		return 0, err
	}
	n, ok := toInt(v)
	if !ok {
		return 0, &FieldError{Field: field, Message: msgInteger}
	}
	return n, nil
}

// Bool returns field as a boolean.
func (r Record) Bool(field string) (bool, error) {
	v, err := r.get(field)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, &FieldError{Field: field, Message: msgBoolean}
	}
	return b, nil
}

// Object returns field as a nested Record.
func (r Record) Object(field string) (Record, error) {
	v, err := r.get(field)
	if err != nil {
		return nil, err
	}
	switch obj := v.(type) {
	case Record:
		return obj, nil
	case map[string]any:
		return Record(obj), nil
	default:
		return nil, &FieldError{Field: field, Message: msgObject}
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return intFromInt64(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return intFromFloat(f)
	case int:
		return n, true
	case int64:
		return intFromInt64(n)
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return intFromInt64(int64(n))
	case float64:
		return intFromFloat(n)
	default:
		return 0, false
	}
}

func intFromInt64(i int64) (int, bool) {
	if int64(int(i)) != i {
		return 0, false
	}
	return int(i), true
}

func intFromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return intFromInt64(int64(f))
}
