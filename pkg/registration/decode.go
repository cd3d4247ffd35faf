package registration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultMaxInputSize is the largest accepted input (1 MiB).
const DefaultMaxInputSize = 1 << 20

var (
	errEmptyInput    = errors.New("empty input")
	errTrailingData  = errors.New("unexpected data after top-level object")
	errInputTooLarge = errors.New("input too large")
)

// legacyKeys maps the snake_case wire names used by older clients to their
// canonical names. Applied only when the canonical key is absent.
var legacyKeys = map[string]string{
	"is_employed":  FieldIsEmployed,
	"house_number": FieldHouseNumber,
}

// decode parses input into a Record. Text is kept exactly as decoded so the
// canonical output echoes the input. Failures are *ParseError.
func decode(input []byte, format Format, maxSize int64) (Record, error) {
	if format == "" {
		format = FormatJSON
	}
	if maxSize > 0 && int64(len(input)) > maxSize {
		return nil, &ParseError{Format: format, Err: fmt.Errorf("%w (max %d bytes)", errInputTooLarge, maxSize)}
	}
	if len(bytes.TrimSpace(input)) == 0 {
		return nil, &ParseError{Format: format, Err: errEmptyInput}
	}

	var (
		doc any
		err error
	)
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(input)
	case FormatYAML:
		doc, err = decodeYAML(input)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &ParseError{Format: format, Err: fmt.Errorf("expected an object at top level, got %s", kindOf(doc))}
	}

	return Record(obj), nil
}

func decodeJSON(input []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyInput
		}
		return nil, err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return doc, nil
}

func decodeYAML(input []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errEmptyInput
	}
	return doc, nil
}

// withLegacyKeys copies legacy snake_case keys to their canonical names in rec
// and in its address record.
func withLegacyKeys(rec Record) Record {
	renameLegacy(rec)
	if addr, ok := rec[FieldAddress].(map[string]any); ok {
		renameLegacy(addr)
	}
	return rec
}

func renameLegacy(m map[string]any) {
	for legacy, canonical := range legacyKeys {
		if _, ok := m[canonical]; ok {
			continue
		}
		if v, ok := m[legacy]; ok {
			m[canonical] = v
		}
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int, int64, uint64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
