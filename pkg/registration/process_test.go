package registration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regcheck/pkg/logger"
	"github.com/dmitrymomot/regcheck/pkg/registration"
	"github.com/dmitrymomot/regcheck/pkg/requestid"
)

func TestExamples(t *testing.T) {
	examples := registration.Examples()
	require.Len(t, examples, 3)

	want := []string{
		examples[0].Payload,
		"Validation Error: If employed, age must be between 18 and 65",
		"Validation Error: name: must contain only letters and spaces",
	}

	for i, ex := range examples {
		t.Run(ex.Title, func(t *testing.T) {
			assert.Equal(t, want[i], registration.Process(ex.Payload))
		})
	}
}

func TestProcess_CanonicalOutput(t *testing.T) {
	out := registration.Process(payload(t, nil))

	want := `{
    "name": "John Doe",
    "age": 30,
    "email": "john.doe@example.com",
    "isEmployed": true,
    "address": {
        "city": "New York",
        "street": "5th Avenue",
        "houseNumber": 123
    }
}`
	assert.Equal(t, want, out)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestProcess_Idempotent(t *testing.T) {
	inputs := []string{
		payload(t, nil),
		payload(t, func(doc map[string]any) {
			doc["isEmployed"] = false
			doc["age"] = 0
			address(doc)["city"] = "NY"
		}),
		validYAML,
	}

	for _, input := range inputs {
		format := registration.FormatJSON
		if input == validYAML {
			format = registration.FormatYAML
		}

		first := registration.Process(input, registration.WithFormat(format))
		require.False(t, strings.HasPrefix(first, "Validation Error"), first)

		second := registration.Process(first)
		assert.Equal(t, first, second)
	}
}

func TestProcess_ReparsesToInput(t *testing.T) {
	input := payload(t, func(doc map[string]any) {
		doc["name"] = "Mary Ann"
		doc["email"] = "mary.ann@example.org"
		doc["isEmployed"] = false
		doc["age"] = 99
	})

	out := registration.Process(input)

	var got, want map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NoError(t, json.Unmarshal([]byte(input), &want))
	assert.Equal(t, want, got)
}

func TestProcess_NoHTMLEscaping(t *testing.T) {
	out := registration.Process(payload(t, func(doc map[string]any) {
		address(doc)["street"] = "Main & <5th>"
	}))
	assert.Contains(t, out, `"street": "Main & <5th>"`)
}

func TestProcess_ErrorsAreSingleLine(t *testing.T) {
	inputs := []string{
		"{\n\"name\": \n",
		payload(t, func(doc map[string]any) { doc["name"] = "J" }),
		payload(t, func(doc map[string]any) { doc["age"] = 70 }),
	}

	for _, input := range inputs {
		out := registration.Process(input)
		assert.True(t, strings.HasPrefix(out, "Validation Error: "), out)
		assert.NotContains(t, out, "\n")
		assert.NotContains(t, out, "\r")
	}
}

func TestProcess_NestedPath(t *testing.T) {
	out := registration.Process(payload(t, func(doc map[string]any) {
		address(doc)["city"] = "N"
	}))
	assert.Equal(t, "Validation Error: address.city: must be at least 2 characters long", out)
}

func TestProcessor_Concurrent(t *testing.T) {
	p := registration.NewProcessor()
	valid := payload(t, nil)
	invalid := payload(t, func(doc map[string]any) { doc["age"] = 70 })

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				assert.JSONEq(t, valid, p.Process(context.Background(), valid))
				return
			}
			assert.Equal(t,
				"Validation Error: If employed, age must be between 18 and 65",
				p.Process(context.Background(), invalid),
			)
		}()
	}
	wg.Wait()
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return logger.New(
		logger.WithOutput(buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestProcessor_Logging(t *testing.T) {
	t.Run("logs rejection with request id", func(t *testing.T) {
		var buf bytes.Buffer
		p := registration.NewProcessor(registration.WithLogger(newTestLogger(&buf)))

		ctx := requestid.WithContext(context.Background(), "req-123")
		p.Process(ctx, payload(t, func(doc map[string]any) { doc["name"] = "J" }))

		lines := logLines(t, &buf)
		require.Len(t, lines, 2)

		assert.Equal(t, "validating registration", lines[0]["msg"])
		assert.Equal(t, "DEBUG", lines[0]["level"])

		last := lines[1]
		assert.Equal(t, "registration rejected", last["msg"])
		assert.Equal(t, "req-123", last["request_id"])
		assert.Equal(t, "registration", last["component"])
		assert.Equal(t, "field_error", last["outcome"])
		assert.Equal(t, "name", last["field"])
		assert.Equal(t, "name: must be at least 2 characters long", last["error"])
	})

	t.Run("logs acceptance", func(t *testing.T) {
		var buf bytes.Buffer
		p := registration.NewProcessor(registration.WithLogger(newTestLogger(&buf)))

		p.Process(context.Background(), payload(t, nil))

		lines := logLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "registration accepted", lines[1]["msg"])
		assert.Equal(t, "valid", lines[1]["outcome"])
		assert.NotEmpty(t, lines[1]["request_id"], "request id is generated when missing")
	})

	t.Run("labels outcomes", func(t *testing.T) {
		tests := []struct {
			input   string
			outcome string
		}{
			{"{", "parse_error"},
			{payload(t, func(doc map[string]any) { doc["age"] = 70 }), "cross_field_error"},
		}

		for _, tt := range tests {
			var buf bytes.Buffer
			p := registration.NewProcessor(registration.WithLogger(newTestLogger(&buf)))
			p.Process(context.Background(), tt.input)

			lines := logLines(t, &buf)
			require.NotEmpty(t, lines)
			assert.Equal(t, tt.outcome, lines[len(lines)-1]["outcome"])
		}
	})

	t.Run("flags unnormalized text on rejection", func(t *testing.T) {
		var buf bytes.Buffer
		p := registration.NewProcessor(registration.WithLogger(newTestLogger(&buf)))
		out := p.Process(context.Background(), payload(t, func(doc map[string]any) {
			doc["name"] = "Jose\u0301"
		}))
		assert.Equal(t, "Validation Error: name: must contain only letters and spaces", out)

		lines := logLines(t, &buf)
		require.NotEmpty(t, lines)
		assert.Equal(t, true, lines[len(lines)-1]["unnormalized_text"])
	})

	t.Run("omits hint for normalized text", func(t *testing.T) {
		var buf bytes.Buffer
		p := registration.NewProcessor(registration.WithLogger(newTestLogger(&buf)))
		p.Process(context.Background(), payload(t, func(doc map[string]any) { doc["name"] = "J" }))

		lines := logLines(t, &buf)
		require.NotEmpty(t, lines)
		assert.NotContains(t, lines[len(lines)-1], "unnormalized_text")
	})

	t.Run("nil logger ignored", func(t *testing.T) {
		p := registration.NewProcessor(registration.WithLogger(nil))
		assert.JSONEq(t, payload(t, nil), p.Process(context.Background(), payload(t, nil)))
	})
}

func TestErrors(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		_, err := registration.Validate([]byte("{"))
		require.Error(t, err)

		var perr *registration.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, registration.FormatJSON, perr.Format)
		assert.ErrorIs(t, err, registration.ErrParse)
		assert.NotErrorIs(t, err, registration.ErrField)
	})

	t.Run("nested field error", func(t *testing.T) {
		err := &registration.FieldError{
			Field: "address",
			Err:   &registration.FieldError{Field: "city", Message: "must be at least 2 characters long"},
		}
		assert.Equal(t, "address.city", err.Path())
		assert.Equal(t, "must be at least 2 characters long", err.Reason())
		assert.Equal(t, "address.city: must be at least 2 characters long", err.Error())
		assert.ErrorIs(t, err, registration.ErrField)
	})

	t.Run("cross-field error", func(t *testing.T) {
		err := &registration.CrossFieldError{Fields: []string{"a", "b"}, Message: "a and b conflict"}
		assert.Equal(t, "a and b conflict", err.Error())
		assert.ErrorIs(t, err, registration.ErrCrossField)
		assert.False(t, errors.Is(err, registration.ErrField))
	})

	t.Run("format error", func(t *testing.T) {
		assert.Equal(t, "Validation Error: internal error", registration.FormatError(nil))
		assert.Equal(t, "Validation Error: a b c", registration.FormatError(errors.New("a\nb\r\n  c")))
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    registration.Format
		wantErr bool
	}{
		{in: "", want: registration.FormatJSON},
		{in: "json", want: registration.FormatJSON},
		{in: " JSON ", want: registration.FormatJSON},
		{in: "yaml", want: registration.FormatYAML},
		{in: "YML", want: registration.FormatYAML},
		{in: "toml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := registration.ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, registration.ErrUnsupportedFormat)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, registration.FormatYAML, registration.FormatForPath("user.yaml"))
	assert.Equal(t, registration.FormatYAML, registration.FormatForPath("dir/USER.YML"))
	assert.Equal(t, registration.FormatJSON, registration.FormatForPath("user.json"))
	assert.Equal(t, registration.FormatJSON, registration.FormatForPath("-"))
	assert.Equal(t, registration.FormatJSON, registration.FormatForPath(""))

	assert.Equal(t, "JSON", registration.FormatJSON.Label())
	assert.Equal(t, "YAML", registration.FormatYAML.Label())
}
