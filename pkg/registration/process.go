package registration

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/regcheck/pkg/logger"
	"github.com/dmitrymomot/regcheck/pkg/requestid"
	"github.com/dmitrymomot/regcheck/pkg/sanitizer"
)

// Option configures a Processor.
type Option func(*Processor)

// WithFormat sets the input format. Defaults to FormatJSON.
func WithFormat(f Format) Option {
	return func(p *Processor) {
		if f != "" {
			p.format = f
		}
	}
}

// WithMaxInputSize limits the input size in bytes. Non-positive values are ignored.
func WithMaxInputSize(n int64) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxInputSize = n
		}
	}
}

// WithLegacyKeys toggles acceptance of the snake_case keys is_employed and
// house_number. Enabled by default.
func WithLegacyKeys(enabled bool) Option {
	return func(p *Processor) {
		p.legacyKeys = enabled
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// Processor validates registration input. It holds no per-call state and is
// safe for concurrent use.
type Processor struct {
	format       Format
	maxInputSize int64
	legacyKeys   bool
	logger       *slog.Logger
}

// NewProcessor creates a Processor. Without options it reads JSON up to
// DefaultMaxInputSize, accepts legacy keys and does not log.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		format:       FormatJSON,
		maxInputSize: DefaultMaxInputSize,
		legacyKeys:   true,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("registration"))
	return p
}

// Validate decodes and validates input, returning the first error found.
func (p *Processor) Validate(ctx context.Context, input []byte) (User, error) {
	ctx, _ = requestid.Ensure(ctx)
	start := time.Now()

	p.logger.DebugContext(ctx, "validating registration",
		slog.String("format", string(p.format)),
		logger.Bytes(len(input)),
	)

	user, rec, err := p.validate(input)
	if err != nil {
		attrs := []any{
			logger.Outcome(outcome(err)),
			logger.Field(failedField(err)),
			logger.Error(err),
			logger.Duration(time.Since(start)),
		}
		// Decomposed accents fail the letters-only name check; flag them so a
		// rejection of visually valid text can be explained.
		if rec != nil && !sanitizer.EveryString(map[string]any(rec), sanitizer.IsNFC) {
			attrs = append(attrs, slog.Bool("unnormalized_text", true))
		}
		p.logger.InfoContext(ctx, "registration rejected", attrs...)
		return User{}, err
	}

	p.logger.InfoContext(ctx, "registration accepted",
		logger.Outcome("valid"),
		logger.Duration(time.Since(start)),
	)
	return user, nil
}

func (p *Processor) validate(input []byte) (User, Record, error) {
	rec, err := decode(input, p.format, p.maxInputSize)
	if err != nil {
		return User{}, nil, err
	}
	if p.legacyKeys {
		rec = withLegacyKeys(rec)
	}
	user, err := NewUser(rec)
	return user, rec, err
}

// Process validates input and returns either the canonical serialization of
// the record or a single line "Validation Error: <message>". It never panics.
func (p *Processor) Process(ctx context.Context, input string) (out string) {
	ctx, _ = requestid.Ensure(ctx)

	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "validation panicked", slog.Any("panic", r))
			out = FormatError(ErrInternal)
		}
	}()

	user, err := p.Validate(ctx, []byte(input))
	if err != nil {
		return FormatError(err)
	}

	canonical, err := user.Canonical()
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode registration", logger.Error(err))
		return FormatError(ErrInternal)
	}
	return canonical
}

// Validate decodes and validates input with a default Processor configured by opts.
func Validate(input []byte, opts ...Option) (User, error) {
	return NewProcessor(opts...).Validate(context.Background(), input)
}

// Process is the string-in, string-out entry point; see Processor.Process.
func Process(input string, opts ...Option) string {
	return NewProcessor(opts...).Process(context.Background(), input)
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrCrossField):
		return "cross_field_error"
	case errors.Is(err, ErrField):
		return "field_error"
	default:
		return "error"
	}
}

func failedField(err error) string {
	var ferr *FieldError
	if errors.As(err, &ferr) {
		return ferr.Path()
	}
	return ""
}
