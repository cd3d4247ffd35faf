package requestid

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

const maxIDLength = 128

var validIDRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// New returns a fresh UUIDv4 string.
func New() string {
	return uuid.New().String()
}

// Valid reports whether id is acceptable as a caller-supplied request ID.
func Valid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}

// Ensure returns ctx carrying a request ID. An ID already stored in ctx is kept
// when valid; otherwise a new one is generated.
func Ensure(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id := FromContext(ctx); Valid(id) {
		return ctx, id
	}
	id := New()
	return WithContext(ctx, id), id
}
