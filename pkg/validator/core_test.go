package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regcheck/pkg/validator"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("prefixes message with field", func(t *testing.T) {
		err := validator.ValidationError{Field: "email", Message: "is required"}
		assert.Equal(t, "email: is required", err.Error())
	})

	t.Run("returns bare message without field", func(t *testing.T) {
		err := validator.ValidationError{Message: "is required"}
		assert.Equal(t, "is required", err.Error())
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.First(
			validator.MinLen("city", "NY", 2),
			validator.Positive("houseNumber", 1),
		)
		assert.NoError(t, err)
	})

	t.Run("returns first failure in declaration order", func(t *testing.T) {
		err := validator.First(
			validator.MinLen("name", "J", 2),
			validator.Between("age", -1, 0, 120),
		)
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
		assert.Equal(t, "must be at least 2 characters long", verr.Message)
	})

	t.Run("does not evaluate rules after a failure", func(t *testing.T) {
		called := false
		err := validator.First(
			validator.Check("a", "failed", func() bool { return false }),
			validator.Check("b", "failed", func() bool {
				called = true
				return true
			}),
		)
		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("returns nil for no rules", func(t *testing.T) {
		assert.NoError(t, validator.First())
	})
}

func TestErrValidationFailed(t *testing.T) {
	t.Run("matches rule failures", func(t *testing.T) {
		err := validator.First(validator.MinLen("name", "", 2))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("matches wrapped failures", func(t *testing.T) {
		err := fmt.Errorf("registration: %w", validator.First(validator.MinLen("name", "", 2)))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("does not match other errors", func(t *testing.T) {
		assert.False(t, errors.Is(errors.New("boom"), validator.ErrValidationFailed))
	})
}
