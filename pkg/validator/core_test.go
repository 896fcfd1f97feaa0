package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validx/pkg/validator"
)

func TestApply(t *testing.T) {
	pass := validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: "ok", Message: "never"},
	}
	fail := func(field, msg string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: msg},
		}
	}

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects all failures in order", func(t *testing.T) {
		err := validator.Apply(fail("a", "first"), pass, fail("b", "second"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "a", verrs[0].Field)
		assert.Equal(t, "b", verrs[1].Field)
	})

	t.Run("error message lists fields", func(t *testing.T) {
		err := validator.Apply(fail("email", "must be a valid email address"))
		assert.EqualError(t, err, "validation failed: email: must be a valid email address")
	})
}

func TestValidationErrorsHelpers(t *testing.T) {
	verrs := validator.ValidationErrors{
		{Field: "email", Message: "invalid format"},
		{Field: "email", Message: "too long"},
		{Field: "phone", Message: "invalid"},
	}

	t.Run("has", func(t *testing.T) {
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("name"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, []string{"invalid format", "too long"}, verrs.Get("email"))
		assert.Nil(t, verrs.Get("name"))
	})

	t.Run("fields deduplicated", func(t *testing.T) {
		assert.Equal(t, []string{"email", "phone"}, verrs.Fields())
	})

	t.Run("add", func(t *testing.T) {
		var ve validator.ValidationErrors
		assert.True(t, ve.IsEmpty())

		ve.Add(validator.ValidationError{Field: "x", Message: "y"})
		assert.False(t, ve.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		err := validator.Apply(validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "a", Message: "bad"},
		})
		wrapped := fmt.Errorf("saving user: %w", err)

		assert.True(t, validator.IsValidationError(wrapped))
		require.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})
}
