package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderguard/pkg/fields"
)

func TestPhone(t *testing.T) {
	t.Run("strips spaces and keeps plus", func(t *testing.T) {
		res := fields.Phone("+253 77 86 00 64")
		require.True(t, res.Success)
		assert.Equal(t, "+25377860064", res.Sanitized)
		assert.Empty(t, res.Issues)
	})

	t.Run("strips parentheses", func(t *testing.T) {
		res := fields.Phone("(555) 123-4567")
		require.True(t, res.Success)
		assert.Equal(t, "555123-4567", res.Sanitized)
	})

	t.Run("rejects too few digits", func(t *testing.T) {
		res := fields.Phone("123456")
		assert.False(t, res.Success)
		assert.Contains(t, res.Issues, "invalid phone number length")
	})

	t.Run("rejects too many digits", func(t *testing.T) {
		res := fields.Phone("1234567890123456")
		assert.False(t, res.Success)
	})

	t.Run("accepts eight-digit local format", func(t *testing.T) {
		res := fields.Phone("77 86 00 64")
		require.True(t, res.Success)
		assert.Equal(t, "77860064", res.Sanitized)
	})

	t.Run("strips letters with an issue", func(t *testing.T) {
		res := fields.Phone("555-CALL-NOW-1234")
		assert.Contains(t, res.Issues, "invalid characters removed")
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		first := fields.Phone("+1 (555) 123-4567")
		require.True(t, first.Success)
		second := fields.Phone(first.Sanitized)
		require.True(t, second.Success)
		assert.Equal(t, first.Sanitized, second.Sanitized)
	})
}
