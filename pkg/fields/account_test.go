package fields_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderguard/pkg/fields"
)

func TestAccountName(t *testing.T) {
	t.Run("keeps allowed characters", func(t *testing.T) {
		res := fields.AccountName("Jean Paul Account")
		require.True(t, res.Success)
		assert.Equal(t, "Jean Paul Account", res.Sanitized)
		assert.Empty(t, res.Issues)
	})

	t.Run("strips disallowed characters", func(t *testing.T) {
		res := fields.AccountName("Main / Billing!")
		require.True(t, res.Success)
		assert.Equal(t, "Main Billing", res.Sanitized)
		assert.Contains(t, res.Issues, "invalid characters removed")
	})

	t.Run("single character fails", func(t *testing.T) {
		res := fields.AccountName("X")
		assert.False(t, res.Success)
	})

	t.Run("truncates above the cap", func(t *testing.T) {
		res := fields.AccountName(strings.Repeat("b", 200))
		require.True(t, res.Success)
		assert.Equal(t, fields.MaxAccountNameLen, res.SanitizedLength)
	})
}

func TestAccountNumber(t *testing.T) {
	t.Run("keeps alphanumeric identifier", func(t *testing.T) {
		res := fields.AccountNumber("ACC12345")
		require.True(t, res.Success)
		assert.Equal(t, "ACC12345", res.Sanitized)
		assert.Empty(t, res.Issues)
		assert.Empty(t, res.Hints)
	})

	t.Run("flags weak sequences without blocking", func(t *testing.T) {
		res := fields.AccountNumber("ACC123456")
		require.True(t, res.Success)
		assert.Contains(t, res.Hints, "weak account number pattern: 123456")
	})

	t.Run("flags several weak sequences", func(t *testing.T) {
		res := fields.AccountNumber("test-admin-1")
		require.True(t, res.Success)
		assert.Contains(t, res.Hints, "weak account number pattern: test")
		assert.Contains(t, res.Hints, "weak account number pattern: admin")
	})

	t.Run("requires at least one alphanumeric", func(t *testing.T) {
		res := fields.AccountNumber("@.@")
		assert.False(t, res.Success)
		assert.Contains(t, res.Issues, "invalid account number: no alphanumeric characters")
	})

	t.Run("comment-like input collapses to nothing", func(t *testing.T) {
		// The SQL comment filter consumes "---" before any predicate runs.
		res := fields.AccountNumber("---")
		assert.False(t, res.Success)
		assert.Contains(t, res.Issues, "suspicious SQL content removed")
		assert.Contains(t, res.Issues, "value too short after sanitization")
	})

	t.Run("strips spaces as disallowed", func(t *testing.T) {
		res := fields.AccountNumber("AC C1")
		require.True(t, res.Success)
		assert.Equal(t, "ACC1", res.Sanitized)
	})
}
