package fields_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderguard/pkg/fields"
)

func TestPersonName(t *testing.T) {
	t.Run("title-cases tokens", func(t *testing.T) {
		res := fields.PersonName("jean-paul")
		require.True(t, res.Success)
		assert.Equal(t, "Jean-Paul", res.Sanitized)
		assert.Empty(t, res.Issues)
	})

	t.Run("keeps apostrophes", func(t *testing.T) {
		res := fields.PersonName("o'brien")
		require.True(t, res.Success)
		assert.Equal(t, "O'brien", res.Sanitized)
	})

	t.Run("keeps accented letters", func(t *testing.T) {
		res := fields.PersonName("rené müller")
		require.True(t, res.Success)
		assert.Equal(t, "René Müller", res.Sanitized)
	})

	t.Run("strips disallowed characters with an issue", func(t *testing.T) {
		res := fields.PersonName("Jo#hn$")
		require.True(t, res.Success)
		assert.Equal(t, "John", res.Sanitized)
		assert.Contains(t, res.Issues, "invalid characters removed")
	})

	t.Run("script injection fails after stripping", func(t *testing.T) {
		res := fields.PersonName("<script>alert(1)</script>")
		assert.False(t, res.Success)
		assert.Empty(t, res.Sanitized)
		assert.NotContains(t, res.Sanitized, "<script>")
		assert.Contains(t, res.Issues, "suspicious markup removed")
	})

	t.Run("truncates above the cap", func(t *testing.T) {
		res := fields.PersonName(strings.Repeat("a", 150))
		require.True(t, res.Success)
		assert.Equal(t, fields.MaxNameLen, res.SanitizedLength)
		assert.Equal(t, 150, res.OriginalLength)
		assert.Contains(t, res.Issues, "value truncated to 100 characters")
	})

	t.Run("single character fails the minimum length", func(t *testing.T) {
		res := fields.PersonName("J")
		assert.False(t, res.Success)
		assert.Contains(t, res.Issues, "value too short after sanitization")
	})

	t.Run("flags suspicious words without blocking", func(t *testing.T) {
		res := fields.PersonName("Admin Adminson")
		require.True(t, res.Success)
		assert.Contains(t, res.SuspiciousWords, "admin")
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		first := fields.PersonName("  jean-PAUL   o'brien ")
		require.True(t, first.Success)
		second := fields.PersonName(first.Sanitized)
		require.True(t, second.Success)
		assert.Equal(t, first.Sanitized, second.Sanitized)
		assert.Empty(t, second.Issues)
	})
}
