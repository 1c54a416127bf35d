package fields_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderguard/pkg/fields"
)

func TestFee(t *testing.T) {
	t.Run("parses numeric string", func(t *testing.T) {
		res := fields.Fee("70000")
		require.True(t, res.Success)
		assert.Equal(t, int64(70000), res.Amount)
	})

	t.Run("accepts float and floors it", func(t *testing.T) {
		res := fields.Fee(2500.75)
		require.True(t, res.Success)
		assert.Equal(t, int64(2500), res.Amount)
	})

	t.Run("accepts json.Number", func(t *testing.T) {
		res := fields.Fee(json.Number("125"))
		require.True(t, res.Success)
		assert.Equal(t, int64(125), res.Amount)
	})

	t.Run("rejects zero", func(t *testing.T) {
		res := fields.Fee(0)
		assert.False(t, res.Success)
		assert.Contains(t, res.Issues, "fee out of range")
	})

	t.Run("rejects negative", func(t *testing.T) {
		res := fields.Fee(-5)
		assert.False(t, res.Success)
	})

	t.Run("rejects above the cap", func(t *testing.T) {
		res := fields.Fee(1_000_001)
		assert.False(t, res.Success)
	})

	t.Run("accepts the cap exactly", func(t *testing.T) {
		res := fields.Fee(1_000_000)
		require.True(t, res.Success)
		assert.Equal(t, int64(1_000_000), res.Amount)
	})

	t.Run("rejects non-numeric string", func(t *testing.T) {
		res := fields.Fee("seventy thousand")
		assert.False(t, res.Success)
		assert.Contains(t, res.Issues, "invalid fee value")
	})

	t.Run("rejects nil and odd types", func(t *testing.T) {
		assert.False(t, fields.Fee(nil).Success)
		assert.False(t, fields.Fee([]string{"1"}).Success)
		assert.False(t, fields.Fee("").Success)
	})
}
