package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses runs of spaces",
			input:    "a    b     c",
			expected: "a b c",
		},
		{
			name:     "converts tabs and newlines",
			input:    "a\t\tb\n\nc",
			expected: "a b c",
		},
		{
			name:     "converts non-breaking spaces",
			input:    "a b　c",
			expected: "a b c",
		},
		{
			name:     "trims both ends",
			input:    "   hello   ",
			expected: "hello",
		},
		{
			name:     "whitespace only becomes empty",
			input:    " \t\n  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeWhitespace(tt.input))
		})
	}
}

func TestMaxLength(t *testing.T) {
	assert.Equal(t, "abc", sanitizer.MaxLength("abcdef", 3))
	assert.Equal(t, "abcdef", sanitizer.MaxLength("abcdef", 10))
	assert.Equal(t, "", sanitizer.MaxLength("abcdef", 0))
	assert.Equal(t, "héllo", sanitizer.MaxLength("héllo world", 5))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "25377860064", sanitizer.Digits("+253 77 86 00 64"))
	assert.Equal(t, "", sanitizer.Digits("no digits"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j********@example.com", sanitizer.MaskEmail("jean.paul@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("a@example.com"))
	assert.Equal(t, "not-an-email", sanitizer.MaskEmail("not-an-email"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*******0064", sanitizer.MaskPhone("+253 77 86 00 64"))
	assert.Equal(t, "**", sanitizer.MaskPhone("12"))
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "AC****45", sanitizer.MaskAccountNumber("ACC12345"))
	assert.Equal(t, "****", sanitizer.MaskAccountNumber("1234"))
}
