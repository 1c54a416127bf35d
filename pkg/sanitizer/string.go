package sanitizer

import "strings"

// NormalizeWhitespace collapses runs of whitespace, including non-breaking
// and Unicode space variants, to single ASCII spaces and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// MaxLength truncates a string to the specified maximum number of runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// Digits strips everything but decimal digits.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// MaskEmail preserves the full domain for recognisability while hiding the
// local part. Invalid shapes are returned unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	if local == "" {
		return email
	}
	if len(local) == 1 {
		return "*@" + parts[1]
	}

	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + parts[1]
}

// MaskPhone shows only the last 4 digits for user recognition.
func MaskPhone(phone string) string {
	digits := Digits(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskAccountNumber keeps the first and last 2 characters visible.
// Short values are fully masked.
func MaskAccountNumber(acc string) string {
	acc = strings.TrimSpace(acc)
	if len(acc) <= 4 {
		return strings.Repeat("*", len(acc))
	}
	return acc[:2] + strings.Repeat("*", len(acc)-4) + acc[len(acc)-2:]
}
