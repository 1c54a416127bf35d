package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// Phone sanitizes a phone number. Allowed characters are digits, space,
// plus, parentheses, hyphen and period; spaces and parentheses are stripped
// from the canonical value. Success requires 8 to 15 digits inclusive,
// covering short local formats through full E.164.
func Phone(v any) (res Result) {
	defer recoverGuard(&res)

	raw, ok := asString(v)
	if !ok {
		return failed("invalid input type: expected text")
	}
	res.OriginalLength = utf8.RuneCountInString(raw)
	if sanitizer.NormalizeWhitespace(raw) == "" {
		return failed("missing or empty value")
	}

	s := threatClean(raw, &res)

	if utf8.RuneCountInString(s) > MaxPhoneLen {
		s = sanitizer.MaxLength(s, MaxPhoneLen)
		res.addIssue(fmt.Sprintf("value truncated to %d characters", MaxPhoneLen))
	}

	if stripped := phoneStripRegex.ReplaceAllString(s, ""); stripped != s {
		res.addIssue("invalid characters removed")
		s = stripped
	}

	s = strings.NewReplacer(" ", "", "(", "", ")", "").Replace(s)

	digits := sanitizer.Digits(s)
	success := len(digits) >= MinPhoneDigits && len(digits) <= MaxPhoneDigits
	if !success {
		res.addIssue("invalid phone number length")
	}

	res.finish(s, success)
	return res
}
