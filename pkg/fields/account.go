package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// weakSequences flags account numbers users pick when they are not paying
// attention. Non-blocking: legacy account schemes legitimately contain some
// of these.
var weakSequences = []string{"123456", "000000", "aaaaaa", "test", "admin"}

// AccountName sanitizes a free-form account display name. Allowed
// characters are letters, digits, space and @._- with a 150-character cap.
func AccountName(v any) (res Result) {
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

	if utf8.RuneCountInString(s) > MaxAccountNameLen {
		s = sanitizer.MaxLength(s, MaxAccountNameLen)
		res.addIssue(fmt.Sprintf("value truncated to %d characters", MaxAccountNameLen))
	}

	if stripped := accountNameStripRegex.ReplaceAllString(s, ""); stripped != s {
		res.addIssue("invalid characters removed")
		s = sanitizer.NormalizeWhitespace(stripped)
	}

	success := utf8.RuneCountInString(s) >= 2
	if !success {
		res.addIssue("value too short after sanitization")
	}
	res.finish(s, success)
	return res
}

// AccountNumber sanitizes an account identifier string. Allowed characters
// are alphanumerics and @._+- with a 100-character cap. Known-weak
// sequences are flagged as hints; success additionally requires at least
// one alphanumeric character.
func AccountNumber(v any) (res Result) {
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

	if utf8.RuneCountInString(s) > MaxAccountNumberLen {
		s = sanitizer.MaxLength(s, MaxAccountNumberLen)
		res.addIssue(fmt.Sprintf("value truncated to %d characters", MaxAccountNumberLen))
	}

	if stripped := accountNumberStripRegex.ReplaceAllString(s, ""); stripped != s {
		res.addIssue("invalid characters removed")
		s = stripped
	}

	lower := strings.ToLower(s)
	for _, seq := range weakSequences {
		if strings.Contains(lower, seq) {
			res.addHint("weak account number pattern: " + seq)
		}
	}

	success := true
	switch {
	case utf8.RuneCountInString(s) < 2:
		res.addIssue("value too short after sanitization")
		success = false
	case !alnumRegex.MatchString(s):
		res.addIssue("invalid account number: no alphanumeric characters")
		success = false
	}
	res.finish(s, success)
	return res
}
