package fields

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// PersonName sanitizes a first or last name. Allowed characters are letters
// (including accented), space, hyphen, apostrophe and period; everything
// else is stripped. Tokens are title-cased. Success requires at least 2
// characters after sanitization: a name stripped below that by the threat
// filters fails rather than passing trivially.
func PersonName(v any) (res Result) {
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

	if utf8.RuneCountInString(s) > MaxNameLen {
		s = sanitizer.MaxLength(s, MaxNameLen)
		res.addIssue(fmt.Sprintf("value truncated to %d characters", MaxNameLen))
	}

	if stripped := nameStripRegex.ReplaceAllString(s, ""); stripped != s {
		res.addIssue("invalid characters removed")
		s = sanitizer.NormalizeWhitespace(stripped)
	}

	// cases.Caser is stateful, so a fresh one per call keeps the sanitizer
	// safe for concurrent use.
	s = cases.Title(language.Und).String(s)

	success := utf8.RuneCountInString(s) >= 2
	if !success {
		res.addIssue("value too short after sanitization")
	}
	res.finish(s, success)
	return res
}
