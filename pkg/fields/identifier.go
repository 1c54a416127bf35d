package fields

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// Identifier sanitizes a UUID-like token. Only the canonical lower-case
// 8-4-4-4-12 form with RFC 4122 version/variant nibbles passes; all-zero
// and all-f sentinel values are rejected even though they look well-formed.
func Identifier(v any) (res Result) {
	defer recoverGuard(&res)

	raw, ok := asString(v)
	if !ok {
		return failed("invalid input type: expected text")
	}
	res.OriginalLength = utf8.RuneCountInString(raw)
	if sanitizer.NormalizeWhitespace(raw) == "" {
		return failed("missing or empty value")
	}

	s := strings.ToLower(threatClean(raw, &res))

	hex := strings.ReplaceAll(s, "-", "")
	if hex == strings.Repeat("0", 32) || hex == strings.Repeat("f", 32) {
		res.addIssue("default/empty UUID is not allowed")
		res.finish(s, false)
		return res
	}

	success := uuidRegex.MatchString(s)
	if success {
		// Parse back through the reference implementation so the sanitized
		// value is guaranteed canonical, not just pattern-shaped.
		u, err := uuid.Parse(s)
		if err != nil {
			success = false
		} else {
			s = u.String()
		}
	}
	if !success {
		res.addIssue("invalid identifier format")
	}

	res.finish(s, success)
	return res
}
