package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// disposableDomains flags throwaway e-mail providers. A match is a hint,
// never a failure: some legitimate users do hide behind them.
var disposableDomains = []string{
	"tempmail", "throwaway", "10minutemail", "guerrillamail",
}

// Email sanitizes and validates an e-mail address. The value is validated
// by pattern rather than stripped: stripping characters out of an address
// would silently change who receives mail.
func Email(v any) (res Result) {
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
	s = strings.ToLower(s)

	if utf8.RuneCountInString(s) > MaxEmailLen {
		s = sanitizer.MaxLength(s, MaxEmailLen)
		res.addIssue(fmt.Sprintf("value truncated to %d characters", MaxEmailLen))
	}

	success := emailRegex.MatchString(s) &&
		utf8.RuneCountInString(s) > 5 &&
		strings.Contains(s, "@") &&
		strings.Contains(s, ".")
	if !success {
		res.addIssue("invalid email format")
	}

	if at := strings.LastIndex(s, "@"); at >= 0 {
		domain := s[at+1:]
		for _, d := range disposableDomains {
			if strings.Contains(domain, d) {
				res.addHint("disposable email domain: " + d)
				break
			}
		}
	}

	res.finish(s, success)
	return res
}
