package fields

import (
	"unicode/utf8"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// Length caps and bounds per field. Values beyond a cap are truncated, not
// rejected, with a recorded issue.
const (
	MaxNameLen          = 100
	MaxEmailLen         = 150
	MaxPhoneLen         = 25
	MaxAccountNameLen   = 150
	MaxAccountNumberLen = 100

	MinPhoneDigits = 8
	MaxPhoneDigits = 15

	MaxFee = 1_000_000
)

// Result is the outcome of sanitizing a single field. It is created fresh
// per call and never partially updated: a sanitizer either returns a
// complete Result or the recovered-panic fallback.
//
// Sanitized is empty when Success is false; SanitizedLength still reports
// the rune count of the cleaned value so operators can see how much
// stripping occurred.
type Result struct {
	Success         bool
	Sanitized       string
	Amount          int64 // set by Fee only
	Issues          []string
	Hints           []string
	SuspiciousWords []string
	OriginalLength  int
	SanitizedLength int
}

func (r *Result) addIssue(issue string) {
	r.Issues = append(r.Issues, issue)
}

func (r *Result) addHint(hint string) {
	r.Hints = append(r.Hints, hint)
}

// finish applies the shared tail of every string sanitizer: suspicious-word
// detection, length accounting and the empty-on-failure contract.
func (r *Result) finish(sanitized string, success bool) {
	r.SuspiciousWords = sanitizer.DetectSuspiciousWords(sanitized)
	r.SanitizedLength = utf8.RuneCountInString(sanitized)
	r.Success = success
	if success {
		r.Sanitized = sanitized
	}
}

// failed builds an immediate-failure Result for guard violations.
func failed(issue string) Result {
	return Result{Issues: []string{issue}}
}

// recoverGuard converts a panic inside a sanitizer into a generic failed
// Result. Sanitizers never raise past their boundary.
func recoverGuard(res *Result) {
	if r := recover(); r != nil {
		*res = Result{Issues: []string{"internal sanitization error"}}
	}
}

// asString is the type guard shared by all string sanitizers.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// threatClean runs the fixed threat-filter sequence, recording an issue per
// stage that actually changed the value. Whitespace normalization is
// cosmetic and never recorded.
func threatClean(raw string, res *Result) string {
	s := sanitizer.RemoveControlCharacters(raw)
	if s != raw {
		res.addIssue("control characters removed")
	}
	if f := sanitizer.RemoveXSSPatterns(s); f != s {
		res.addIssue("suspicious markup removed")
		s = f
	}
	if f := sanitizer.RemoveSQLPatterns(s); f != s {
		res.addIssue("suspicious SQL content removed")
		s = f
	}
	return sanitizer.NormalizeWhitespace(s)
}
