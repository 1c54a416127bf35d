package order

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/orderguard/pkg/rules"
	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]`)

// ValidateBusinessRules runs cross-field plausibility checks on an
// already-sanitized record. It supplements field-level sanitization, never
// replaces it: each rule assumes its inputs are individually clean.
// Warnings are heuristics for monitoring; only violations block.
func ValidateBusinessRules(rec SanitizedOrderRecord) rules.Outcome {
	return rules.Apply(
		rules.Warning("distinct-names",
			"first and last name are identical",
			func() bool {
				return !strings.EqualFold(rec.FirstName, rec.LastName)
			}),

		rules.Warning("email-identity",
			"email local part is unrelated to the first name and contains a suspicious token",
			func() bool {
				local, _, ok := strings.Cut(rec.Email, "@")
				if !ok {
					return true
				}
				normLocal := normalizeToken(local)
				if !strings.Contains(normLocal, "admin") && !strings.Contains(normLocal, "test") {
					return true
				}
				normFirst := normalizeToken(rec.FirstName)
				return normFirst != "" && strings.Contains(normLocal, normFirst)
			}),

		rules.Warning("fee-plausibility",
			"application fee is outside the typical range",
			func() bool {
				return rec.ApplicationFee >= 10 && rec.ApplicationFee <= 100_000
			}),

		rules.Violation("phone-format",
			"phone number has too few digits for its format",
			func() bool {
				digits := sanitizer.Digits(rec.Phone)
				if strings.HasPrefix(digits, "00") {
					// International prefix needs a country code plus number.
					return len(digits) >= 11
				}
				// Exactly 8 digits is a valid local format; anything
				// shorter slipped past sanitization and is rejected.
				return len(digits) >= 8
			}),

		rules.Violation("account-identity",
			"account name and account number must differ",
			func() bool {
				return !strings.EqualFold(rec.AccountName, rec.AccountNumber)
			}),
	)
}

// normalizeToken lowercases and strips non-alphanumerics so "Jean-Paul"
// relates to "jean.paul".
func normalizeToken(s string) string {
	return nonAlnumRegex.ReplaceAllString(strings.ToLower(s), "")
}
