package order

import (
	"fmt"
	"regexp"
)

// maxPreflightLen rejects absurdly long field values before the full
// pipeline spends any time on them.
const maxPreflightLen = 1000

// Two deliberately light patterns: the full threat filters run later in
// the pipeline, this gate only needs to catch the obvious cases cheaply.
var (
	preflightScriptRegex = regexp.MustCompile(`(?i)<script|javascript:|vbscript:|on\w+\s*=`)
	preflightSQLRegex    = regexp.MustCompile(`(?i)\b(?:union|select|insert|delete|drop)\b|--|;`)
)

// PreflightResult is the outcome of the fast-fail gate. Issues holds every
// detected problem; Critical the subset that must stop processing.
type PreflightResult struct {
	Passed     bool     `json:"passed"`
	Issues     []string `json:"issues,omitempty"`
	Critical   []string `json:"critical,omitempty"`
	CanProceed bool     `json:"canProceed"`
}

// PreValidate is a cheap gate meant to run before the full pipeline on a
// raw, untrusted record: presence of required fields, a hard length cap
// and two lightweight injection checks. It is an optimization, not a
// correctness boundary: a record that passes must still go through the
// full pipeline.
func PreValidate(raw *RawOrderRecord) PreflightResult {
	res := PreflightResult{}

	if raw == nil {
		res.critical("Missing order record")
		return res.done()
	}

	for _, f := range []struct {
		name  string
		value any
	}{
		{FieldLastName, raw.LastName},
		{FieldFirstName, raw.FirstName},
		{FieldEmail, raw.Email},
		{FieldPhone, raw.Phone},
		{FieldPaymentMethod, raw.PaymentMethod},
		{FieldAccountName, raw.AccountName},
		{FieldAccountNumber, raw.AccountNumber},
		{FieldApplicationID, raw.ApplicationID},
		{FieldApplicationFee, raw.ApplicationFee},
	} {
		if missing(f.value) {
			res.critical(fmt.Sprintf("Missing required field: %s", f.name))
			continue
		}

		s, ok := f.value.(string)
		if !ok {
			continue
		}
		if len(s) > maxPreflightLen {
			res.critical(fmt.Sprintf("Field %s exceeds %d characters", f.name, maxPreflightLen))
		}
		if preflightScriptRegex.MatchString(s) {
			res.critical(fmt.Sprintf("Suspicious script content in field: %s", f.name))
		}
		if preflightSQLRegex.MatchString(s) {
			res.critical(fmt.Sprintf("Suspicious SQL content in field: %s", f.name))
		}
	}

	return res.done()
}

func missing(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func (r *PreflightResult) critical(msg string) {
	r.Issues = append(r.Issues, msg)
	r.Critical = append(r.Critical, msg)
}

func (r PreflightResult) done() PreflightResult {
	r.Passed = len(r.Issues) == 0
	r.CanProceed = len(r.Critical) == 0
	return r
}
