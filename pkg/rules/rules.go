// Package rules provides a small severity-aware rule engine for cross-field
// plausibility checks on already-sanitized data. Blocking violations and
// non-blocking warnings are kept in separate channels so that callers never
// have to parse severity out of message text.
package rules

// Severity decides which Outcome channel a failed rule lands in.
type Severity int

const (
	// SeverityViolation marks a rule whose failure invalidates the record.
	SeverityViolation Severity = iota
	// SeverityWarning marks a rule whose failure is surfaced but never blocks.
	SeverityWarning
)

// Rule is a single named check. Check returns true when the rule passes.
type Rule struct {
	Name     string
	Severity Severity
	Message  string
	Check    func() bool
}

// Violation builds a blocking rule.
func Violation(name, message string, check func() bool) Rule {
	return Rule{Name: name, Severity: SeverityViolation, Message: message, Check: check}
}

// Warning builds a non-blocking rule.
func Warning(name, message string, check func() bool) Rule {
	return Rule{Name: name, Severity: SeverityWarning, Message: message, Check: check}
}

// Outcome is the aggregate result of applying a rule set.
type Outcome struct {
	Valid       bool     `json:"valid"`
	Violations  []string `json:"violations,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	RulesPassed int      `json:"rulesPassed"`
	TotalRules  int      `json:"totalRules"`
}

// Apply executes every rule and collects failures by severity. Valid is
// true when no violation fired; warnings never affect it. A panicking
// check counts as a failed rule; the engine never raises past its
// boundary.
func Apply(ruleSet ...Rule) Outcome {
	out := Outcome{TotalRules: len(ruleSet)}

	for _, r := range ruleSet {
		if runCheck(r.Check) {
			out.RulesPassed++
			continue
		}
		switch r.Severity {
		case SeverityWarning:
			out.Warnings = append(out.Warnings, r.Message)
		default:
			out.Violations = append(out.Violations, r.Message)
		}
	}

	out.Valid = len(out.Violations) == 0
	return out
}

func runCheck(check func() bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if check == nil {
		return false
	}
	return check()
}
