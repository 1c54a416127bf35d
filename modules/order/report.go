package order

import (
	"fmt"
	"strings"
)

// userMessages maps known issue substrings to safe, non-technical messages.
// Checked in order; the first match across the issue list wins. Raw issue
// text is never echoed to the end user; it describes detection internals.
// "missing" must stay first: a missing-field issue names the field, and a
// field name like "email" or "applicationFee" would satisfy a later
// pattern.
var userMessages = []struct {
	substr  string
	message string
}{
	{"missing", "Please fill in all required fields."},
	{"email", "Please enter a valid email address."},
	{"phone", "Please enter a valid phone number."},
	{"fee", "Please enter a valid application fee."},
	{"truncated", "One of the fields is too long. Please shorten your input."},
	{"too short", "One of the fields is too short. Please check your entries."},
	{"suspicious", "Your input contains content we cannot accept. Please remove special characters and try again."},
	{"invalid characters", "Your input contains characters we cannot accept. Please remove special characters and try again."},
	{"control characters", "Your input contains characters we cannot accept. Please remove special characters and try again."},
	{"uuid", "We could not process your request. Please try again."},
	{"identifier", "We could not process your request. Please try again."},
}

const fallbackUserMessage = "Please check your input and try again."

const (
	maxReportedSuspicious = 5
	maxReportedIssues     = 3
)

// FormatReport renders a single-line developer-facing summary of a
// pipeline run, suitable for log lines and CLI output.
func FormatReport(rep Report) string {
	var b strings.Builder

	if rep.Success {
		b.WriteString("order sanitization OK")
	} else {
		b.WriteString("order sanitization FAILED")
	}

	fmt.Fprintf(&b, "; fields %d/%d", rep.Summary.SuccessfulFields, rep.Summary.TotalFields)
	fmt.Fprintf(&b, "; issues %d (%d critical)", rep.Summary.TotalIssues, rep.Summary.CriticalIssues)
	fmt.Fprintf(&b, "; %s (%.2fms)", rep.Performance.Grade, float64(rep.Performance.Duration.Microseconds())/1000)

	if len(rep.Summary.SuspiciousWords) > 0 {
		words := rep.Summary.SuspiciousWords
		if len(words) > maxReportedSuspicious {
			words = words[:maxReportedSuspicious]
		}
		b.WriteString("; suspicious: " + strings.Join(words, ", "))
	}

	if len(rep.Issues) > 0 {
		issues := rep.Issues
		if len(issues) > maxReportedIssues {
			issues = issues[:maxReportedIssues]
		}
		b.WriteString("; top issues: " + strings.Join(issues, " | "))
	}

	return b.String()
}

// UserMessage converts internal issue strings into one safe message for
// the end user. It never leaks detection internals or raw field values.
func UserMessage(issues []string) string {
	for _, issue := range issues {
		lower := strings.ToLower(issue)
		for _, m := range userMessages {
			if strings.Contains(lower, m.substr) {
				return m.message
			}
		}
	}
	return fallbackUserMessage
}
