package order

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/orderguard/pkg/fields"
	"github.com/dmitrymomot/orderguard/pkg/logger"
)

// Performance grades by elapsed pipeline time.
const (
	GradeExcellent = "excellent" // under 10ms
	GradeGood      = "good"      // under 50ms
	GradeSlow      = "slow"      // 50ms and above
)

// criticalMarkers classify an issue as critical by substring match on its
// text, case-insensitively.
var criticalMarkers = []string{"error", "invalid", "suspicious"}

// maxAlertedIssues caps how many critical issues one diagnostic carries.
const maxAlertedIssues = 10

// Summary aggregates counts across all field results.
type Summary struct {
	TotalFields      int      `json:"totalFields"`
	SuccessfulFields int      `json:"successfulFields"`
	TotalIssues      int      `json:"totalIssues"`
	CriticalIssues   int      `json:"criticalIssues"`
	SuspiciousWords  []string `json:"suspiciousWords,omitempty"`
	Hints            []string `json:"hints,omitempty"`
}

// Performance reports elapsed wall-clock time with a coarse grade.
type Performance struct {
	Duration time.Duration `json:"duration"`
	Grade    string        `json:"grade"`
}

// Report is the aggregate outcome of one pipeline invocation. Sanitized is
// non-nil exactly when every field result succeeded.
type Report struct {
	Success     bool                     `json:"success"`
	Sanitized   *SanitizedOrderRecord    `json:"sanitized,omitempty"`
	Results     map[string]fields.Result `json:"results"`
	Issues      []string                 `json:"issues,omitempty"`
	Summary     Summary                  `json:"summary"`
	Performance Performance              `json:"performance"`
}

// Pipeline applies every field sanitizer to an incoming order record and
// merges the outcomes into a single verdict. Stateless apart from the
// injected monitoring logger; concurrent calls are fully independent.
type Pipeline struct {
	log *slog.Logger
}

// NewPipeline creates a Pipeline reporting diagnostics to log. A nil log
// falls back to slog.Default.
func NewPipeline(log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{log: log}
}

// Sanitize runs the full single-pass pipeline. It never returns an error:
// every failure mode is data in the Report. A nil record short-circuits to
// a failed report with one critical issue.
func (p *Pipeline) Sanitize(raw *RawOrderRecord) Report {
	start := time.Now()

	if raw == nil {
		rep := Report{
			Issues:  []string{"invalid input: order record is missing"},
			Summary: Summary{TotalIssues: 1, CriticalIssues: 1},
		}
		rep.Performance = measure(start)
		p.alert(rep, rep.Issues)
		return rep
	}

	results := map[string]fields.Result{
		FieldLastName:       fields.PersonName(raw.LastName),
		FieldFirstName:      fields.PersonName(raw.FirstName),
		FieldEmail:          fields.Email(raw.Email),
		FieldPhone:          fields.Phone(raw.Phone),
		FieldPaymentMethod:  fields.Identifier(raw.PaymentMethod),
		FieldAccountName:    fields.AccountName(raw.AccountName),
		FieldAccountNumber:  fields.AccountNumber(raw.AccountNumber),
		FieldApplicationID:  fields.Identifier(raw.ApplicationID),
		FieldApplicationFee: fields.Fee(raw.ApplicationFee),
	}

	rep := Report{Success: true, Results: results}
	rep.Summary.TotalFields = len(fieldOrder)

	for _, name := range fieldOrder {
		res := results[name]
		if res.Success {
			rep.Summary.SuccessfulFields++
		} else {
			rep.Success = false
		}
		for _, issue := range res.Issues {
			rep.Issues = append(rep.Issues, fmt.Sprintf("%s: %s", name, issue))
		}
		for _, hint := range res.Hints {
			rep.Summary.Hints = append(rep.Summary.Hints, fmt.Sprintf("%s: %s", name, hint))
		}
		rep.Summary.SuspiciousWords = appendUnique(rep.Summary.SuspiciousWords, res.SuspiciousWords)
	}

	if rep.Success {
		rep.Sanitized = &SanitizedOrderRecord{
			LastName:       results[FieldLastName].Sanitized,
			FirstName:      results[FieldFirstName].Sanitized,
			Email:          results[FieldEmail].Sanitized,
			Phone:          results[FieldPhone].Sanitized,
			PaymentMethod:  results[FieldPaymentMethod].Sanitized,
			AccountName:    results[FieldAccountName].Sanitized,
			AccountNumber:  results[FieldAccountNumber].Sanitized,
			ApplicationID:  results[FieldApplicationID].Sanitized,
			ApplicationFee: results[FieldApplicationFee].Amount,
		}
	}

	critical := criticalIssues(rep.Issues)
	rep.Summary.TotalIssues = len(rep.Issues)
	rep.Summary.CriticalIssues = len(critical)
	rep.Performance = measure(start)

	if len(critical) > 0 {
		p.alert(rep, critical)
	} else {
		p.log.Debug("order sanitization completed",
			logger.IssueCount(rep.Summary.TotalIssues),
			logger.Grade(rep.Performance.Grade),
			logger.Duration(rep.Performance.Duration),
		)
	}

	return rep
}

// alert emits a structured diagnostic to the monitoring collaborator on a
// detached goroutine: alerting must never delay or fail the caller's
// verdict, and its own failure is swallowed. The diagnostic carries counts,
// durations and field names, never raw field values.
func (p *Pipeline) alert(rep Report, critical []string) {
	if len(critical) > maxAlertedIssues {
		critical = critical[:maxAlertedIssues]
	}

	var affected []string
	for _, name := range fieldOrder {
		if res, ok := rep.Results[name]; ok && len(res.Issues) > 0 {
			affected = append(affected, name)
		}
	}

	go func() {
		defer func() { _ = recover() }()
		p.log.Warn("order sanitization found critical issues",
			slog.Any("critical_issues", critical),
			logger.CriticalCount(rep.Summary.CriticalIssues),
			logger.IssueCount(rep.Summary.TotalIssues),
			logger.Duration(rep.Performance.Duration),
			logger.Fields(affected),
			logger.SuspiciousWords(rep.Summary.SuspiciousWords),
		)
	}()
}

func measure(start time.Time) Performance {
	d := time.Since(start)
	grade := GradeSlow
	switch {
	case d < 10*time.Millisecond:
		grade = GradeExcellent
	case d < 50*time.Millisecond:
		grade = GradeGood
	}
	return Performance{Duration: d, Grade: grade}
}

func criticalIssues(issues []string) []string {
	var critical []string
	for _, issue := range issues {
		lower := strings.ToLower(issue)
		for _, marker := range criticalMarkers {
			if strings.Contains(lower, marker) {
				critical = append(critical, issue)
				break
			}
		}
	}
	return critical
}

func appendUnique(dst []string, src []string) []string {
	for _, s := range src {
		found := false
		for _, d := range dst {
			if d == s {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, s)
		}
	}
	return dst
}
