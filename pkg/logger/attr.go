package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the name of an order field under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records the names of order fields that produced issues. Field
// names are safe to log; field values never are.
func Fields(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

// IssueCount records the total number of recorded issues.
func IssueCount(n int) slog.Attr {
	return slog.Int("issue_count", n)
}

// CriticalCount records the number of critical issues.
func CriticalCount(n int) slog.Attr {
	return slog.Int("critical_count", n)
}

// Duration records elapsed pipeline time under the key "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Microseconds())/1000)
}

// Grade records the coarse performance grade of a pipeline run.
func Grade(grade string) slog.Attr {
	return slog.String("grade", grade)
}

// SuspiciousWords records matched word-list tokens. The tokens come from a
// fixed internal list, so logging them leaks nothing about the input.
func SuspiciousWords(words []string) slog.Attr {
	if len(words) == 0 {
		return slog.Attr{}
	}
	return slog.Any("suspicious_words", words)
}

// Digest records a redacted log-correlation digest under the key "digest".
func Digest(d string) slog.Attr {
	return slog.String("digest", d)
}
