// Package logger configures log/slog for the order pipeline and provides
// attribute helpers for its monitoring vocabulary: field names, issue
// counts, durations and suspicious-word lists.
//
// The helpers exist to keep log call sites honest about PII: diagnostics
// carry counts, field names and masked digests, never raw field values.
//
// Construction follows an options pattern with environment-driven defaults:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelInfo),
//	)
package logger
