// Package order implements the order-intake pipeline: pre-validation of a
// raw submission, per-field sanitization, cross-field business rules,
// reporting utilities and the HTTP/persistence glue around them.
//
// Data flows one way through pure stages:
//
//	RawOrderRecord → field sanitizers → aggregation → business rules → report
//
// RawOrderRecord and SanitizedOrderRecord are distinct types on purpose:
// persistence and mail only accept the sanitized type, so unvalidated data
// cannot reach them without going through the pipeline.
//
// The sanitization stages are best-effort text cleanup, not the security
// boundary. Storage uses parameterized queries and any rendering layer owns
// its output encoding; the pipeline's filters exist to keep stored data
// clean and monitoring informative.
package order
