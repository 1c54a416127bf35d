// Package fields provides per-field sanitize-and-validate functions for
// untrusted order input: person names, e-mail addresses, phone numbers,
// UUID identifiers, account identifiers and monetary amounts.
//
// Every sanitizer follows the same pipeline: type/emptiness guard, threat
// filtering (see package sanitizer), field-specific length cap,
// allowed-character stripping, field-specific post-processing,
// suspicious-word detection and finally a minimum-validity predicate that
// decides Result.Success.
//
// The functions are total: any input value, including nil or a non-string
// type, yields a well-formed Result and never a panic. Unexpected runtime
// failures inside a sanitizer are recovered at the boundary and converted
// into a failed Result with a generic issue.
//
// Results separate three channels deliberately:
//
//   - Issues – hard problems that explain why Success is (or nearly was)
//     false, safe to aggregate for monitoring but never for end users.
//   - Hints – soft signals (weak account sequences, disposable e-mail
//     domains) that never affect Success.
//   - SuspiciousWords – word-list matches surfaced for monitoring only.
package fields
