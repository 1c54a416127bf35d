// Package sanitizer provides stateless text transforms that strip or
// neutralize dangerous substrings in untrusted input before it is stored,
// logged or echoed back.
//
// The filters are grouped into three areas:
//
//   - Threat filters – removal of control characters, markup/script
//     injection patterns and SQL metacharacter clusters, plus a word-list
//     matcher that flags suspicious tokens without mutating the input.
//
//   - Whitespace – normalisation of ASCII and Unicode whitespace variants
//     into single spaces.
//
//   - Masking – partial redaction of e-mail addresses, phone numbers and
//     account numbers for log output.
//
// Every function is a pure, total transform: it never returns an error and
// always yields a safe result for any input, including the empty string.
//
// The injection filters are greedy substring removal, not parsers. They are
// a defense-in-depth layer for storage and display hygiene only; the actual
// injection defenses remain parameterized queries at the persistence layer
// and context-aware output encoding at render time. Callers must not treat
// a filtered string as safe for direct interpolation into HTML or SQL.
//
// Filters compose in a fixed order so that repeated sanitisation is
// deterministic and idempotent:
//
//	clean := sanitizer.Clean(raw) // control chars → XSS → SQL → whitespace
package sanitizer
