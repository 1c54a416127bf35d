package sanitizer

import "strings"

// suspiciousWords is the fixed token list matched by DetectSuspiciousWords.
// Matching is case-insensitive substring containment.
var suspiciousWords = []string{
	"admin", "root", "system", "test", "script", "eval", "exec",
	"null", "undefined", "password", "hack",
}

// RemoveControlCharacters deletes ASCII control characters
// (0x00-0x08, 0x0B, 0x0C, 0x0E-0x1F, 0x7F). Tab, LF and CR survive so that
// multi-line input stays intact until whitespace normalisation.
func RemoveControlCharacters(s string) string {
	return controlCharRegex.ReplaceAllString(s, "")
}

// RemoveXSSPatterns removes matches of a fixed list of case-insensitive
// markup/script injection patterns: script/iframe/object/embed/link/meta
// tags, javascript:/vbscript: URIs, inline event-handler attributes and CSS
// expression()/url() calls. Greedy substring removal, not an HTML parser.
func RemoveXSSPatterns(s string) string {
	result := s
	for _, re := range xssRegexes {
		result = re.ReplaceAllString(result, "")
	}
	return result
}

// RemoveSQLPatterns removes SQL keyword clusters, comment markers,
// statement terminators and common tautology patterns. A blunt filter:
// it does not replace parameterized queries, which remain the actual
// injection defense at the persistence layer.
func RemoveSQLPatterns(s string) string {
	result := s
	for _, re := range sqlRegexes {
		result = re.ReplaceAllString(result, "")
	}
	return result
}

// DetectSuspiciousWords returns the subset of the fixed word list found in
// s, case-insensitively. The input is never mutated.
func DetectSuspiciousWords(s string) []string {
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	var found []string
	for _, word := range suspiciousWords {
		if strings.Contains(lower, word) {
			found = append(found, word)
		}
	}
	return found
}

// Clean applies the full threat-filter sequence in its fixed order:
// control characters → XSS patterns → SQL patterns → whitespace.
// The order is part of the contract; every field sanitizer relies on it
// for deterministic, idempotent output.
func Clean(s string) string {
	result := RemoveControlCharacters(s)
	result = RemoveXSSPatterns(result)
	result = RemoveSQLPatterns(result)
	return NormalizeWhitespace(result)
}
