package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// ASCII control ranges, excluding tab/newline/carriage return
	controlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

	// Markup/script injection patterns, removed greedily in order
	xssRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`),
		regexp.MustCompile(`(?is)<object\b[^>]*>.*?</object>`),
		regexp.MustCompile(`(?is)<embed\b[^>]*>`),
		regexp.MustCompile(`(?is)<link\b[^>]*>`),
		regexp.MustCompile(`(?is)<meta\b[^>]*>`),
		regexp.MustCompile(`(?i)</?(?:script|iframe|object|embed|link|meta)\b[^>]*>`),
		regexp.MustCompile(`(?i)(?:java|vb)script\s*:`),
		regexp.MustCompile(`(?i)\bon(?:load|error|click|mouseover|focus|blur)\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`),
		regexp.MustCompile(`(?i)\bexpression\s*\([^)]*\)`),
		regexp.MustCompile(`(?i)\burl\s*\([^)]*\)`),
	}

	// SQL keyword clusters, comment markers, terminators and tautologies
	sqlRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:ALTER|CREATE|DELETE|DROP|EXEC(?:UTE)?|INSERT|MERGE|SELECT|UPDATE|UNION|USE)\b`),
		regexp.MustCompile(`--[^\r\n]*`),
		regexp.MustCompile(`(?s)/\*.*?\*/`),
		regexp.MustCompile(`;`),
		regexp.MustCompile(`\b\d+\s*=\s*\d+\b`),
		regexp.MustCompile(`'[^']*'\s*=\s*'[^']*'`),
	}

	// Whitespace normalization, including NBSP and Unicode space variants
	whitespaceRegex = regexp.MustCompile("[\\s   -​  　]+")

	// Phone and numeric extraction
	nonDigitRegex = regexp.MustCompile(`\D`)
)
