package fields

import "regexp"

// Pre-compiled allowed-character and format patterns
var (
	// Letters (including accented), space, hyphen, apostrophe, period
	nameStripRegex = regexp.MustCompile(`[^\p{L} .'-]`)

	// Pragmatic web-form email shape, validated rather than stripped
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Digits plus common phone punctuation
	phoneStripRegex = regexp.MustCompile(`[^0-9+().\s-]`)

	// Canonical 8-4-4-4-12 form with version and variant nibbles constrained
	uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	accountNameStripRegex   = regexp.MustCompile(`[^a-zA-Z0-9 @._-]`)
	accountNumberStripRegex = regexp.MustCompile(`[^a-zA-Z0-9@._+-]`)

	alnumRegex = regexp.MustCompile(`[a-zA-Z0-9]`)
)
