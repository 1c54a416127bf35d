package order

import (
	"fmt"
	"hash/fnv"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// Digest is a redacted view of an order's sensitive fields plus a rolling
// hash of that view, used to correlate log lines for the same submission
// without storing PII. The hash is explicitly non-cryptographic, a
// log-correlation aid and never a security mechanism.
type Digest struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"accountNumber"`
	Hash          string `json:"hash"`
}

// NewLogDigest builds the redacted digest for a sanitized record.
func NewLogDigest(rec SanitizedOrderRecord) Digest {
	d := Digest{
		Email:         sanitizer.MaskEmail(rec.Email),
		Phone:         sanitizer.MaskPhone(rec.Phone),
		AccountNumber: sanitizer.MaskAccountNumber(rec.AccountNumber),
	}

	// Hash the redacted view, not the raw values: identical masked views
	// correlate, and the hash can never be reversed into more than the
	// mask already shows.
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s", d.Email, d.Phone, d.AccountNumber)
	d.Hash = fmt.Sprintf("%08x", h.Sum32())
	return d
}

// String renders the digest for free-text log messages.
func (d Digest) String() string {
	return fmt.Sprintf("order[%s] %s %s %s", d.Hash, d.Email, d.Phone, d.AccountNumber)
}
