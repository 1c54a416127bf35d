package mailer

import (
	"context"
	"fmt"
	"regexp"
)

// Sender delivers a single transactional message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	BodyText string
	Tag      string
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the message is deliverable before handing it to a
// provider, so provider errors stay reserved for transport problems.
func (m Message) Validate() error {
	if m.To == "" || !emailRegex.MatchString(m.To) {
		return fmt.Errorf("%w: recipient address %q", ErrInvalidMessage, m.To)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidMessage)
	}
	if m.BodyText == "" {
		return fmt.Errorf("%w: empty body", ErrInvalidMessage)
	}
	return nil
}
