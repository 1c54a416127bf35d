package mailer

import "errors"

var (
	ErrFailedToSend   = errors.New("mailer: failed to send email")
	ErrInvalidMessage = errors.New("mailer: invalid message")
	ErrInvalidConfig  = errors.New("mailer: invalid config")
)
