package mailer

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/orderguard/pkg/sanitizer"
)

// DevSender implements Sender for local development by logging the message
// instead of delivering it. The recipient is masked so even local logs
// stay free of raw addresses.
type DevSender struct {
	log *slog.Logger
}

// NewDevSender creates a development sender writing to the given logger.
func NewDevSender(log *slog.Logger) *DevSender {
	if log == nil {
		log = slog.Default()
	}
	return &DevSender{log: log}
}

func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	d.log.InfoContext(ctx, "dev mailer: email not sent",
		slog.String("to", sanitizer.MaskEmail(msg.To)),
		slog.String("subject", msg.Subject),
		slog.String("tag", msg.Tag),
		slog.Int("body_bytes", len(msg.BodyText)),
	)
	return nil
}
