package mailer

import (
	"context"
	"log/slog"
)

// LogSender is a development Sender that records outbound email in the
// structured log instead of delivering it.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "email suppressed in development",
		"send_to", params.SendTo,
		"subject", params.Subject,
		"tag", params.Tag,
		"body_bytes", len(params.BodyHTML),
	)
	return nil
}
