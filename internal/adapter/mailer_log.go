package adapter

import (
	"context"

	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer constructs a [Mailer] that writes every message to the log
// instead of sending it.
func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (m *logMailer) Send(ctx context.Context, email models.Email) error {
	logger.FromContext(ctx).Info().
		Str("func", "*logMailer.Send").
		Str("to", email.To).
		Str("subject", email.Subject).
		Str("body", email.Body).
		Msg("SMTP not configured, logging email")
	return nil
}
