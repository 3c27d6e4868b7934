package adapter

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	addr     string
	auth     smtp.Auth
	from     string
	sendMail sendMailFunc
	logger   *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] that relays through cfg.SMTPHost.
// PLAIN auth is used only when a username is configured.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}

	return &smtpMailer{
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:     auth,
		from:     cfg.From,
		sendMail: smtp.SendMail,
		logger:   log,
	}
}

func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(m.from, email)
	if err := m.sendMail(m.addr, m.auth, m.from, []string{email.To}, msg); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Str("addr", m.addr).Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	log.Debug().Str("func", "*smtpMailer.Send").Str("subject", email.Subject).Msg("mail sent")
	return nil
}

// buildMessage renders an RFC 5322 plain-text message. Header values are
// stripped of CR and LF so user input cannot inject extra headers.
func buildMessage(from string, email models.Email) []byte {
	var b strings.Builder
	b.WriteString("From: " + headerValue(from) + "\r\n")
	b.WriteString("To: " + headerValue(email.To) + "\r\n")
	b.WriteString("Subject: " + headerValue(email.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(email.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

func headerValue(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
