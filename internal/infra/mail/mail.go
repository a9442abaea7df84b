// Package mail provides outbound email delivery for verification codes.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
)

// New selects the mail backend from configuration. Without an SMTP host the
// log sender is used, which only records the message; useful for local
// development where no relay exists.
func New(cfg *config.Config, logger *slog.Logger) service.MailSender {
	if cfg.SMTP.Host == "" {
		logger.Warn("SMTP host not configured, emails will only be logged")

		return &logSender{logger: logger}
	}

	return &smtpSender{
		addr:     fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		host:     cfg.SMTP.Host,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
	}
}

// smtpSender delivers mail through a plain SMTP relay.
type smtpSender struct {
	addr     string
	host     string
	username string
	password string
	from     string
}

// Send delivers a single HTML email. The context is accepted for interface
// symmetry; net/smtp offers no cancellation hook.
func (s *smtpSender) Send(_ context.Context, to, subject, htmlBody string) error {
	var msg strings.Builder
	msg.WriteString("From: " + s.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(s.addr, auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

// logSender records outbound mail instead of delivering it.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.logger.InfoContext(ctx, "Outbound email (log only)",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", htmlBody),
	)

	return nil
}
