// Package mailer sends notification emails and calendar invites over SMTP.
package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

// Sender is the interface for outbound email delivery.
type Sender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendInvite(ctx context.Context, to string, cc []string, subject, body string, invite Invite) error
}

// SMTPConfig holds the connection settings for the outbound mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender delivers mail through an SMTP relay using STARTTLS plain auth.
type SMTPSender struct {
	cfg    SMTPConfig
	logger zerolog.Logger
}

func NewSMTPSender(cfg SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger}
}

func (s *SMTPSender) from() string {
	if s.cfg.From != "" {
		return s.cfg.From
	}
	return s.cfg.Username
}

func (s *SMTPSender) send(to []string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(addr, auth, s.from(), to, msg); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

// SendEmail sends a plain-text notification email.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := buildTextMessage(s.from(), to, subject, body)
	if err := s.send([]string{to}, msg); err != nil {
		s.logger.Error().Err(err).Str("to", to).Msg("email send failed")
		return err
	}
	s.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

// SendInvite sends an email with the invite attached as invite.ics.
func (s *SMTPSender) SendInvite(ctx context.Context, to string, cc []string, subject, body string, invite Invite) error {
	msg := buildInviteMessage(s.from(), to, cc, subject, body, invite.Encode())
	recipients := append([]string{to}, cc...)
	if err := s.send(recipients, msg); err != nil {
		s.logger.Error().Err(err).Str("to", to).Msg("calendar invite send failed")
		return err
	}
	s.logger.Info().Str("to", to).Str("subject", subject).Msg("calendar invite sent")
	return nil
}

func buildTextMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func buildInviteMessage(from, to string, cc []string, subject, body string, ics []byte) []byte {
	const boundary = "orbook-mixed-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if len(cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(cc, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/calendar; method=REQUEST; name=invite.ics\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString("Content-Disposition: attachment; filename=invite.ics\r\n")
	b.WriteString("\r\n")
	b.WriteString(base64.StdEncoding.EncodeToString(ics))
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}

// NoopSender is used when calendar sync is disabled. It logs and drops
// outbound mail.
type NoopSender struct {
	logger zerolog.Logger
}

func NewNoopSender(logger zerolog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

func (s *NoopSender) SendEmail(ctx context.Context, to, subject, body string) error {
	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("mail disabled, dropping email")
	return nil
}

func (s *NoopSender) SendInvite(ctx context.Context, to string, cc []string, subject, body string, invite Invite) error {
	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("mail disabled, dropping invite")
	return nil
}
