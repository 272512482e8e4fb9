package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"lets-heal/internal/config"
	"lets-heal/internal/domain"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier delivers notifications as plain-text email.
type SMTPNotifier struct {
	cfg      config.SMTPConfig
	from     string
	sendMail sendMailFunc
}

func NewSMTPNotifier(cfg config.SMTPConfig, from string) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, from: from, sendMail: smtp.SendMail}
}

// Send implements domain.Notifier
func (s *SMTPNotifier) Send(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.Recipient == "" {
		return fmt.Errorf("notification %q has no recipient", n.Subject)
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)

	if err := s.sendMail(addr, auth, s.from, []string{n.Recipient}, buildMessage(s.from, n)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", n.Recipient, err)
	}
	return nil
}

func buildMessage(from string, n domain.Notification) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + n.Recipient + "\r\n")
	b.WriteString("Subject: " + n.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(n.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
