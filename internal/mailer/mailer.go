package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
)

// ErrNotConfigured signals that the SMTP transport is missing credentials.
// Callers decide whether that is fatal (contact form) or ignorable
// (registration notification).
var ErrNotConfigured = errors.New("smtp transport is not configured")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c Config) IsZero() bool {
	return c.Host == "" || c.Username == "" || c.Password == ""
}

//go:generate mockgen -destination=mock/mailer_mock.go -package=mock . Mailer
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody, textBody string) error
}

type SMTPProvider struct {
	cfg Config
}

func NewSMTP(cfg Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(ctx context.Context, to []string, subject, htmlBody, textBody string) error {
	if p.cfg.IsZero() {
		return ErrNotConfigured
	}

	auth := smtp.PlainAuth("", p.cfg.Username, p.cfg.Password, p.cfg.Host)
	addr := fmt.Sprintf("%s:%d", p.cfg.Host, p.cfg.Port)

	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n%s\r\n%s",
		p.cfg.From, to[0], subject, mime, htmlBody))

	return smtp.SendMail(addr, auth, p.cfg.From, to, msg)
}
