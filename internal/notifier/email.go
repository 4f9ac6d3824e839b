package notifier

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/mhuber/bvv-alert/internal/config"
	"github.com/mhuber/bvv-alert/internal/tournament"
)

const (
	// smtpPort is the submission port; the session is upgraded with
	// STARTTLS before authenticating.
	smtpPort    = "587"
	smtpTimeout = 10 * time.Second
)

// EmailNotifier delivers tournament alerts via SMTP.
type EmailNotifier struct {
	target config.Email
}

// NewEmailNotifier creates a notifier for the given email target. The
// target must be complete; incomplete targets are rejected by config
// validation before a notifier is ever constructed.
func NewEmailNotifier(target config.Email) (*EmailNotifier, error) {
	if target.From == "" || target.To == "" || target.Password == "" || target.Host == "" {
		return nil, fmt.Errorf("incomplete email target")
	}
	return &EmailNotifier{target: target}, nil
}

// Notify sends one summary email covering all given tournaments.
func (n *EmailNotifier) Notify(records []tournament.Record) error {
	msg := buildMessage(n.target.From, n.target.To, Subject, formatBody(records))
	return n.send(msg)
}

// send performs the SMTP session: connect, STARTTLS, authenticate,
// deliver. The whole session runs under one deadline.
func (n *EmailNotifier) send(msg []byte) error {
	addr := net.JoinHostPort(n.target.Host, smtpPort)

	conn, err := net.DialTimeout("tcp", addr, smtpTimeout)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	if err := conn.SetDeadline(time.Now().Add(smtpTimeout)); err != nil {
		conn.Close()
		return fmt.Errorf("setting deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, n.target.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("starting SMTP session: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: n.target.Host}); err != nil {
		return fmt.Errorf("starting TLS: %w", err)
	}

	auth := smtp.PlainAuth("", n.target.From, n.target.Password, n.target.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("authenticating: %w", err)
	}

	if err := client.Mail(n.target.From); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := client.Rcpt(n.target.To); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening message body: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message body: %w", err)
	}

	return client.Quit()
}

// buildMessage assembles a minimal RFC 5322 plain-text message.
func buildMessage(from, to, subject, body string) []byte {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		from, to, subject, body)
	return []byte(msg)
}
