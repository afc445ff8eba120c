package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

// LogNotifier writes each submission to the log. It is the default when no
// mail server is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs sub.
func (n LogNotifier) Notify(ctx context.Context, sub types.StoredSubmission) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "new contact message",
		"id", sub.ID,
		"name", sub.Name,
		"email", sub.Email,
		"message_length", len(sub.Message),
	)
	return nil
}

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier emails each submission to the site owner.
type SMTPNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string

	// SendMail defaults to smtp.SendMail.
	SendMail SendMailFunc
}

// ErrSMTPNotConfigured is returned when credentials or a recipient are missing.
var ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")

// Notify sends sub as a plain-text email with Reply-To set to the submitter.
func (n *SMTPNotifier) Notify(ctx context.Context, sub types.StoredSubmission) error {
	if n.Host == "" || n.Username == "" || n.Password == "" || n.To == "" {
		return ErrSMTPNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	port := n.Port
	if port == "" {
		port = "587"
	}
	send := n.SendMail
	if send == nil {
		send = smtp.SendMail
	}

	auth := smtp.PlainAuth("", n.Username, n.Password, n.Host)
	if err := send(n.Host+":"+port, auth, n.Username, []string{n.To}, n.message(sub)); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) message(sub types.StoredSubmission) []byte {
	var b strings.Builder
	b.WriteString("To: " + n.To + "\r\n")
	b.WriteString("From: " + n.Username + "\r\n")
	b.WriteString("Reply-To: " + headerValue(sub.Email) + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + mime.QEncoding.Encode("utf-8", headerValue(sub.Name)) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission from your portfolio:\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n\r\n---\r\nSubmission %s received %s\r\n",
		sub.Name, sub.Email, sub.Message, sub.ID, sub.ReceivedAt.Format("2006-01-02 15:04:05 MST"))
	return []byte(b.String())
}

// headerValue strips line breaks so user input cannot add headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
