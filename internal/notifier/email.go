package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
)

// EmailNotifier delivers reports over SMTP as plain text.
type EmailNotifier struct {
	host      string
	port      int
	sender    string
	password  string
	recipient string
}

// NewEmailNotifier creates an SMTP notifier using PLAIN auth with
// STARTTLS (the net/smtp default when the server offers it).
func NewEmailNotifier(host string, port int, sender, password, recipient string) *EmailNotifier {
	return &EmailNotifier{
		host:      host,
		port:      port,
		sender:    sender,
		password:  password,
		recipient: recipient,
	}
}

func (e *EmailNotifier) Name() string { return "email" }

func (e *EmailNotifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	subject := fmt.Sprintf("TickerSentry report %s", time.Now().Format("2006-01-02"))
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		e.sender, e.recipient, subject, text)

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	auth := smtp.PlainAuth("", e.sender, e.password, e.host)
	if err := smtp.SendMail(addr, auth, e.sender, []string{e.recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
