// Package mailer notifies the studio about new contact form inquiries.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/studiofolio/internal/db"
	"gopkg.in/gomail.v2"
)

// Config holds SMTP delivery settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ContactMailer emails a summary of each contact submission.
type ContactMailer struct {
	from   string
	to     string
	dialer sender
}

// New returns a ContactMailer delivering through the configured SMTP server.
func New(cfg Config) *ContactMailer {
	return &ContactMailer{
		from:   cfg.From,
		to:     cfg.To,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// NotifyContact sends one message per submission. The reply-to header points
// at the client so the studio can answer directly. It returns ctx.Err() once
// ctx is done; the SMTP exchange itself is left to finish in the background.
func (m *ContactMailer) NotifyContact(ctx context.Context, submission db.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := m.compose(submission)
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send contact notification: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send contact notification: %w", ctx.Err())
	}
}

func (m *ContactMailer) compose(s db.ContactSubmission) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", s.Email)

	subject := "New inquiry from " + s.Name
	if s.Subject != nil && strings.TrimSpace(*s.Subject) != "" {
		subject += ": " + strings.TrimSpace(*s.Subject)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", contactBody(s))
	return msg
}

func contactBody(s db.ContactSubmission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	writeOptional(&b, "Phone", s.Phone)
	writeOptional(&b, "Service", s.ServiceType)
	if s.EventDate != nil {
		fmt.Fprintf(&b, "Event date: %s\n", s.EventDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "\n%s\n", s.Message)
	return b.String()
}

func writeOptional(b *strings.Builder, label string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.TrimSpace(*value))
}
