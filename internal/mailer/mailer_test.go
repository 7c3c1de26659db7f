package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studiofolio/internal/db"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	messages []*gomail.Message
	err      error
	block    chan struct{}
}

func (r *recordingSender) DialAndSend(m ...*gomail.Message) error {
	if r.block != nil {
		<-r.block
	}
	r.messages = append(r.messages, m...)
	return r.err
}

func strPtr(s string) *string { return &s }

func TestNotifyContactComposesMessage(t *testing.T) {
	sender := &recordingSender{}
	m := &ContactMailer{from: "site@studio.example", to: "owner@studio.example", dialer: sender}

	eventDate := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	err := m.NotifyContact(context.Background(), db.ContactSubmission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Subject:     strPtr("Wedding"),
		ServiceType: strPtr("wedding"),
		Message:     "We are getting married in June.",
		EventDate:   &eventDate,
	})
	if err != nil {
		t.Fatalf("NotifyContact returned error: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.messages))
	}

	msg := sender.messages[0]
	if got := msg.GetHeader("Subject"); len(got) != 1 || got[0] != "New inquiry from Jane Doe: Wedding" {
		t.Fatalf("unexpected subject %v", got)
	}
	if got := msg.GetHeader("Reply-To"); len(got) != 1 || got[0] != "jane@example.com" {
		t.Fatalf("unexpected reply-to %v", got)
	}
}

func TestContactBodySkipsEmptyFields(t *testing.T) {
	body := contactBody(db.ContactSubmission{Name: "Sam", Email: "sam@example.com", Phone: strPtr("  "), Message: "Hi"})
	if strings.Contains(body, "Phone") {
		t.Fatalf("expected blank phone to be omitted, got %q", body)
	}
	if !strings.Contains(body, "Email: sam@example.com") {
		t.Fatalf("expected email line, got %q", body)
	}
}

func TestNotifyContactWrapsSendError(t *testing.T) {
	sender := &recordingSender{err: errors.New("connection refused")}
	m := &ContactMailer{from: "a@example.com", to: "b@example.com", dialer: sender}

	if err := m.NotifyContact(context.Background(), db.ContactSubmission{Name: "X", Email: "x@example.com"}); err == nil {
		t.Fatal("expected error when SMTP delivery fails")
	}
}

func TestNotifyContactStopsAtDeadline(t *testing.T) {
	sender := &recordingSender{block: make(chan struct{})}
	defer close(sender.block)
	m := &ContactMailer{from: "a@example.com", to: "b@example.com", dialer: sender}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := m.NotifyContact(ctx, db.ContactSubmission{Name: "X", Email: "x@example.com"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("NotifyContact blocked for %v", elapsed)
	}
}
