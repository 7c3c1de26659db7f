package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/studiofolio/internal/db"
	"gorm.io/gorm"
)

const (
	defaultContactLimit  = 50
	eventDateLayout      = "2006-01-02"
	defaultNotifyTimeout = 30 * time.Second
)

var ErrEventDateInvalid = errors.New("event date is not a valid date")

// ContactNotifier is told about every stored submission.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, submission db.ContactSubmission) error
}

// ContactService stores contact form submissions.
type ContactService struct {
	db            *gorm.DB
	notifier      ContactNotifier
	onNotify      func(error)
	notifyTimeout time.Duration
	pending       sync.WaitGroup
}

// ContactInput is a contact form submission. EventDate accepts YYYY-MM-DD or RFC 3339.
type ContactInput struct {
	Name        string
	Email       string
	Phone       *string
	Subject     *string
	Message     string
	ServiceType *string
	EventDate   *string
}

// ContactPage is one page of submissions plus the table-wide total.
type ContactPage struct {
	Submissions []db.ContactSubmission
	Total       int64
	Limit       int
	Offset      int
}

// NewContactService creates a ContactService. notifier may be nil; onNotify,
// when set, receives notification failures.
func NewContactService(gdb *gorm.DB, notifier ContactNotifier, onNotify func(error)) *ContactService {
	return &ContactService{
		db:            gdb,
		notifier:      notifier,
		onNotify:      onNotify,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// Submit stores a submission and returns without waiting for the notifier.
// Notifications run in the background with their own deadline; a failed
// notification never fails the submission.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*db.ContactSubmission, error) {
	eventDate, err := parseEventDate(input.EventDate)
	if err != nil {
		return nil, err
	}

	submission := db.ContactSubmission{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Subject:     input.Subject,
		Message:     input.Message,
		ServiceType: input.ServiceType,
		EventDate:   eventDate,
	}
	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notify(context.WithoutCancel(ctx), submission)
	}
	return &submission, nil
}

// Wait blocks until every background notification has finished.
func (s *ContactService) Wait() {
	s.pending.Wait()
}

func (s *ContactService) notify(ctx context.Context, submission db.ContactSubmission) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyContact(ctx, submission); err != nil && s.onNotify != nil {
			s.onNotify(err)
		}
	}()
}

// List returns submissions newest first. Limit defaults to 50. Total counts the
// whole table and is queried separately from the page.
func (s *ContactService) List(ctx context.Context, limit, offset int) (*ContactPage, error) {
	if limit <= 0 {
		limit = defaultContactLimit
	}
	if offset < 0 {
		offset = 0
	}

	page := &ContactPage{Limit: limit, Offset: offset, Submissions: make([]db.ContactSubmission, 0)}
	q := newListQuery("created_at desc", "id desc").page(limit, offset)
	if err := q.apply(s.db.WithContext(ctx).Model(&db.ContactSubmission{})).Find(&page.Submissions).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&db.ContactSubmission{}).Count(&page.Total).Error; err != nil {
		return nil, err
	}
	return page, nil
}

func parseEventDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}

	for _, layout := range []string{eventDateLayout, time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return &date, nil
		}
	}
	return nil, ErrEventDateInvalid
}
