package service

import (
	"context"
	"errors"

	"github.com/studiofolio/internal/db"
	"gorm.io/gorm"
)

var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialService wraps testimonial persistence.
type TestimonialService struct {
	db *gorm.DB
}

// TestimonialFilter narrows a testimonial listing.
type TestimonialFilter struct {
	Featured *bool
	Limit    int
}

// TestimonialInput carries every writable column of a testimonial.
type TestimonialInput struct {
	ClientName string
	ClientRole *string
	Content    string
	Rating     *int
	Featured   bool
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// List returns featured testimonials first, newest first within each group.
func (s *TestimonialService) List(ctx context.Context, filter TestimonialFilter) ([]db.Testimonial, error) {
	q := newListQuery("featured desc", "created_at desc").
		whereBool("featured = ?", filter.Featured).
		page(filter.Limit, 0)

	testimonials := make([]db.Testimonial, 0)
	if err := q.apply(s.db.WithContext(ctx).Model(&db.Testimonial{})).Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Get fetches a testimonial by id.
func (s *TestimonialService) Get(ctx context.Context, id uint) (*db.Testimonial, error) {
	var testimonial db.Testimonial
	if err := s.db.WithContext(ctx).First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &testimonial, nil
}

// Create inserts a testimonial.
func (s *TestimonialService) Create(ctx context.Context, input TestimonialInput) (*db.Testimonial, error) {
	testimonial := db.Testimonial{}
	input.applyTo(&testimonial)
	if err := s.db.WithContext(ctx).Create(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Update overwrites every writable column of an existing testimonial.
func (s *TestimonialService) Update(ctx context.Context, id uint, input TestimonialInput) (*db.Testimonial, error) {
	testimonial, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.applyTo(testimonial)
	if err := s.db.WithContext(ctx).Save(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Delete removes a testimonial; unknown ids are ignored.
func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&db.Testimonial{}, id).Error
}

func (in TestimonialInput) applyTo(t *db.Testimonial) {
	t.ClientName = in.ClientName
	t.ClientRole = in.ClientRole
	t.Content = in.Content
	t.Rating = in.Rating
	t.Featured = in.Featured
}
