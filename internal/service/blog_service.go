package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/studiofolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrBlogSlugTaken    = errors.New("blog post slug already exists")
	ErrBlogSlugMissing  = errors.New("blog post slug could not be derived from title")
)

// BlogService wraps blog post persistence.
type BlogService struct {
	db  *gorm.DB
	now func() time.Time
}

// BlogFilter narrows a blog listing.
type BlogFilter struct {
	Published *bool
	Limit     int
}

// BlogPostInput carries every writable column of a post. Slug is derived from
// Title when blank; ContentFormat is "html" (default) or "markdown".
type BlogPostInput struct {
	Title            string
	Slug             string
	Excerpt          *string
	Content          string
	ContentFormat    string
	FeaturedImageURL *string
	Published        bool
	MetaTitle        *string
	MetaDescription  *string
	MetaKeywords     *string
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb, now: time.Now}
}

// List returns posts ordered by publish time then creation time, newest first.
func (s *BlogService) List(ctx context.Context, filter BlogFilter) ([]db.BlogPost, error) {
	q := newListQuery("published_at desc", "created_at desc").
		whereBool("published = ?", filter.Published).
		page(filter.Limit, 0)

	posts := make([]db.BlogPost, 0)
	if err := q.apply(s.db.WithContext(ctx).Model(&db.BlogPost{})).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublishedBySlug returns a published post. Drafts are reported as not found.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, postSlug string) (*db.BlogPost, error) {
	var post db.BlogPost
	err := s.db.WithContext(ctx).
		Where("slug = ? AND published = ?", strings.TrimSpace(postSlug), true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Get returns a post by id regardless of its published state.
func (s *BlogService) Get(ctx context.Context, id uint) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a post. PublishedAt is set to now when the post is published.
func (s *BlogService) Create(ctx context.Context, input BlogPostInput) (*db.BlogPost, error) {
	post := db.BlogPost{}
	if err := s.prepare(ctx, &post, input, 0); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update overwrites an existing post. Publishing again always stamps a fresh
// PublishedAt; unpublishing clears it.
func (s *BlogService) Update(ctx context.Context, id uint, input BlogPostInput) (*db.BlogPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, post, input, id); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post; unknown ids are ignored.
func (s *BlogService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&db.BlogPost{}, id).Error
}

func (s *BlogService) prepare(ctx context.Context, post *db.BlogPost, input BlogPostInput, id uint) error {
	postSlug := strings.TrimSpace(input.Slug)
	if postSlug == "" {
		postSlug = slug.Make(input.Title)
	}
	if postSlug == "" {
		return ErrBlogSlugMissing
	}
	if err := s.ensureSlugFree(ctx, postSlug, id); err != nil {
		return err
	}

	content, err := renderContent(input.Content, input.ContentFormat)
	if err != nil {
		return err
	}

	post.Title = input.Title
	post.Slug = postSlug
	post.Excerpt = input.Excerpt
	post.Content = content
	post.FeaturedImageURL = input.FeaturedImageURL
	post.Published = input.Published
	post.MetaTitle = input.MetaTitle
	post.MetaDescription = input.MetaDescription
	post.MetaKeywords = input.MetaKeywords

	post.PublishedAt = nil
	if input.Published {
		publishedAt := s.now().UTC()
		post.PublishedAt = &publishedAt
	}
	return nil
}

func (s *BlogService) ensureSlugFree(ctx context.Context, postSlug string, exceptID uint) error {
	var count int64
	query := s.db.WithContext(ctx).Model(&db.BlogPost{}).Where("slug = ?", postSlug)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrBlogSlugTaken
	}
	return nil
}
