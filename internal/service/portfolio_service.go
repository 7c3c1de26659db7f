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
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrCategoryNotFound      = errors.New("portfolio category not found")
	ErrCategorySlugTaken     = errors.New("portfolio category slug already exists")
	ErrCategoryNameMissing   = errors.New("portfolio category name is required")
)

// PortfolioService manages portfolio items and their categories.
type PortfolioService struct {
	db *gorm.DB
}

// PortfolioFilter narrows a portfolio listing. Nil / empty fields are ignored.
type PortfolioFilter struct {
	CategorySlug string
	Featured     *bool
	Limit        int
}

// PortfolioItemView is a portfolio item joined with its category.
type PortfolioItemView struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CategorySlug string    `json:"category_slug"`
	Featured     bool      `json:"featured"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// PortfolioItemInput carries every writable column of a portfolio item.
type PortfolioItemInput struct {
	Title        string
	Description  *string
	ImageURL     string
	ThumbnailURL *string
	CategoryID   uint
	Featured     bool
	SortOrder    int
}

// CategoryInput carries the writable columns of a category.
type CategoryInput struct {
	Name        string
	Slug        string
	Description *string
}

// NewPortfolioService creates a PortfolioService instance.
func NewPortfolioService(gdb *gorm.DB) *PortfolioService {
	return &PortfolioService{db: gdb}
}

// List returns items matching the filter ordered by sort_order then newest first.
// Items whose category no longer exists are not returned.
func (s *PortfolioService) List(ctx context.Context, filter PortfolioFilter) ([]PortfolioItemView, error) {
	q := newListQuery("p.sort_order asc", "p.created_at desc").
		whereString("c.slug = ?", filter.CategorySlug).
		whereBool("p.featured = ?", filter.Featured).
		page(filter.Limit, 0)

	base := s.db.WithContext(ctx).
		Table("portfolio_items AS p").
		Select("p.id, p.title, p.description, p.image_url, p.thumbnail_url, " +
			"p.category_id, p.featured, p.sort_order, p.created_at, " +
			"c.name AS category_name, c.slug AS category_slug").
		Joins("JOIN portfolio_categories AS c ON c.id = p.category_id")

	items := make([]PortfolioItemView, 0)
	if err := q.apply(base).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a portfolio item by id.
func (s *PortfolioService) Get(ctx context.Context, id uint) (*db.PortfolioItem, error) {
	var item db.PortfolioItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a portfolio item and returns it with its generated id.
func (s *PortfolioService) Create(ctx context.Context, input PortfolioItemInput) (*db.PortfolioItem, error) {
	item := db.PortfolioItem{}
	input.applyTo(&item)

	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update overwrites every writable column of an existing item.
func (s *PortfolioService) Update(ctx context.Context, id uint, input PortfolioItemInput) (*db.PortfolioItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.applyTo(item)
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item. Deleting an unknown id is not an error.
func (s *PortfolioService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&db.PortfolioItem{}, id).Error
}

func (in PortfolioItemInput) applyTo(item *db.PortfolioItem) {
	item.Title = in.Title
	item.Description = in.Description
	item.ImageURL = in.ImageURL
	item.ThumbnailURL = in.ThumbnailURL
	item.CategoryID = in.CategoryID
	item.Featured = in.Featured
	item.SortOrder = in.SortOrder
}

// ListCategories returns every category ordered by name.
func (s *PortfolioService) ListCategories(ctx context.Context) ([]db.PortfolioCategory, error) {
	categories := make([]db.PortfolioCategory, 0)
	if err := s.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a category. The slug is derived from the name when omitted.
func (s *PortfolioService) CreateCategory(ctx context.Context, input CategoryInput) (*db.PortfolioCategory, error) {
	name, categorySlug, err := normalizeCategoryInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategorySlugFree(ctx, categorySlug, 0); err != nil {
		return nil, err
	}

	category := db.PortfolioCategory{Name: name, Slug: categorySlug, Description: input.Description}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory overwrites a category.
func (s *PortfolioService) UpdateCategory(ctx context.Context, id uint, input CategoryInput) (*db.PortfolioCategory, error) {
	name, categorySlug, err := normalizeCategoryInput(input)
	if err != nil {
		return nil, err
	}

	var category db.PortfolioCategory
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if err := s.ensureCategorySlugFree(ctx, categorySlug, id); err != nil {
		return nil, err
	}

	category.Name = name
	category.Slug = categorySlug
	category.Description = input.Description
	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. Its items stay in the table but no
// longer appear in listings.
func (s *PortfolioService) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&db.PortfolioCategory{}, id).Error
}

func (s *PortfolioService) ensureCategorySlugFree(ctx context.Context, categorySlug string, exceptID uint) error {
	var count int64
	query := s.db.WithContext(ctx).Model(&db.PortfolioCategory{}).Where("slug = ?", categorySlug)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategorySlugTaken
	}
	return nil
}

func normalizeCategoryInput(input CategoryInput) (string, string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", "", ErrCategoryNameMissing
	}
	categorySlug := strings.TrimSpace(input.Slug)
	if categorySlug == "" {
		categorySlug = slug.Make(name)
	}
	return name, categorySlug, nil
}
