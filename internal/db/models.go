package db

import "time"

// PortfolioCategory groups portfolio items; Slug is the public filter key.
type PortfolioCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Slug        string    `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName keeps the table name stable across naming strategies.
func (PortfolioCategory) TableName() string {
	return "portfolio_categories"
}

// PortfolioItem is a single photograph shown in the portfolio.
// CategoryID is not a declared foreign key: items whose category is gone drop
// out of listings through the join instead of being rejected.
type PortfolioItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  *string   `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"size:1024;not null" json:"image_url"`
	ThumbnailURL *string   `gorm:"size:1024" json:"thumbnail_url"`
	CategoryID   uint      `gorm:"not null;index" json:"category_id"`
	Featured     bool      `gorm:"not null;default:false" json:"featured"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}

// Testimonial is a client quote. Rating is expected in [1,5] but not enforced.
type Testimonial struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClientName string    `gorm:"size:255;not null" json:"client_name"`
	ClientRole *string   `gorm:"size:255" json:"client_role"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Rating     *int      `json:"rating"`
	Featured   bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

// BlogPost stores HTML content. PublishedAt is set whenever the post is
// written with Published=true and cleared otherwise.
type BlogPost struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Slug             string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Excerpt          *string    `gorm:"type:text" json:"excerpt"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL *string    `gorm:"size:1024" json:"featured_image_url"`
	Published        bool       `gorm:"not null;default:false;index" json:"published"`
	PublishedAt      *time.Time `json:"published_at"`
	MetaTitle        *string    `gorm:"size:255" json:"meta_title"`
	MetaDescription  *string    `gorm:"type:text" json:"meta_description"`
	MetaKeywords     *string    `gorm:"type:text" json:"meta_keywords"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// ContactSubmission is an inquiry sent through the public contact form.
type ContactSubmission struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Email       string     `gorm:"size:255;not null" json:"email"`
	Phone       *string    `gorm:"size:64" json:"phone"`
	Subject     *string    `gorm:"size:255" json:"subject"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	ServiceType *string    `gorm:"size:120" json:"service_type"`
	EventDate   *time.Time `gorm:"type:date" json:"event_date"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// Models lists every table managed by AutoMigrate.
func Models() []interface{} {
	return []interface{}{
		&PortfolioCategory{},
		&PortfolioItem{},
		&Testimonial{},
		&BlogPost{},
		&ContactSubmission{},
	}
}
