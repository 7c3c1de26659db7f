// Command seed fills an empty database with demo studio content.
package main

import (
	"context"
	"log"

	"github.com/studiofolio/internal/config"
	"github.com/studiofolio/internal/db"
	"github.com/studiofolio/internal/logger"
	"github.com/studiofolio/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	gdb, err := db.Open(db.Options{Driver: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN})
	if err != nil {
		zlog.Fatal("database init failed", zap.Error(err))
	}

	if err := seedDemoContent(context.Background(), gdb, zlog); err != nil {
		zlog.Fatal("seeding failed", zap.Error(err))
	}
	zlog.Info("demo content ready")
}

type demoItem struct {
	title       string
	description string
	category    string
	imageURL    string
	featured    bool
}

var demoItems = []demoItem{
	{"Vineyard vows", "Late afternoon ceremony between the vines.", "weddings", "https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&w=1600&q=80", true},
	{"First dance", "", "weddings", "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?auto=format&fit=crop&w=1600&q=80", false},
	{"Studio headshot", "Natural light, seamless grey backdrop.", "portraits", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=1600&q=80", true},
	{"Gala night", "", "events", "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&w=1600&q=80", false},
	{"Autumn in the park", "Three generations, one golden hour.", "family", "https://images.unsplash.com/photo-1511895426328-dc8714191300?auto=format&fit=crop&w=1600&q=80", false},
	{"Coffee roaster campaign", "Product and lifestyle set for a local roaster.", "commercial", "https://images.unsplash.com/photo-1447933601403-0c6688de566e?auto=format&fit=crop&w=1600&q=80", false},
}

var demoTestimonials = []service.TestimonialInput{
	{ClientName: "Maya & Tom", ClientRole: strPtr("Wedding clients"), Content: "Every photo feels like the day itself. We could not have asked for more.", Rating: intPtr(5), Featured: true},
	{ClientName: "Priya Shah", ClientRole: strPtr("Marketing lead"), Content: "Fast turnaround and a great eye for product detail.", Rating: intPtr(5)},
	{ClientName: "The Okafor family", Content: "The kids actually enjoyed the session.", Rating: intPtr(4)},
}

var demoPosts = []service.BlogPostInput{
	{
		Title:         "Planning your wedding day timeline",
		Excerpt:       strPtr("How to leave room for golden hour portraits."),
		Content:       "## Start with the light\n\nSunset time decides the portrait slot. Work backwards from there.\n\n- Ceremony\n- Family formals\n- **Golden hour** couple portraits",
		ContentFormat: service.ContentFormatMarkdown,
		Published:     true,
		MetaTitle:     strPtr("Wedding day timeline tips"),
	},
	{
		Title:         "What to wear for a family session",
		Content:       "Coordinate, don't match. Pick two or three colours and build from there.",
		ContentFormat: service.ContentFormatMarkdown,
		Published:     true,
	},
	{
		Title:   "Behind the scenes: our new studio",
		Content: "<p>Coming soon.</p>",
	},
}

// seedDemoContent inserts demo items, testimonials and posts. Each entity is
// skipped when its table already has rows.
func seedDemoContent(ctx context.Context, gdb *gorm.DB, zlog *zap.Logger) error {
	portfolio := service.NewPortfolioService(gdb)
	testimonials := service.NewTestimonialService(gdb)
	blog := service.NewBlogService(gdb)

	if empty, err := tableEmpty(gdb, &db.PortfolioItem{}); err != nil {
		return err
	} else if empty {
		categories, err := portfolio.ListCategories(ctx)
		if err != nil {
			return err
		}
		bySlug := make(map[string]uint, len(categories))
		for _, category := range categories {
			bySlug[category.Slug] = category.ID
		}

		for i, item := range demoItems {
			categoryID, ok := bySlug[item.category]
			if !ok {
				zlog.Warn("category missing, skipping item", zap.String("category", item.category))
				continue
			}
			input := service.PortfolioItemInput{
				Title:      item.title,
				ImageURL:   item.imageURL,
				CategoryID: categoryID,
				Featured:   item.featured,
				SortOrder:  i,
			}
			if item.description != "" {
				input.Description = strPtr(item.description)
			}
			if _, err := portfolio.Create(ctx, input); err != nil {
				return err
			}
		}
		zlog.Info("portfolio items created", zap.Int("count", len(demoItems)))
	} else {
		zlog.Info("portfolio items exist, skipping")
	}

	if empty, err := tableEmpty(gdb, &db.Testimonial{}); err != nil {
		return err
	} else if empty {
		for _, input := range demoTestimonials {
			if _, err := testimonials.Create(ctx, input); err != nil {
				return err
			}
		}
		zlog.Info("testimonials created", zap.Int("count", len(demoTestimonials)))
	} else {
		zlog.Info("testimonials exist, skipping")
	}

	if empty, err := tableEmpty(gdb, &db.BlogPost{}); err != nil {
		return err
	} else if empty {
		for _, input := range demoPosts {
			if _, err := blog.Create(ctx, input); err != nil {
				return err
			}
		}
		zlog.Info("blog posts created", zap.Int("count", len(demoPosts)))
	} else {
		zlog.Info("blog posts exist, skipping")
	}

	return nil
}

func tableEmpty(gdb *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := gdb.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
