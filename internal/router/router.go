package router

import (
	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/handler"
	"go.uber.org/zap"
)

// Options tunes the engine around the route table.
type Options struct {
	CorsOrigins []string
	Logger      *zap.Logger
}

// SetupRouter configures the gin engine and the route table.
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog(log))
	if len(opts.CorsOrigins) > 0 {
		r.Use(handler.CORS(opts.CorsOrigins))
	}

	r.GET("/ping", api.Ping)

	r.POST("/auth/login", api.Login)

	// public content
	r.GET("/portfolio", api.ListPortfolio)
	r.GET("/portfolio/categories", api.ListCategories)
	r.GET("/testimonials", api.ListTestimonials)
	r.GET("/blog", api.ListBlogPosts)
	r.GET("/blog/:slug", api.GetBlogPostBySlug)
	r.POST("/contact", api.SubmitContact)

	admin := r.Group("/admin")
	admin.Use(api.AdminRequired())
	{
		admin.GET("/portfolio/:id", api.GetPortfolioItem)
		admin.POST("/portfolio", api.CreatePortfolioItem)
		admin.PUT("/portfolio/:id", api.UpdatePortfolioItem)
		admin.DELETE("/portfolio/:id", api.DeletePortfolioItem)

		admin.POST("/portfolio/categories", api.CreateCategory)
		admin.PUT("/portfolio/categories/:id", api.UpdateCategory)
		admin.DELETE("/portfolio/categories/:id", api.DeleteCategory)

		admin.GET("/testimonials/:id", api.GetTestimonial)
		admin.POST("/testimonials", api.CreateTestimonial)
		admin.PUT("/testimonials/:id", api.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", api.DeleteTestimonial)

		admin.GET("/blog/:id", api.GetBlogPost)
		admin.POST("/blog", api.CreateBlogPost)
		admin.PUT("/blog/:id", api.UpdateBlogPost)
		admin.DELETE("/blog/:id", api.DeleteBlogPost)

		admin.GET("/contacts", api.ListContacts)
	}

	assets := r.Group("/storage")
	assets.Use(api.AdminRequired())
	{
		assets.POST("/upload", api.UploadImage)
		assets.DELETE("/delete", api.DeleteImage)
	}

	return r
}
