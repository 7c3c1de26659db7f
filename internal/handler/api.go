package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/service"
	"github.com/studiofolio/internal/storage"
	"go.uber.org/zap"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	auth         *service.AuthService
	portfolio    *service.PortfolioService
	testimonials *service.TestimonialService
	blog         *service.BlogService
	contacts     *service.ContactService
	assets       *storage.Adapter
	log          *zap.Logger
}

// Services groups the domain services the handlers delegate to.
type Services struct {
	Auth         *service.AuthService
	Portfolio    *service.PortfolioService
	Testimonials *service.TestimonialService
	Blog         *service.BlogService
	Contacts     *service.ContactService
}

// NewAPI constructs a handler set with shared services. assets may wrap a nil
// host, in which case storage routes answer 503.
func NewAPI(services Services, assets *storage.Adapter, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		auth:         services.Auth,
		portfolio:    services.Portfolio,
		testimonials: services.Testimonials,
		blog:         services.Blog,
		contacts:     services.Contacts,
		assets:       assets,
		log:          log,
	}
}

// Ping answers liveness probes.
func (a *API) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// internalError logs err with request context and answers 500 with message.
func (a *API) internalError(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	a.log.Error(message,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(requestIDKey)),
	)
	respondError(c, http.StatusInternalServerError, message)
}
