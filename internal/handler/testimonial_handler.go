package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/service"
)

type testimonialRequest struct {
	ClientName string  `json:"client_name" binding:"required"`
	ClientRole *string `json:"client_role"`
	Content    string  `json:"content" binding:"required"`
	Rating     *int    `json:"rating"`
	Featured   bool    `json:"featured"`
}

func (r testimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		ClientName: r.ClientName,
		ClientRole: r.ClientRole,
		Content:    r.Content,
		Rating:     r.Rating,
		Featured:   r.Featured,
	}
}

// ListTestimonials returns testimonials, featured first.
func (a *API) ListTestimonials(c *gin.Context) {
	featured, err := parseBoolQuery(c, "featured")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseIntQuery(c, "limit", 0)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	testimonials, err := a.testimonials.List(c.Request.Context(), service.TestimonialFilter{Featured: featured, Limit: limit})
	if err != nil {
		a.internalError(c, err, "failed to list testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (a *API) GetTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	testimonial, err := a.testimonials.Get(c.Request.Context(), id)
	if err != nil {
		a.testimonialError(c, err, "failed to load testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (a *API) CreateTestimonial(c *gin.Context) {
	var req testimonialRequest
	if !bindJSON(c, &req, "client_name and content are required") {
		return
	}

	testimonial, err := a.testimonials.Create(c.Request.Context(), req.toInput())
	if err != nil {
		a.internalError(c, err, "failed to create testimonial")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": testimonial.ID, "message": "Testimonial created successfully"})
}

func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	var req testimonialRequest
	if !bindJSON(c, &req, "client_name and content are required") {
		return
	}

	if _, err := a.testimonials.Update(c.Request.Context(), id, req.toInput()); err != nil {
		a.testimonialError(c, err, "failed to update testimonial")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial updated successfully"})
}

func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	if err := a.testimonials.Delete(c.Request.Context(), id); err != nil {
		a.internalError(c, err, "failed to delete testimonial")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}

func (a *API) testimonialError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, service.ErrTestimonialNotFound) {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}
	a.internalError(c, err, fallback)
}
