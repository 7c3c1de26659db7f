package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/service"
)

type contactRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Phone       *string `json:"phone"`
	Subject     *string `json:"subject"`
	Message     string  `json:"message" binding:"required"`
	ServiceType *string `json:"service_type"`
	EventDate   *string `json:"event_date"`
}

func (r contactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Subject:     r.Subject,
		Message:     r.Message,
		ServiceType: r.ServiceType,
		EventDate:   r.EventDate,
	}
}

// SubmitContact 保存访客提交的咨询
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "name, email and message are required") {
		return
	}

	if _, err := a.contacts.Submit(c.Request.Context(), req.toInput()); err != nil {
		if errors.Is(err, service.ErrEventDateInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		a.internalError(c, err, "failed to submit inquiry")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your inquiry! We'll get back to you soon.",
	})
}

// ListContacts 分页返回咨询记录，最新的在前
func (a *API) ListContacts(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit", 0)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := parseIntQuery(c, "offset", 0)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := a.contacts.List(c.Request.Context(), limit, offset)
	if err != nil {
		a.internalError(c, err, "failed to list contact submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": page.Submissions, "total": page.Total})
}
