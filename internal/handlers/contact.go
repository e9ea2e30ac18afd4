package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jestatech/jts-site/internal/dto"
	apierrors "github.com/jestatech/jts-site/internal/errors"
	"github.com/jestatech/jts-site/internal/services"
)

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	contactService *services.ContactFormService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactFormService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit accepts a public contact submission.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Sorry, something went wrong. Please try again later.",
		})
		return
	}

	if _, err := h.contactService.Submit(req); err != nil {
		switch {
		case errors.Is(err, services.ErrContactNameRequired),
			errors.Is(err, services.ErrContactPhoneRequired),
			errors.Is(err, services.ErrContactServiceRequired):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Sorry, something went wrong. Please try again later.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Thank you for your message! We'll get back to you soon.",
	})
}

// ListSubmissions returns every submission, newest first.
func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.contactService.GetAllSubmissions()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetSubmission returns one submission by ID.
func (h *ContactHandler) GetSubmission(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	submission, err := h.contactService.GetSubmissionByID(id)
	if err != nil {
		respondContactError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// GetSubmissionStats returns inbox counts.
func (h *ContactHandler) GetSubmissionStats(c *gin.Context) {
	stats, err := h.contactService.GetStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute submission stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// FilterSubmissions narrows the inbox by date range, read state or service.
// Date range wins over status, status over service, matching the admin UI.
func (h *ContactHandler) FilterSubmissions(c *gin.Context) {
	status := c.Query("status")
	service := c.Query("service")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	switch {
	case startDate != "" && endDate != "":
		start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			apierrors.BadRequest(c, "Invalid startDate")
			return
		}
		end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			apierrors.BadRequest(c, "Invalid endDate")
			return
		}
		result, err := h.contactService.GetSubmissionsByDateRange(start, end.AddDate(0, 0, 1).Add(-time.Second))
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch submissions")
			return
		}
		c.JSON(http.StatusOK, result)
	case status == "read" || status == "unread":
		result, err := h.contactService.GetSubmissionsByReadStatus(status == "read")
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch submissions")
			return
		}
		c.JSON(http.StatusOK, result)
	case service != "" && service != "all":
		result, err := h.contactService.GetSubmissionsByService(service)
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch submissions")
			return
		}
		c.JSON(http.StatusOK, result)
	default:
		result, err := h.contactService.GetAllSubmissions()
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch submissions")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// MarkAsRead flags a submission read.
func (h *ContactHandler) MarkAsRead(c *gin.Context) {
	h.setRead(c, true)
}

// MarkAsUnread flags a submission unread.
func (h *ContactHandler) MarkAsUnread(c *gin.Context) {
	h.setRead(c, false)
}

func (h *ContactHandler) setRead(c *gin.Context, isRead bool) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var (
		submission interface{}
		err        error
	)
	if isRead {
		submission, err = h.contactService.MarkAsRead(id)
	} else {
		submission, err = h.contactService.MarkAsUnread(id)
	}
	if err != nil {
		respondContactError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// DeleteSubmission removes a submission by ID.
func (h *ContactHandler) DeleteSubmission(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	if err := h.contactService.DeleteSubmission(id); err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			respondContactError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete submission",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Submission deleted successfully",
	})
}

func respondContactError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSubmissionNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}
