package handler

import (
	"github.com/gin-gonic/gin"

	engagementapp "github.com/pickleworks/backend/internal/application/engagement"
	"github.com/pickleworks/backend/internal/interfaces/http/middleware"
)

// EngagementHandler serves reviews and the contact form
type EngagementHandler struct {
	BaseHandler
	engagement *engagementapp.EngagementService
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagement *engagementapp.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

// SubmitReviewRequest is a review submission
type SubmitReviewRequest struct {
	Author string `json:"author" binding:"omitempty,max=100"`
	Body   string `json:"body" binding:"required,max=2000"`
}

// ContactRequest is a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

// ListReviews returns stored reviews, newest first
func (h *EngagementHandler) ListReviews(c *gin.Context) {
	h.Success(c, h.engagement.ListReviews(c.Request.Context()))
}

// SubmitReview stores a review. An empty author is stored as Guest.
func (h *EngagementHandler) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	review, err := h.engagement.SubmitReview(c.Request.Context(), engagementapp.SubmitReviewInput{
		Author: req.Author,
		Body:   req.Body,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, review)
}

// ListContacts returns stored contact messages
func (h *EngagementHandler) ListContacts(c *gin.Context) {
	h.Success(c, h.engagement.ListContacts(c.Request.Context()))
}

// SubmitContact stores a contact form message
func (h *EngagementHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	err := h.engagement.SubmitContact(c.Request.Context(), engagementapp.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, gin.H{"message": "Thanks for reaching out"})
}
