package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/models"
	"forcefocus/api/internal/repository"
)

type createFeedbackRequest struct {
	EventID      string    `json:"event_id" binding:"required"`
	FeedbackType string    `json:"feedback_type" binding:"required"`
	Timestamp    time.Time `json:"timestamp" binding:"required"`
}

type feedbackResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EventID      string    `json:"event_id"`
	FeedbackType string    `json:"feedback_type"`
	Timestamp    time.Time `json:"timestamp"`
}

func toFeedbackResponse(f models.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:           f.ID,
		UserID:       f.UserID,
		EventID:      f.EventID,
		FeedbackType: f.FeedbackType,
		Timestamp:    f.Timestamp,
	}
}

func (h HandlerSet) CreateFeedback(c *gin.Context) {
	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	fb, err := h.feedback.Create(c.Request.Context(), currentUserID(c), repository.FeedbackInput{
		EventID:      req.EventID,
		FeedbackType: req.FeedbackType,
		Timestamp:    req.Timestamp,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFeedbackResponse(fb))
}

func (h HandlerSet) ListFeedback(c *gin.Context) {
	var query repository.FeedbackQuery

	if raw := c.Query("event_id"); raw != "" {
		query.EventID = &raw
	}
	if raw := c.Query("feedback_type"); raw != "" {
		if !models.ValidFeedbackType(raw) {
			badRequest(c, "unknown feedback_type")
			return
		}
		query.FeedbackType = &raw
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		query.Limit = v
	}

	feedbacks, err := h.feedback.List(c.Request.Context(), currentUserID(c), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]feedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		resp = append(resp, toFeedbackResponse(f))
	}
	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) GetFeedback(c *gin.Context) {
	fb, err := h.feedback.Get(c.Request.Context(), currentUserID(c), c.Param("feedbackId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFeedbackResponse(fb))
}

func (h HandlerSet) DeleteFeedback(c *gin.Context) {
	if err := h.feedback.Delete(c.Request.Context(), currentUserID(c), c.Param("feedbackId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
