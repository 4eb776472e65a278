package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/models"
	"forcefocus/api/internal/repository"
)

// createEventRequest deliberately has no owner field: the authenticated
// caller is always the owner, whatever the agent puts in the body.
type createEventRequest struct {
	SessionID      *string            `json:"session_id"`
	Timestamp      time.Time          `json:"timestamp" binding:"required"`
	AppName        *string            `json:"app_name"`
	WindowTitle    *string            `json:"window_title"`
	ActivityVector map[string]float64 `json:"activity_vector"`
}

type eventResponse struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	SessionID      *string            `json:"session_id"`
	Timestamp      time.Time          `json:"timestamp"`
	AppName        *string            `json:"app_name"`
	WindowTitle    *string            `json:"window_title"`
	ActivityVector map[string]float64 `json:"activity_vector"`
}

func toEventResponse(e models.Event) eventResponse {
	vector := e.ActivityVector
	if vector == nil {
		vector = map[string]float64{}
	}
	return eventResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		SessionID:      e.SessionID,
		Timestamp:      e.Timestamp,
		AppName:        e.AppName,
		WindowTitle:    e.WindowTitle,
		ActivityVector: vector,
	}
}

func (h HandlerSet) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	eventID, err := h.events.Create(c.Request.Context(), currentUserID(c), repository.EventInput{
		SessionID:      req.SessionID,
		Timestamp:      req.Timestamp,
		AppName:        req.AppName,
		WindowTitle:    req.WindowTitle,
		ActivityVector: req.ActivityVector,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event_id": eventID})
}

func (h HandlerSet) ListEvents(c *gin.Context) {
	var query repository.EventQuery

	if raw := c.Query("session_id"); raw != "" {
		query.SessionID = &raw
	}
	if raw := c.Query("start_time"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "start_time must be RFC3339")
			return
		}
		query.StartTime = &t
	}
	if raw := c.Query("end_time"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(c, "end_time must be RFC3339")
			return
		}
		query.EndTime = &t
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		query.Limit = v
	}

	events, err := h.events.List(c.Request.Context(), currentUserID(c), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) GetEvent(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), currentUserID(c), c.Param("eventId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}
