package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/models"
	"forcefocus/api/internal/notify"
	"forcefocus/api/internal/repository"
)

type startSessionRequest struct {
	TaskID       *string   `json:"task_id"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	GoalDuration *float64  `json:"goal_duration"`
	ProfileID    *string   `json:"profile_id"`
}

type updateSessionRequest struct {
	EndTime           *time.Time `json:"end_time"`
	Status            *string    `json:"status"`
	GoalDuration      *float64   `json:"goal_duration"`
	InterruptionCount *int       `json:"interruption_count"`
}

type sessionResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	TaskID            *string    `json:"task_id"`
	ProfileID         *string    `json:"profile_id"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time"`
	Duration          *float64   `json:"duration"`
	Status            string     `json:"status"`
	GoalDuration      *float64   `json:"goal_duration"`
	InterruptionCount int        `json:"interruption_count"`
}

func toSessionResponse(s models.Session) sessionResponse {
	return sessionResponse{
		ID:                s.ID.Hex(),
		UserID:            s.UserID,
		TaskID:            s.TaskID,
		ProfileID:         s.ProfileID,
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		Duration:          s.Duration,
		Status:            s.Status,
		GoalDuration:      s.GoalDuration,
		InterruptionCount: s.InterruptionCount,
	}
}

func (h HandlerSet) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	userID := currentUserID(c)
	session, err := h.sessions.Start(c.Request.Context(), userID, repository.StartInput{
		TaskID:       req.TaskID,
		ProfileID:    req.ProfileID,
		StartTime:    req.StartTime,
		GoalDuration: req.GoalDuration,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.notifier.Send(c.Request.Context(), userID, notify.MessageSessionStart, map[string]any{
		"session_id": session.ID.Hex(),
	})

	c.JSON(http.StatusCreated, toSessionResponse(session))
}

func (h HandlerSet) ListSessions(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = v
	}

	sessions, err := h.sessions.List(c.Request.Context(), currentUserID(c), c.Query("status"), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toSessionResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) CurrentSession(c *gin.Context) {
	session, err := h.sessions.Current(c.Request.Context(), currentUserID(c))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no_active_session"})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h HandlerSet) GetSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Request.Context(), currentUserID(c), c.Param("sessionId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h HandlerSet) UpdateSession(c *gin.Context) {
	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	userID := currentUserID(c)
	session, err := h.sessions.Update(c.Request.Context(), userID, c.Param("sessionId"), repository.SessionPatch{
		EndTime:           req.EndTime,
		Status:            req.Status,
		GoalDuration:      req.GoalDuration,
		InterruptionCount: req.InterruptionCount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	if req.Status != nil && (*req.Status == models.SessionStatusCompleted || *req.Status == models.SessionStatusCancelled) {
		data := map[string]any{
			"session_id": session.ID.Hex(),
			"status":     session.Status,
		}
		if session.Duration != nil {
			data["duration"] = *session.Duration
		}
		h.notifier.Send(c.Request.Context(), userID, notify.MessageSessionEnd, data)
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}
