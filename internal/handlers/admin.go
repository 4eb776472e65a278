package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"forcefocus/api/internal/jobs"
	"forcefocus/api/internal/models"
)

type mlTrainRequest struct {
	UserID       *string `json:"user_id"`
	ForceRetrain bool    `json:"force_retrain"`
}

type jobLogResponse struct {
	ID           string         `json:"id"`
	JobType      string         `json:"job_type"`
	TriggeredBy  string         `json:"triggered_by"`
	StartTime    time.Time      `json:"start_time"`
	EndTime      *time.Time     `json:"end_time"`
	Status       string         `json:"status"`
	Parameters   map[string]any `json:"parameters"`
	Result       map[string]any `json:"result,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
}

// TriggerMLTrain records the retrain trigger and hands it to the job
// stream. The retraining computation itself runs in the ML pipeline, not
// in this service; only the trigger/response contract lives here.
func (h HandlerSet) TriggerMLTrain(c *gin.Context) {
	var req mlTrainRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err.Error())
		return
	}

	params := map[string]any{"force_retrain": req.ForceRetrain}
	if req.UserID != nil {
		params["user_id"] = *req.UserID
	}

	job, err := h.jobs.Create(c.Request.Context(), models.JobTypeMLRetrain, models.JobTriggerManual, params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	payload := map[string]any{
		"type":   models.JobTypeMLRetrain,
		"job_id": job.ID,
		"force":  strconv.FormatBool(req.ForceRetrain),
	}
	if req.UserID != nil {
		payload["user_id"] = *req.UserID
	}

	if err := jobs.Enqueue(c.Request.Context(), h.cache, h.cfg.Redis.JobStream, payload); err != nil {
		h.log.Error().Err(err).Str("job_id", job.ID).Msg("retrain enqueue failed")
		if ferr := h.jobs.Fail(c.Request.Context(), job.ID, err.Error()); ferr != nil {
			h.log.Error().Err(ferr).Str("job_id", job.ID).Msg("job log fail update failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store_unavailable"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID, "status": "started"})
}

func (h HandlerSet) GetJob(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobLogResponse{
		ID:           job.ID,
		JobType:      job.JobType,
		TriggeredBy:  job.TriggeredBy,
		StartTime:    job.StartTime,
		EndTime:      job.EndTime,
		Status:       job.Status,
		Parameters:   job.Parameters,
		Result:       job.Result,
		ErrorMessage: job.ErrorMessage,
	})
}
