package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"forcefocus/api/internal/models"
	"forcefocus/api/internal/repository"
)

// Processor executes the jobs the scheduler and the admin API enqueue.
type Processor struct {
	jobs      *repository.JobLogRepository
	notifLogs *repository.NotificationLogRepository
	retention time.Duration
	logger    zerolog.Logger
}

type JobPayload struct {
	Type   string `json:"type"`
	JobID  string `json:"job_id"`
	UserID string `json:"user_id"`
	Force  string `json:"force"`
}

func NewProcessor(jobs *repository.JobLogRepository, notifLogs *repository.NotificationLogRepository, retention time.Duration, logger zerolog.Logger) *Processor {
	return &Processor{
		jobs:      jobs,
		notifLogs: notifLogs,
		retention: retention,
		logger:    logger,
	}
}

func (p *Processor) Handle(ctx context.Context, msg redis.XMessage) error {
	var payload JobPayload
	if err := decodePayload(msg.Values, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	switch payload.Type {
	case models.JobTypeMLRetrain:
		return p.handleRetrain(ctx, payload)
	case models.JobTypeDataCleanup:
		return p.handleCleanup(ctx, payload)
	default:
		p.logger.Warn().Str("type", payload.Type).Msg("unknown job type")
		return nil
	}
}

func decodePayload(values map[string]interface{}, out *JobPayload) error {
	bytes, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, out)
}

// handleRetrain acknowledges the retrain trigger. The model training itself
// runs in the external ML pipeline, which watches the same job log; this
// service only owns the trigger and its audit trail.
func (p *Processor) handleRetrain(ctx context.Context, payload JobPayload) error {
	if err := p.jobs.MarkRunning(ctx, payload.JobID); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}

	result := map[string]any{
		"dispatched": true,
		"force":      payload.Force == "true",
	}
	if payload.UserID != "" {
		result["user_id"] = payload.UserID
	}

	p.logger.Info().
		Str("job_id", payload.JobID).
		Str("user_id", payload.UserID).
		Msg("retrain trigger dispatched")

	return p.jobs.Complete(ctx, payload.JobID, result)
}

func (p *Processor) handleCleanup(ctx context.Context, payload JobPayload) error {
	if err := p.jobs.MarkRunning(ctx, payload.JobID); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}

	cutoff := time.Now().UTC().Add(-p.retention)
	deleted, err := p.notifLogs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if ferr := p.jobs.Fail(ctx, payload.JobID, err.Error()); ferr != nil {
			p.logger.Error().Err(ferr).Str("job_id", payload.JobID).Msg("job log fail update failed")
		}
		return fmt.Errorf("cleanup notification logs: %w", err)
	}

	p.logger.Info().
		Str("job_id", payload.JobID).
		Int64("deleted", deleted).
		Msg("notification log cleanup finished")

	return p.jobs.Complete(ctx, payload.JobID, map[string]any{
		"deleted_notification_logs": deleted,
		"cutoff":                    cutoff.Format(time.RFC3339),
	})
}
