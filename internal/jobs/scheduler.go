package jobs

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"forcefocus/api/internal/models"
	"forcefocus/api/internal/repository"
)

// Scheduler periodically hands maintenance work to the background worker:
// nightly notification-log cleanup and the nightly retrain trigger.
type Scheduler struct {
	cron   *cron.Cron
	queue  *redis.Client
	logs   *repository.JobLogRepository
	stream string
	log    zerolog.Logger
}

func NewScheduler(queue *redis.Client, logs *repository.JobLogRepository, stream string, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:   c,
		queue:  queue,
		logs:   logs,
		stream: stream,
		log:    log,
	}
}

func (s *Scheduler) Start() error {
	if s.queue == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 3 * * *", s.enqueueCleanup); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 30 3 * * *", s.enqueueRetrain); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits briefly for in-flight runs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) enqueueCleanup() {
	ctx := context.Background()

	job, err := s.logs.Create(ctx, models.JobTypeDataCleanup, models.JobTriggerScheduler, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("cleanup job log create failed")
		return
	}

	if err := Enqueue(ctx, s.queue, s.stream, map[string]any{
		"type":   models.JobTypeDataCleanup,
		"job_id": job.ID,
	}); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("enqueue cleanup failed")
	}
}

func (s *Scheduler) enqueueRetrain() {
	ctx := context.Background()

	job, err := s.logs.Create(ctx, models.JobTypeMLRetrain, models.JobTriggerScheduler, map[string]any{
		"force_retrain": false,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("retrain job log create failed")
		return
	}

	if err := Enqueue(ctx, s.queue, s.stream, map[string]any{
		"type":   models.JobTypeMLRetrain,
		"job_id": job.ID,
		"force":  strconv.FormatBool(false),
	}); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("enqueue retrain failed")
	}
}

// Enqueue appends one job payload to the shared stream; the API handlers use
// it for manually triggered jobs as well.
func Enqueue(ctx context.Context, queue *redis.Client, stream string, payload map[string]any) error {
	if queue == nil {
		return nil
	}
	_, err := queue.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: payload,
	}).Result()
	return err
}
