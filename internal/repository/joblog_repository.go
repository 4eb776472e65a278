package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"forcefocus/api/internal/ids"
	"forcefocus/api/internal/models"
)

// JobLogRepository tracks background job triggers. Job logs are admin
// scoped, not user owned, so reads skip the ownership guard.
type JobLogRepository struct {
	db *mongo.Database
}

func NewJobLogRepository(db *mongo.Database) *JobLogRepository {
	return &JobLogRepository{db: db}
}

func (r *JobLogRepository) col() *mongo.Collection {
	return r.db.Collection("admin_job_logs")
}

func (r *JobLogRepository) Create(ctx context.Context, jobType string, triggeredBy string, params map[string]any) (models.AdminJobLog, error) {
	if params == nil {
		params = map[string]any{}
	}

	job := models.AdminJobLog{
		ID:          ids.New(),
		JobType:     jobType,
		TriggeredBy: triggeredBy,
		StartTime:   time.Now().UTC(),
		Status:      models.JobStatusPending,
		Parameters:  params,
	}

	if _, err := r.col().InsertOne(ctx, job); err != nil {
		return models.AdminJobLog{}, err
	}
	return job, nil
}

func (r *JobLogRepository) Get(ctx context.Context, jobID string) (models.AdminJobLog, error) {
	var job models.AdminJobLog
	err := r.col().FindOne(ctx, bson.M{"_id": jobID}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.AdminJobLog{}, ErrNotFound
	}
	if err != nil {
		return models.AdminJobLog{}, err
	}
	return job, nil
}

func (r *JobLogRepository) MarkRunning(ctx context.Context, jobID string) error {
	return r.setStatus(ctx, jobID, bson.M{"status": models.JobStatusRunning})
}

func (r *JobLogRepository) Complete(ctx context.Context, jobID string, result map[string]any) error {
	return r.setStatus(ctx, jobID, bson.M{
		"status":   models.JobStatusCompleted,
		"end_time": time.Now().UTC(),
		"result":   result,
	})
}

func (r *JobLogRepository) Fail(ctx context.Context, jobID string, message string) error {
	return r.setStatus(ctx, jobID, bson.M{
		"status":        models.JobStatusFailed,
		"end_time":      time.Now().UTC(),
		"error_message": message,
	})
}

func (r *JobLogRepository) setStatus(ctx context.Context, jobID string, set bson.M) error {
	res, err := r.col().UpdateOne(ctx, bson.M{"_id": jobID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
