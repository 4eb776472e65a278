package models

import "time"

const (
	JobTypeMLRetrain   = "ml_retrain"
	JobTypeDataCleanup = "data_cleanup"

	JobTriggerManual    = "manual"
	JobTriggerScheduler = "scheduler"

	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// AdminJobLog records one background job trigger and its outcome.
type AdminJobLog struct {
	ID           string         `bson:"_id"`
	JobType      string         `bson:"job_type"`
	TriggeredBy  string         `bson:"triggered_by"`
	StartTime    time.Time      `bson:"start_time"`
	EndTime      *time.Time     `bson:"end_time,omitempty"`
	Status       string         `bson:"status"`
	Parameters   map[string]any `bson:"parameters"`
	Result       map[string]any `bson:"result,omitempty"`
	ErrorMessage *string        `bson:"error_message,omitempty"`
}

// NotificationLog records one notification handed to the delivery pipeline.
type NotificationLog struct {
	ID           string         `bson:"_id"`
	UserID       string         `bson:"user_id"`
	MessageType  string         `bson:"message_type"`
	Timestamp    time.Time      `bson:"timestamp"`
	Status       string         `bson:"status"`
	Channel      string         `bson:"channel"`
	Payload      map[string]any `bson:"payload"`
	ErrorMessage *string        `bson:"error_message,omitempty"`
}
