package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"forcefocus/api/internal/models"
	"forcefocus/api/internal/repository"
)

// Message types emitted by the session lifecycle.
const (
	MessageSessionStart = "session_start"
	MessageSessionEnd   = "session_end"
)

const (
	channelFCM   = "fcm"
	statusQueued = "queued"
	statusFailed = "failed"
)

// Notifier hands notification payloads to the out-of-process delivery
// pipeline and records each attempt in notification_logs. Delivery itself
// (FCM push) lives outside this service.
type Notifier struct {
	queue  *redis.Client
	logs   *repository.NotificationLogRepository
	stream string
	log    zerolog.Logger
}

func NewNotifier(queue *redis.Client, logs *repository.NotificationLogRepository, stream string, log zerolog.Logger) *Notifier {
	return &Notifier{
		queue:  queue,
		logs:   logs,
		stream: stream,
		log:    log,
	}
}

// Send is fire-and-forget: enqueue or log failures are logged and never
// fail the request that triggered them.
func (n *Notifier) Send(ctx context.Context, userID string, messageType string, data map[string]any) {
	if n == nil || n.queue == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}

	status := statusQueued
	var errMsg *string

	dataJSON, err := json.Marshal(data)
	if err == nil {
		_, err = n.queue.XAdd(ctx, &redis.XAddArgs{
			Stream: n.stream,
			Values: map[string]any{
				"user_id":      userID,
				"message_type": messageType,
				"data":         string(dataJSON),
			},
		}).Result()
	}
	if err != nil {
		n.log.Error().Err(err).
			Str("user_id", userID).
			Str("message_type", messageType).
			Msg("notification enqueue failed")
		status = statusFailed
		msg := err.Error()
		errMsg = &msg
	}

	if _, err := n.logs.Create(ctx, models.NotificationLog{
		UserID:       userID,
		MessageType:  messageType,
		Timestamp:    time.Now().UTC(),
		Status:       status,
		Channel:      channelFCM,
		Payload:      data,
		ErrorMessage: errMsg,
	}); err != nil {
		n.log.Error().Err(err).Msg("notification log write failed")
	}
}
