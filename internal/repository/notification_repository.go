package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"forcefocus/api/internal/ids"
	"forcefocus/api/internal/models"
)

type NotificationLogRepository struct {
	db *mongo.Database
}

func NewNotificationLogRepository(db *mongo.Database) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

func (r *NotificationLogRepository) col() *mongo.Collection {
	return r.db.Collection("notification_logs")
}

func (r *NotificationLogRepository) Create(ctx context.Context, log models.NotificationLog) (models.NotificationLog, error) {
	if log.ID == "" {
		log.ID = ids.New()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	if log.Payload == nil {
		log.Payload = map[string]any{}
	}

	if _, err := r.col().InsertOne(ctx, log); err != nil {
		return models.NotificationLog{}, err
	}
	return log, nil
}

// DeleteOlderThan is the data_cleanup primitive: it drops delivery history
// past the retention window and reports how much went away.
func (r *NotificationLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.col().DeleteMany(ctx, bson.M{
		"timestamp": bson.M{"$lt": cutoff.UTC()},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
