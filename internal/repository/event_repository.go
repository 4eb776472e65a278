package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"forcefocus/api/internal/ids"
	"forcefocus/api/internal/models"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// EventRepository is append-only: events are never updated or deleted.
type EventRepository struct {
	db *mongo.Database
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) col() *mongo.Collection {
	return r.db.Collection("events")
}

type EventInput struct {
	SessionID      *string
	Timestamp      time.Time
	AppName        *string
	WindowTitle    *string
	ActivityVector map[string]float64
}

// Create mints the event id and injects the authenticated owner. Any owner
// declared in the request body never reaches this point.
func (r *EventRepository) Create(ctx context.Context, userID string, in EventInput) (string, error) {
	event := models.Event{
		ID:             ids.New(),
		UserID:         userID,
		SessionID:      in.SessionID,
		Timestamp:      in.Timestamp.UTC(),
		AppName:        in.AppName,
		WindowTitle:    in.WindowTitle,
		ActivityVector: in.ActivityVector,
	}

	if _, err := r.col().InsertOne(ctx, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

func (r *EventRepository) Get(ctx context.Context, callerID string, eventID string) (models.Event, error) {
	var event models.Event
	if err := r.col().FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}

	if err := requireOwner(event, callerID); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

type EventQuery struct {
	SessionID *string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int64
}

func (r *EventRepository) List(ctx context.Context, userID string, q EventQuery) ([]models.Event, error) {
	limit := q.Limit
	if limit == 0 {
		limit = defaultEventLimit
	}
	limit = clampLimit(limit, maxEventLimit)

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := r.col().Find(ctx, buildEventFilter(userID, q), opts)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// buildEventFilter scopes the query to the owner; list reads never need the
// ownership guard because the owner id is part of the predicate itself.
func buildEventFilter(userID string, q EventQuery) bson.M {
	filter := bson.M{"user_id": userID}

	if q.SessionID != nil {
		filter["session_id"] = *q.SessionID
	}

	ts := bson.M{}
	if q.StartTime != nil {
		ts["$gte"] = q.StartTime.UTC()
	}
	if q.EndTime != nil {
		ts["$lte"] = q.EndTime.UTC()
	}
	if len(ts) > 0 {
		filter["timestamp"] = ts
	}

	return filter
}

// clampLimit bounds a caller-supplied limit to [1, max] so a single request
// cannot drag an unbounded result set out of the store.
func clampLimit(limit int64, max int64) int64 {
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
