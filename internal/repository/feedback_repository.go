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
	defaultFeedbackLimit = 50
	maxFeedbackLimit     = 200
)

type FeedbackRepository struct {
	db *mongo.Database
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) col() *mongo.Collection {
	return r.db.Collection("user_feedback")
}

type FeedbackInput struct {
	EventID      string
	FeedbackType string
	Timestamp    time.Time
}

func (r *FeedbackRepository) Create(ctx context.Context, userID string, in FeedbackInput) (models.Feedback, error) {
	if !models.ValidFeedbackType(in.FeedbackType) {
		return models.Feedback{}, validationf("unknown feedback_type %q", in.FeedbackType)
	}

	fb := models.Feedback{
		ID:           ids.New(),
		UserID:       userID,
		EventID:      in.EventID,
		FeedbackType: in.FeedbackType,
		Timestamp:    in.Timestamp.UTC(),
	}

	if _, err := r.col().InsertOne(ctx, fb); err != nil {
		return models.Feedback{}, err
	}
	return fb, nil
}

func (r *FeedbackRepository) Get(ctx context.Context, callerID string, feedbackID string) (models.Feedback, error) {
	var fb models.Feedback
	if err := r.col().FindOne(ctx, bson.M{"_id": feedbackID}).Decode(&fb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Feedback{}, ErrNotFound
		}
		return models.Feedback{}, err
	}

	if err := requireOwner(fb, callerID); err != nil {
		return models.Feedback{}, err
	}
	return fb, nil
}

type FeedbackQuery struct {
	EventID      *string
	FeedbackType *string
	Limit        int64
}

func (r *FeedbackRepository) List(ctx context.Context, userID string, q FeedbackQuery) ([]models.Feedback, error) {
	limit, err := resolveFeedbackLimit(q.Limit)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": userID}
	if q.EventID != nil {
		filter["event_id"] = *q.EventID
	}
	if q.FeedbackType != nil {
		filter["feedback_type"] = *q.FeedbackType
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := r.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// resolveFeedbackLimit rejects an oversized page outright instead of
// clamping it, unlike the event limit; the low end is still clamped to 1.
func resolveFeedbackLimit(limit int64) (int64, error) {
	if limit > maxFeedbackLimit {
		return 0, validationf("limit must be <= %d", maxFeedbackLimit)
	}
	if limit == 0 {
		return defaultFeedbackLimit, nil
	}
	return clampLimit(limit, maxFeedbackLimit), nil
}

// Delete removes one feedback record after the ownership check; feedback has
// no update operation.
func (r *FeedbackRepository) Delete(ctx context.Context, callerID string, feedbackID string) error {
	if _, err := r.Get(ctx, callerID, feedbackID); err != nil {
		return err
	}

	res, err := r.col().DeleteOne(ctx, bson.M{"_id": feedbackID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
