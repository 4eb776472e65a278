package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"forcefocus/api/internal/models"
)

const defaultSessionLimit = 50

// newestFirst orders sessions by start time descending; combined with the
// active-session filter it makes Current the newest-started active session.
var newestFirst = bson.D{{Key: "start_time", Value: -1}}

func activeSessionFilter(userID string) bson.M {
	return bson.M{
		"user_id": userID,
		"status":  models.SessionStatusActive,
	}
}

type SessionRepository struct {
	db *mongo.Database
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) col() *mongo.Collection {
	return r.db.Collection("sessions")
}

// StartInput carries the caller-declared fields of a new session.
type StartInput struct {
	TaskID       *string
	ProfileID    *string
	StartTime    time.Time
	GoalDuration *float64
}

// Start opens a session in active status. A zero start time falls back to
// the server clock; concurrent starts for the same user are not detected,
// so "at most one active session" stays advisory.
func (r *SessionRepository) Start(ctx context.Context, userID string, in StartInput) (models.Session, error) {
	startTime := in.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}

	session := models.Session{
		ID:                bson.NewObjectID(),
		UserID:            userID,
		TaskID:            in.TaskID,
		ProfileID:         in.ProfileID,
		StartTime:         startTime.UTC(),
		Status:            models.SessionStatusActive,
		GoalDuration:      in.GoalDuration,
		InterruptionCount: 0,
	}

	if _, err := r.col().InsertOne(ctx, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *SessionRepository) List(ctx context.Context, userID string, status string, limit int64) ([]models.Session, error) {
	if limit <= 0 {
		limit = defaultSessionLimit
	}

	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(newestFirst).SetLimit(limit)
	cursor, err := r.col().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) Get(ctx context.Context, callerID string, sessionID string) (models.Session, error) {
	session, _, err := r.fetchOwned(ctx, callerID, sessionID)
	return session, err
}

// Current returns the most recently started session still in active status,
// or ErrNotFound when the user is not mid-session.
func (r *SessionRepository) Current(ctx context.Context, userID string) (models.Session, error) {
	opts := options.FindOne().SetSort(newestFirst)

	var session models.Session
	err := r.col().FindOne(ctx, activeSessionFilter(userID), opts).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// SessionPatch is a sparse update; only non-nil fields are applied.
type SessionPatch struct {
	EndTime           *time.Time
	Status            *string
	GoalDuration      *float64
	InterruptionCount *int
}

// Update applies a sparse patch to an owned session. Supplying an end time
// derives the duration from the stored start time; a patch with nothing set
// is a read-only no-op.
func (r *SessionRepository) Update(ctx context.Context, callerID string, sessionID string, patch SessionPatch) (models.Session, error) {
	existing, filter, err := r.fetchOwned(ctx, callerID, sessionID)
	if err != nil {
		return models.Session{}, err
	}

	set, err := buildSessionUpdate(existing, patch)
	if err != nil {
		return models.Session{}, err
	}
	if len(set) == 0 {
		return existing, nil
	}

	if _, err := r.col().UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
		return models.Session{}, err
	}

	var updated models.Session
	if err := r.col().FindOne(ctx, filter).Decode(&updated); err != nil {
		return models.Session{}, err
	}
	return updated, nil
}

func (r *SessionRepository) fetchOwned(ctx context.Context, callerID string, sessionID string) (models.Session, bson.M, error) {
	filter, err := ResolveIdentifier(sessionID).NativeFilter()
	if err != nil {
		return models.Session{}, nil, err
	}

	var session models.Session
	if err := r.col().FindOne(ctx, filter).Decode(&session); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Session{}, nil, ErrNotFound
		}
		return models.Session{}, nil, err
	}

	if err := requireOwner(session, callerID); err != nil {
		return models.Session{}, nil, err
	}
	return session, filter, nil
}

// buildSessionUpdate turns a sparse patch into a $set document, validating
// against the stored record. An empty result means no write is needed.
func buildSessionUpdate(existing models.Session, patch SessionPatch) (bson.M, error) {
	set := bson.M{}

	if patch.EndTime != nil {
		duration, err := computeDuration(existing.StartTime, *patch.EndTime)
		if err != nil {
			return nil, err
		}
		set["end_time"] = patch.EndTime.UTC()
		set["duration"] = duration
	}

	if patch.Status != nil {
		// Open string: any status value is written verbatim.
		set["status"] = *patch.Status
	}

	if patch.GoalDuration != nil {
		set["goal_duration"] = *patch.GoalDuration
	}

	if patch.InterruptionCount != nil {
		if *patch.InterruptionCount < 0 {
			return nil, validationf("interruption_count must be >= 0")
		}
		set["interruption_count"] = *patch.InterruptionCount
	}

	return set, nil
}

// computeDuration derives the closed-session duration in seconds. An end
// time before the start is rejected outright, never clamped.
func computeDuration(start, end time.Time) (float64, error) {
	sec := end.Sub(start).Seconds()
	if sec < 0 {
		return 0, validationf("end_time must be after start_time")
	}
	return sec, nil
}
