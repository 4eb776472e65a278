package models

import "time"

// Feedback types form a closed enum, unlike session status.
const (
	FeedbackTypeIsWork             = "is_work"
	FeedbackTypeDistractionIgnored = "distraction_ignored"
)

func ValidFeedbackType(t string) bool {
	return t == FeedbackTypeIsWork || t == FeedbackTypeDistractionIgnored
}

// Feedback is a user's judgment about a past intervention tied to an event.
type Feedback struct {
	ID           string    `bson:"_id"`
	UserID       string    `bson:"user_id"`
	EventID      string    `bson:"event_id"`
	FeedbackType string    `bson:"feedback_type"`
	Timestamp    time.Time `bson:"timestamp"`
}

func (f Feedback) Owner() string { return f.UserID }
