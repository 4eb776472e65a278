package models

import "time"

// Event is an immutable activity-tracking record. Its _id is an opaque
// string minted by the store at creation time, never a database ObjectID.
// session_id is stored explicitly (null when the event is unscoped).
type Event struct {
	ID             string             `bson:"_id"`
	UserID         string             `bson:"user_id"`
	SessionID      *string            `bson:"session_id"`
	Timestamp      time.Time          `bson:"timestamp"`
	AppName        *string            `bson:"app_name,omitempty"`
	WindowTitle    *string            `bson:"window_title,omitempty"`
	ActivityVector map[string]float64 `bson:"activity_vector,omitempty"`
}

func (e Event) Owner() string { return e.UserID }
