package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Known session statuses. The field is an open string: updates may write
// other values verbatim.
const (
	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session is one bounded focus period. Duration is derived from
// end_time - start_time in seconds and stays nil until the session closes.
type Session struct {
	ID                bson.ObjectID `bson:"_id,omitempty"`
	UserID            string        `bson:"user_id"`
	TaskID            *string       `bson:"task_id,omitempty"`
	ProfileID         *string       `bson:"profile_id,omitempty"`
	StartTime         time.Time     `bson:"start_time"`
	EndTime           *time.Time    `bson:"end_time,omitempty"`
	Duration          *float64      `bson:"duration,omitempty"`
	Status            string        `bson:"status"`
	GoalDuration      *float64      `bson:"goal_duration,omitempty"`
	InterruptionCount int           `bson:"interruption_count"`
}

func (s Session) Owner() string { return s.UserID }
