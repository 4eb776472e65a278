package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const TaskStatusPending = "pending"

// Task is a user-defined unit of work, optionally launchable on the desktop
// via target_executable/target_arguments.
type Task struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	UserID           string        `bson:"user_id"`
	Name             string        `bson:"name"`
	Description      *string       `bson:"description,omitempty"`
	CreatedAt        time.Time     `bson:"created_at"`
	DueDate          *time.Time    `bson:"due_date,omitempty"`
	Status           string        `bson:"status"`
	LinkedSessionID  *string       `bson:"linked_session_id,omitempty"`
	TargetExecutable *string       `bson:"target_executable,omitempty"`
	TargetArguments  []string      `bson:"target_arguments,omitempty"`
}

func (t Task) Owner() string { return t.UserID }
