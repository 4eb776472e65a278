package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int64
		want  int64
	}{
		{name: "within bounds", limit: 250, want: 250},
		{name: "at max", limit: maxEventLimit, want: maxEventLimit},
		{name: "above max", limit: 5000, want: maxEventLimit},
		{name: "zero", limit: 0, want: 1},
		{name: "negative", limit: -10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampLimit(tt.limit, maxEventLimit))
		})
	}
}

func TestBuildEventFilterOwnerOnly(t *testing.T) {
	filter := buildEventFilter("user-1", EventQuery{})
	assert.Equal(t, bson.M{"user_id": "user-1"}, filter)
}

func TestBuildEventFilterSessionScope(t *testing.T) {
	sessionID := "507f1f77bcf86cd799439011"

	filter := buildEventFilter("user-1", EventQuery{SessionID: &sessionID})

	assert.Equal(t, "user-1", filter["user_id"])
	assert.Equal(t, sessionID, filter["session_id"])
}

func TestBuildEventFilterTimeWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	filter := buildEventFilter("user-1", EventQuery{StartTime: &start, EndTime: &end})

	assert.Equal(t, bson.M{"$gte": start, "$lte": end}, filter["timestamp"])
}

func TestBuildEventFilterOpenEndedWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	filter := buildEventFilter("user-1", EventQuery{StartTime: &start})

	assert.Equal(t, bson.M{"$gte": start}, filter["timestamp"])
}
