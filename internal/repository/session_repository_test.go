package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"forcefocus/api/internal/models"
)

func TestComputeDuration(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want float64
	}{
		{name: "one hour one minute one second", end: start.Add(1*time.Hour + time.Minute + time.Second), want: 3661},
		{name: "zero length", end: start, want: 0},
		{name: "sub second", end: start.Add(500 * time.Millisecond), want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := computeDuration(start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDurationRejectsNegative(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := computeDuration(start, start.Add(-time.Second))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "end_time")
}

func TestCurrentSessionQuery(t *testing.T) {
	assert.Equal(t, bson.M{
		"user_id": "user-1",
		"status":  models.SessionStatusActive,
	}, activeSessionFilter("user-1"))

	// Descending start-time order makes the single result the
	// newest-started active session.
	assert.Equal(t, bson.D{{Key: "start_time", Value: -1}}, newestFirst)
}

func TestBuildSessionUpdateEmptyPatch(t *testing.T) {
	set, err := buildSessionUpdate(models.Session{}, SessionPatch{})
	require.NoError(t, err)
	assert.Empty(t, set, "empty patch must not produce a write")
}

func TestBuildSessionUpdateEndTimeDerivesDuration(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)

	set, err := buildSessionUpdate(models.Session{StartTime: start}, SessionPatch{EndTime: &end})
	require.NoError(t, err)

	assert.Equal(t, end, set["end_time"])
	assert.Equal(t, float64(1500), set["duration"])
}

func TestBuildSessionUpdateStatusWrittenVerbatim(t *testing.T) {
	status := "paused"

	set, err := buildSessionUpdate(models.Session{}, SessionPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "paused", set["status"])
}

func TestBuildSessionUpdateRejectsNegativeInterruptions(t *testing.T) {
	count := -1

	_, err := buildSessionUpdate(models.Session{}, SessionPatch{InterruptionCount: &count})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBuildSessionUpdateRejectsEndBeforeStart(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Minute)

	_, err := buildSessionUpdate(models.Session{StartTime: start}, SessionPatch{EndTime: &end})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
