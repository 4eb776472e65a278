package queue

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobTypeOf(t *testing.T) {
	msg := redis.XMessage{Values: map[string]interface{}{"type": "ml_retrain", "job_id": "job-1"}}
	assert.Equal(t, "ml_retrain", jobTypeOf(msg))

	assert.Empty(t, jobTypeOf(redis.XMessage{Values: map[string]interface{}{}}))
	assert.Empty(t, jobTypeOf(redis.XMessage{Values: map[string]interface{}{"type": 7}}))
}

func TestDecodePayload(t *testing.T) {
	values := map[string]interface{}{
		"type":   "ml_retrain",
		"job_id": "2bVYZkPQ7WvXG0h3TnS5E9qmAjL",
		"force":  "true",
	}

	var payload JobPayload
	require.NoError(t, decodePayload(values, &payload))

	assert.Equal(t, "ml_retrain", payload.Type)
	assert.Equal(t, "2bVYZkPQ7WvXG0h3TnS5E9qmAjL", payload.JobID)
	assert.Equal(t, "true", payload.Force)
	assert.Empty(t, payload.UserID)
}

func TestDecodePayloadIgnoresExtraFields(t *testing.T) {
	values := map[string]interface{}{
		"type":    "data_cleanup",
		"job_id":  "job-1",
		"unknown": "ignored",
	}

	var payload JobPayload
	require.NoError(t, decodePayload(values, &payload))
	assert.Equal(t, "data_cleanup", payload.Type)
}
