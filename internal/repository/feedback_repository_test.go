package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFeedbackLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int64
		want  int64
	}{
		{name: "default", limit: 0, want: defaultFeedbackLimit},
		{name: "within bounds", limit: 120, want: 120},
		{name: "at max", limit: maxFeedbackLimit, want: maxFeedbackLimit},
		{name: "negative clamped", limit: -5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFeedbackLimit(tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFeedbackLimitRejectsOversized(t *testing.T) {
	_, err := resolveFeedbackLimit(maxFeedbackLimit + 1)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "limit")
}
