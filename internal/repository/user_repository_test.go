package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSettingsSetDoc(t *testing.T) {
	set := settingsSetDoc(map[string]any{
		"notification_sound": true,
		"focus_minutes":      25,
	})

	assert.Equal(t, bson.M{
		"settings.notification_sound": true,
		"settings.focus_minutes":      25,
	}, set)
}

func TestSettingsSetDocEmpty(t *testing.T) {
	assert.Empty(t, settingsSetDoc(map[string]any{}))
}

func TestFCMTokenRemoval(t *testing.T) {
	token := "device-token-1"

	tests := []struct {
		name  string
		token *string
		want  bson.M
	}{
		{
			name:  "named token is pulled",
			token: &token,
			want:  bson.M{"$pull": bson.M{"fcm_tokens": "device-token-1"}},
		},
		{
			name:  "nil token clears the whole set",
			token: nil,
			want:  bson.M{"$set": bson.M{"fcm_tokens": []string{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fcmTokenRemoval(tt.token))
		})
	}
}

func TestFCMTokenRemovalIdempotent(t *testing.T) {
	// $pull of an absent element is a no-op, so removing the same token
	// twice builds the identical update both times.
	token := "device-token-1"
	assert.Equal(t, fcmTokenRemoval(&token), fcmTokenRemoval(&token))
}

func TestNewUserDoc(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	user := newUserDoc("u@example.com", "google-sub-1", now)

	assert.Equal(t, "u@example.com", user.Email)
	assert.Equal(t, "google-sub-1", user.GoogleID)
	assert.Equal(t, now, user.CreatedAt)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, now, *user.LastLoginAt)

	// Present-but-empty collections, never nil.
	assert.NotNil(t, user.Settings)
	assert.Empty(t, user.Settings)
	assert.Equal(t, []string{}, user.FCMTokens)
	assert.Equal(t, []string{}, user.BlockedApps)

	_, ok := user.ID.(bson.ObjectID)
	assert.True(t, ok, "new users are keyed by a native ObjectID")
}
