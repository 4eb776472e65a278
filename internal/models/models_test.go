package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestIDString(t *testing.T) {
	oid, err := bson.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	tests := []struct {
		name string
		id   any
		want string
	}{
		{name: "object id", id: oid, want: "507f1f77bcf86cd799439011"},
		{name: "string", id: "legacy-user-id", want: "legacy-user-id"},
		{name: "nil", id: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IDString(tt.id))
		})
	}
}

func TestUserIDStringBothRepresentations(t *testing.T) {
	oid, err := bson.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	native := User{ID: oid}
	legacy := User{ID: "507f1f77bcf86cd799439011"}

	assert.Equal(t, native.IDString(), legacy.IDString())
}

func TestValidFeedbackType(t *testing.T) {
	assert.True(t, ValidFeedbackType(FeedbackTypeIsWork))
	assert.True(t, ValidFeedbackType(FeedbackTypeDistractionIgnored))
	assert.False(t, ValidFeedbackType("liked_it"))
	assert.False(t, ValidFeedbackType(""))
}
