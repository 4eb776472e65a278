package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestResolveIdentifierHexFilter(t *testing.T) {
	raw := "507f1f77bcf86cd799439011"
	oid, err := bson.ObjectIDFromHex(raw)
	require.NoError(t, err)

	filter := ResolveIdentifier(raw).Filter()

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok, "hex id must produce an $or union")
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"_id": oid}, or[0])
	assert.Equal(t, bson.M{"_id": raw}, or[1])
}

func TestResolveIdentifierLiteralFilter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "ksuid", raw: "2bVYZkPQ7WvXG0h3TnS5E9qmAjL"},
		{name: "too short", raw: "507f1f77"},
		{name: "non hex chars", raw: "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ResolveIdentifier(tt.raw).Filter()
			assert.Equal(t, bson.M{"_id": tt.raw}, filter)
		})
	}
}

func TestNativeFilter(t *testing.T) {
	raw := "507f1f77bcf86cd799439011"
	oid, err := bson.ObjectIDFromHex(raw)
	require.NoError(t, err)

	filter, err := ResolveIdentifier(raw).NativeFilter()
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": oid}, filter)
}

func TestNativeFilterRejectsNonHex(t *testing.T) {
	_, err := ResolveIdentifier("not-an-object-id").NativeFilter()
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
