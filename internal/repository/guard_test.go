package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"forcefocus/api/internal/models"
)

func TestRequireOwner(t *testing.T) {
	session := models.Session{UserID: "user-a"}

	assert.NoError(t, requireOwner(session, "user-a"))
	assert.ErrorIs(t, requireOwner(session, "user-b"), ErrForbidden)
}
