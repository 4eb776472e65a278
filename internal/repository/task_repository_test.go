package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildTaskUpdateSparse(t *testing.T) {
	name := "write report"
	status := "completed"

	set := buildTaskUpdate(TaskPatch{Name: &name, Status: &status})

	assert.Equal(t, "write report", set["name"])
	assert.Equal(t, "completed", set["status"])
	assert.NotContains(t, set, "description")
	assert.NotContains(t, set, "due_date")
}

func TestBuildTaskUpdateEmpty(t *testing.T) {
	assert.Empty(t, buildTaskUpdate(TaskPatch{}))
}

func TestBuildTaskUpdateDueDateUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	due := time.Date(2025, 3, 1, 12, 0, 0, 0, loc)

	set := buildTaskUpdate(TaskPatch{DueDate: &due})

	assert.Equal(t, due.UTC(), set["due_date"])
}

func TestBuildTaskUpdateArguments(t *testing.T) {
	set := buildTaskUpdate(TaskPatch{TargetArguments: []string{"--profile", "deep-work"}})
	assert.Equal(t, []string{"--profile", "deep-work"}, set["target_arguments"])
}
