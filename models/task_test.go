package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatus_IsTerminal(t *testing.T) {
	terminal := map[TaskStatus]bool{
		StatusCompleted: true,
		StatusFailed:    true,
		StatusCancelled: true,
	}
	for _, status := range TaskStatuses {
		assert.Equal(t, terminal[status], status.IsTerminal(), "status %s", status)
	}
}

func TestParseTaskStatus(t *testing.T) {
	status, err := ParseTaskStatus("Running")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status)

	_, err = ParseTaskStatus("running")
	assert.Error(t, err, "status values are case sensitive")

	_, err = ParseTaskStatus("Exploded")
	assert.Error(t, err)
}

func TestTaskStatus_UnmarshalRejectsUnknown(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"name": "x", "command": "ls", "status": "Bogus"}`), &task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bogus")
}

func TestParseTaskPriority(t *testing.T) {
	for _, p := range TaskPriorities {
		parsed, err := ParseTaskPriority(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	_, err := ParseTaskPriority("Urgent")
	assert.Error(t, err)
}

func TestParseTaskType(t *testing.T) {
	parsed, err := ParseTaskType("Workflow")
	require.NoError(t, err)
	assert.Equal(t, TypeWorkflow, parsed)

	_, err = ParseTaskType("Cron")
	assert.Error(t, err)
}

func TestTask_DecodesWireFormat(t *testing.T) {
	raw := `{
		"id": "a2a7b5a0-99a1-4a3e-9d3c-0e6f1f6a8b1c",
		"name": "deploy",
		"command": "make deploy",
		"description": "ship it",
		"priority": "High",
		"status": "Running",
		"task_type": "Simple",
		"retry_attempts": 2,
		"retry_delay": 10,
		"created_at": "2025-08-01T10:00:00Z",
		"updated_at": "2025-08-01T10:05:00Z",
		"result": {"exit_code": 0}
	}`

	var task Task
	require.NoError(t, json.Unmarshal([]byte(raw), &task))
	assert.Equal(t, "a2a7b5a0-99a1-4a3e-9d3c-0e6f1f6a8b1c", task.ID.String())
	assert.Equal(t, "deploy", task.Name)
	require.NotNil(t, task.Description)
	assert.Equal(t, "ship it", *task.Description)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, StatusRunning, task.Status)
	assert.Equal(t, TypeSimple, task.TaskType)
	assert.Equal(t, float64(0), task.Result["exit_code"])
}

func TestProjectStatus(t *testing.T) {
	status, err := ParseProjectStatus("OnHold")
	require.NoError(t, err)
	assert.Equal(t, ProjectOnHold, status)

	var project Project
	err = json.Unmarshal([]byte(`{"name": "x", "status": "Archived"}`), &project)
	assert.Error(t, err)
}
