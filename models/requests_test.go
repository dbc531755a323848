package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskCreateRequest_Defaults(t *testing.T) {
	req := NewTaskCreateRequest("build", "make build", uuid.New().String())
	assert.Equal(t, PriorityNormal, req.Priority)
	assert.Equal(t, DefaultRetryAttempts, req.RetryAttempts)
	assert.Equal(t, DefaultRetryDelay, req.RetryDelay)
	assert.NotNil(t, req.AcceptanceCriteria)
	assert.NotNil(t, req.Environment)
	require.NoError(t, req.Validate())
}

func TestTaskCreateRequest_Validate(t *testing.T) {
	projectID := uuid.New().String()

	tests := []struct {
		name    string
		mutate  func(*TaskCreateRequest)
		wantErr bool
	}{
		{"valid", func(r *TaskCreateRequest) {}, false},
		{"empty name", func(r *TaskCreateRequest) { r.Name = "" }, true},
		{"empty command", func(r *TaskCreateRequest) { r.Command = "" }, true},
		{"non-uuid project id", func(r *TaskCreateRequest) { r.ProjectID = "abc" }, true},
		{"empty project id", func(r *TaskCreateRequest) { r.ProjectID = "" }, true},
		{"bad priority", func(r *TaskCreateRequest) { r.Priority = "Urgent" }, true},
		{"zero timeout", func(r *TaskCreateRequest) { zero := 0; r.Timeout = &zero }, true},
		{"positive timeout", func(r *TaskCreateRequest) { v := 60; r.Timeout = &v }, false},
		{"negative retries", func(r *TaskCreateRequest) { r.RetryAttempts = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewTaskCreateRequest("build", "make build", projectID)
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskUpdateRequest_Payload(t *testing.T) {
	t.Run("empty request produces empty payload", func(t *testing.T) {
		assert.Empty(t, TaskUpdateRequest{}.Payload())
	})

	t.Run("only supplied fields appear", func(t *testing.T) {
		name := "renamed"
		req := TaskUpdateRequest{Name: &name}
		assert.Equal(t, map[string]any{"name": "renamed"}, req.Payload())
	})

	t.Run("zero values are still supplied when pointed at", func(t *testing.T) {
		empty := ""
		retries := 0
		req := TaskUpdateRequest{Description: &empty, RetryAttempts: &retries}
		payload := req.Payload()
		assert.Equal(t, map[string]any{"description": "", "retry_attempts": 0}, payload)
	})

	t.Run("every field maps to its wire name", func(t *testing.T) {
		name, command, desc, specs := "n", "c", "d", "s"
		criteria := []string{"done"}
		priority := PriorityHigh
		status := StatusRunning
		timeout, retries, delay := 30, 2, 5
		env := map[string]string{"K": "V"}
		wd := "/tmp"

		req := TaskUpdateRequest{
			Name: &name, Command: &command, Description: &desc,
			TechnicalSpecs: &specs, AcceptanceCriteria: &criteria,
			Priority: &priority, Status: &status,
			Timeout: &timeout, RetryAttempts: &retries, RetryDelay: &delay,
			Environment: &env, WorkingDirectory: &wd,
		}

		payload := req.Payload()
		assert.Len(t, payload, 12)
		assert.Equal(t, "n", payload["name"])
		assert.Equal(t, PriorityHigh, payload["priority"])
		assert.Equal(t, StatusRunning, payload["status"])
		assert.Equal(t, []string{"done"}, payload["acceptance_criteria"])
		assert.Equal(t, map[string]string{"K": "V"}, payload["environment"])
	})
}

func TestTaskUpdateRequest_Validate(t *testing.T) {
	empty := ""
	err := TaskUpdateRequest{Name: &empty}.Validate()
	assert.Error(t, err, "a supplied name must be non-empty")

	bad := TaskPriority("Urgent")
	err = TaskUpdateRequest{Priority: &bad}.Validate()
	assert.Error(t, err)

	assert.NoError(t, TaskUpdateRequest{}.Validate())
}

func TestProjectCreateRequest_Validate(t *testing.T) {
	req := NewProjectCreateRequest("Platform")
	require.NoError(t, req.Validate())
	assert.NotNil(t, req.Tags)

	assert.Error(t, ProjectCreateRequest{}.Validate())
}

func TestProjectUpdateRequest_Payload(t *testing.T) {
	due := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	status := ProjectCompleted
	req := ProjectUpdateRequest{Status: &status, DueDate: &due}

	payload := req.Payload()
	assert.Equal(t, ProjectCompleted, payload["status"])
	assert.Equal(t, "2025-09-01T00:00:00Z", payload["due_date"])
	assert.NotContains(t, payload, "name")
}

func TestTaskFilters_Values(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		values := TaskFilters{}.Values()
		assert.Equal(t, "100", values.Get("limit"))
		assert.Equal(t, "0", values.Get("offset"))
		assert.Empty(t, values.Get("status"))
	})

	t.Run("all filters set", func(t *testing.T) {
		status := StatusPending
		projectID := uuid.New().String()
		priority := PriorityCritical
		taskType := TypeScheduled
		filters := TaskFilters{
			Status:    &status,
			ProjectID: &projectID,
			Priority:  &priority,
			TaskType:  &taskType,
			Limit:     25,
			Offset:    50,
		}

		values := filters.Values()
		assert.Equal(t, "Pending", values.Get("status"))
		assert.Equal(t, projectID, values.Get("project_id"))
		assert.Equal(t, "Critical", values.Get("priority"))
		assert.Equal(t, "Scheduled", values.Get("task_type"))
		assert.Equal(t, "25", values.Get("limit"))
		assert.Equal(t, "50", values.Get("offset"))
	})
}

func TestTaskFilters_Validate(t *testing.T) {
	bad := "not-a-uuid"
	assert.Error(t, TaskFilters{ProjectID: &bad}.Validate())

	good := uuid.New().String()
	assert.NoError(t, TaskFilters{ProjectID: &good}.Validate())
}
