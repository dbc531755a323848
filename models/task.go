package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle status of a task. Status transitions
// are owned entirely by the server; the client only observes them.
type TaskStatus string

const (
	StatusPlanning       TaskStatus = "Planning"
	StatusImplementation TaskStatus = "Implementation"
	StatusTestCreation   TaskStatus = "TestCreation"
	StatusTesting        TaskStatus = "Testing"
	StatusAIReview       TaskStatus = "AIReview"
	StatusFinalized      TaskStatus = "Finalized"
	StatusPending        TaskStatus = "Pending"
	StatusRunning        TaskStatus = "Running"
	StatusCompleted      TaskStatus = "Completed"
	StatusFailed         TaskStatus = "Failed"
	StatusCancelled      TaskStatus = "Cancelled"
)

// TaskStatuses lists every status the server can report, in lifecycle order.
var TaskStatuses = []TaskStatus{
	StatusPlanning, StatusImplementation, StatusTestCreation, StatusTesting,
	StatusAIReview, StatusFinalized, StatusPending, StatusRunning,
	StatusCompleted, StatusFailed, StatusCancelled,
}

// ParseTaskStatus maps a wire string to a TaskStatus. Unknown values are an
// error rather than being passed through.
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, st := range TaskStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown task status %q", s)
}

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTaskStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsTerminal reports whether a task in this status will not transition
// further. The completion poller stops on terminal statuses.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityNormal   TaskPriority = "Normal"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

// TaskPriorities lists the valid priorities.
var TaskPriorities = []TaskPriority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}

// ParseTaskPriority maps a wire string to a TaskPriority.
func ParseTaskPriority(s string) (TaskPriority, error) {
	for _, p := range TaskPriorities {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown task priority %q", s)
}

func (p *TaskPriority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTaskPriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// TaskType distinguishes plain tasks from workflow and scheduled ones.
type TaskType string

const (
	TypeSimple    TaskType = "Simple"
	TypeWorkflow  TaskType = "Workflow"
	TypeScheduled TaskType = "Scheduled"
)

// TaskTypes lists the valid task types.
var TaskTypes = []TaskType{TypeSimple, TypeWorkflow, TypeScheduled}

// ParseTaskType maps a wire string to a TaskType.
func ParseTaskType(s string) (TaskType, error) {
	for _, t := range TaskTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown task type %q", s)
}

func (t *TaskType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTaskType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TaskPhase is a historical record of one status the task passed through.
// Phases are append-only and owned by the server.
type TaskPhase struct {
	Phase         TaskStatus       `json:"phase"`
	StartedAt     *time.Time       `json:"started_at,omitempty"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	Documentation *string          `json:"documentation,omitempty"`
	Artifacts     []string         `json:"artifacts,omitempty"`
	AIReviews     []map[string]any `json:"ai_reviews,omitempty"`
}

// Task represents a unit of work as reported by the server. The client holds
// transient, disposable copies fetched per call; there is no client-side
// cache or identity map.
type Task struct {
	ID                 uuid.UUID         `json:"id" validate:"required"`
	Name               string            `json:"name" validate:"required,min=1"`
	Command            string            `json:"command" validate:"required,min=1"`
	Description        *string           `json:"description,omitempty"`
	TechnicalSpecs     *string           `json:"technical_specs,omitempty"`
	AcceptanceCriteria []string          `json:"acceptance_criteria,omitempty"`
	Project            *string           `json:"project,omitempty"`
	TaskType           TaskType          `json:"task_type,omitempty"`
	Priority           TaskPriority      `json:"priority,omitempty"`
	ProjectID          *uuid.UUID        `json:"project_id,omitempty"`
	Dependencies       []map[string]any  `json:"dependencies,omitempty"`
	Timeout            *int              `json:"timeout,omitempty"`
	RetryAttempts      int               `json:"retry_attempts"`
	RetryDelay         int               `json:"retry_delay"`
	Environment        map[string]string `json:"environment,omitempty"`
	WorkingDirectory   *string           `json:"working_directory,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Status             TaskStatus        `json:"status,omitempty"`
	Result             map[string]any    `json:"result,omitempty"`
	Phases             []TaskPhase       `json:"phases,omitempty"`
	CurrentPhase       TaskStatus        `json:"current_phase,omitempty"`
	AIReviewsRequired  int               `json:"ai_reviews_required,omitempty"`
	AIReviewsCompleted int               `json:"ai_reviews_completed,omitempty"`
	Metadata           map[string]any    `json:"metadata,omitempty"`
}
