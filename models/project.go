package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the possible statuses of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
	ProjectOnHold    ProjectStatus = "OnHold"
)

// ProjectStatuses lists the valid project statuses.
var ProjectStatuses = []ProjectStatus{
	ProjectPlanning, ProjectActive, ProjectCompleted, ProjectCancelled, ProjectOnHold,
}

// ParseProjectStatus maps a wire string to a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	for _, st := range ProjectStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown project status %q", s)
}

func (s *ProjectStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseProjectStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Project groups related tasks. Like tasks, projects are server-owned.
type Project struct {
	ID          uuid.UUID      `json:"id" validate:"required"`
	Name        string         `json:"name" validate:"required,min=1"`
	Description *string        `json:"description,omitempty"`
	Status      ProjectStatus  `json:"status,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
