package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied to task creation requests when the caller leaves the
// corresponding fields unset.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 30
	DefaultListLimit     = 100
)

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// TaskCreateRequest is the payload for creating a task. Name, Command and
// ProjectID are required; everything else has a server-compatible default.
type TaskCreateRequest struct {
	Name               string            `json:"name" validate:"required,min=1"`
	Command            string            `json:"command" validate:"required,min=1"`
	ProjectID          string            `json:"project_id" validate:"required,uuid4"`
	Description        *string           `json:"description,omitempty"`
	TechnicalSpecs     *string           `json:"technical_specs,omitempty"`
	AcceptanceCriteria []string          `json:"acceptance_criteria"`
	Priority           TaskPriority      `json:"priority" validate:"required,oneof=Low Normal High Critical"`
	Timeout            *int              `json:"timeout,omitempty" validate:"omitempty,gt=0"`
	RetryAttempts      int               `json:"retry_attempts" validate:"gte=0"`
	RetryDelay         int               `json:"retry_delay" validate:"gte=0"`
	Environment        map[string]string `json:"environment"`
	WorkingDirectory   *string           `json:"working_directory,omitempty"`
}

// NewTaskCreateRequest builds a creation request with defaults applied:
// priority Normal, 3 retry attempts, 30s retry delay, empty acceptance
// criteria and environment.
func NewTaskCreateRequest(name, command, projectID string) TaskCreateRequest {
	return TaskCreateRequest{
		Name:               name,
		Command:            command,
		ProjectID:          projectID,
		AcceptanceCriteria: []string{},
		Priority:           PriorityNormal,
		RetryAttempts:      DefaultRetryAttempts,
		RetryDelay:         DefaultRetryDelay,
		Environment:        map[string]string{},
	}
}

// Validate checks the request shape before it leaves the client.
func (r TaskCreateRequest) Validate() error {
	return ValidateStruct(r)
}

// TaskUpdateRequest is the payload for updating a task. Every field is
// optional; nil means "not supplied" and the field is left untouched on the
// server. The distinction between nil and a zero value matters here, which
// is why everything is a pointer.
type TaskUpdateRequest struct {
	Name               *string            `json:"name,omitempty" validate:"omitempty,min=1"`
	Command            *string            `json:"command,omitempty" validate:"omitempty,min=1"`
	Description        *string            `json:"description,omitempty"`
	TechnicalSpecs     *string            `json:"technical_specs,omitempty"`
	AcceptanceCriteria *[]string          `json:"acceptance_criteria,omitempty"`
	Priority           *TaskPriority      `json:"priority,omitempty" validate:"omitempty,oneof=Low Normal High Critical"`
	Status             *TaskStatus        `json:"status,omitempty"`
	Timeout            *int               `json:"timeout,omitempty" validate:"omitempty,gt=0"`
	RetryAttempts      *int               `json:"retry_attempts,omitempty" validate:"omitempty,gte=0"`
	RetryDelay         *int               `json:"retry_delay,omitempty" validate:"omitempty,gte=0"`
	Environment        *map[string]string `json:"environment,omitempty"`
	WorkingDirectory   *string            `json:"working_directory,omitempty"`
}

// Validate checks the supplied fields; unset fields are skipped.
func (r TaskUpdateRequest) Validate() error {
	return ValidateStruct(r)
}

// Payload returns the diff containing only supplied fields. Unset fields are
// absent from the map entirely, never null, so a partial update cannot
// overwrite server state with empty values.
func (r TaskUpdateRequest) Payload() map[string]any {
	payload := map[string]any{}
	if r.Name != nil {
		payload["name"] = *r.Name
	}
	if r.Command != nil {
		payload["command"] = *r.Command
	}
	if r.Description != nil {
		payload["description"] = *r.Description
	}
	if r.TechnicalSpecs != nil {
		payload["technical_specs"] = *r.TechnicalSpecs
	}
	if r.AcceptanceCriteria != nil {
		payload["acceptance_criteria"] = *r.AcceptanceCriteria
	}
	if r.Priority != nil {
		payload["priority"] = *r.Priority
	}
	if r.Status != nil {
		payload["status"] = *r.Status
	}
	if r.Timeout != nil {
		payload["timeout"] = *r.Timeout
	}
	if r.RetryAttempts != nil {
		payload["retry_attempts"] = *r.RetryAttempts
	}
	if r.RetryDelay != nil {
		payload["retry_delay"] = *r.RetryDelay
	}
	if r.Environment != nil {
		payload["environment"] = *r.Environment
	}
	if r.WorkingDirectory != nil {
		payload["working_directory"] = *r.WorkingDirectory
	}
	return payload
}

// ProjectCreateRequest is the payload for creating a project.
type ProjectCreateRequest struct {
	Name        string     `json:"name" validate:"required,min=1"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags"`
}

// NewProjectCreateRequest builds a project creation request with an empty
// tag set.
func NewProjectCreateRequest(name string) ProjectCreateRequest {
	return ProjectCreateRequest{Name: name, Tags: []string{}}
}

// Validate checks the request shape before it leaves the client.
func (r ProjectCreateRequest) Validate() error {
	return ValidateStruct(r)
}

// ProjectUpdateRequest is the payload for updating a project. Same
// supplied-vs-absent semantics as TaskUpdateRequest.
type ProjectUpdateRequest struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	Tags        *[]string      `json:"tags,omitempty"`
}

// Validate checks the supplied fields; unset fields are skipped.
func (r ProjectUpdateRequest) Validate() error {
	return ValidateStruct(r)
}

// Payload returns the diff containing only supplied fields.
func (r ProjectUpdateRequest) Payload() map[string]any {
	payload := map[string]any{}
	if r.Name != nil {
		payload["name"] = *r.Name
	}
	if r.Description != nil {
		payload["description"] = *r.Description
	}
	if r.Status != nil {
		payload["status"] = *r.Status
	}
	if r.DueDate != nil {
		payload["due_date"] = r.DueDate.Format(time.RFC3339)
	}
	if r.Tags != nil {
		payload["tags"] = *r.Tags
	}
	return payload
}

// TaskFilters narrows task listings. Zero-value filters are omitted from the
// query string.
type TaskFilters struct {
	Status    *TaskStatus   `validate:"omitempty"`
	ProjectID *string       `validate:"omitempty,uuid4"`
	Priority  *TaskPriority `validate:"omitempty"`
	TaskType  *TaskType     `validate:"omitempty"`
	Limit     int           `validate:"gte=0"`
	Offset    int           `validate:"gte=0"`
}

// Validate checks the filter shape.
func (f TaskFilters) Validate() error {
	return ValidateStruct(f)
}

// Values encodes the filters as URL query parameters. Limit defaults to 100
// when unset.
func (f TaskFilters) Values() url.Values {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(f.Offset))
	if f.Status != nil {
		params.Set("status", string(*f.Status))
	}
	if f.ProjectID != nil {
		params.Set("project_id", *f.ProjectID)
	}
	if f.Priority != nil {
		params.Set("priority", string(*f.Priority))
	}
	if f.TaskType != nil {
		params.Set("task_type", string(*f.TaskType))
	}
	return params
}
