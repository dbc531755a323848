package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/taskqueue/taskqueue-go/models"
)

const tasksEndpoint = "/api/tasks"

// CreateTask validates req and creates a task. Zero-value optional fields
// get their documented defaults (priority Normal, 3 retry attempts, 30s
// retry delay, empty acceptance criteria and environment) before
// validation, so a bare struct literal with name, command and project id is
// enough.
func (c *Client) CreateTask(ctx context.Context, req models.TaskCreateRequest) (*models.Task, error) {
	applyCreateDefaults(&req)
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	raw, err := c.doRequest(ctx, http.MethodPost, tasksEndpoint, req, nil)
	if err != nil {
		return nil, err
	}
	return decodeTask(raw)
}

// GetTask fetches a task by id.
func (c *Client) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	raw, err := c.doRequest(ctx, http.MethodGet, tasksEndpoint+"/"+taskID, nil, nil)
	if err != nil {
		return nil, taskNotFoundOn404(taskID, err)
	}
	return decodeTask(raw)
}

// ListTasks fetches tasks matching filters. Both list response shapes are
// accepted: a bare array or an envelope with a "tasks" field.
func (c *Client) ListTasks(ctx context.Context, filters models.TaskFilters) ([]models.Task, error) {
	if err := filters.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	raw, err := c.doRequest(ctx, http.MethodGet, tasksEndpoint, nil, filters.Values())
	if err != nil {
		return nil, err
	}
	return decodeList[models.Task](raw, "tasks")
}

// UpdateTask sends the supplied fields of req as a partial update. Unset
// fields are absent from the payload and leave server state untouched.
func (c *Client) UpdateTask(ctx context.Context, taskID string, req models.TaskUpdateRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	raw, err := c.doRequest(ctx, http.MethodPut, tasksEndpoint+"/"+taskID, req.Payload(), nil)
	if err != nil {
		return nil, taskNotFoundOn404(taskID, err)
	}
	return decodeTask(raw)
}

// CancelTask asks the server to cancel a running task and returns the
// task's new state.
func (c *Client) CancelTask(ctx context.Context, taskID string) (*models.Task, error) {
	raw, err := c.doRequest(ctx, http.MethodPost, tasksEndpoint+"/"+taskID+"/cancel", nil, nil)
	if err != nil {
		return nil, taskNotFoundOn404(taskID, err)
	}
	return decodeTask(raw)
}

// DeleteTask deletes a task by id.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, tasksEndpoint+"/"+taskID, nil, nil)
	if err != nil {
		return taskNotFoundOn404(taskID, err)
	}
	return nil
}

// SkippedTask records one batch entry whose creation call failed after
// validation had already passed.
type SkippedTask struct {
	Index int
	Name  string
	Err   error
}

// BatchResult is the outcome of a batch creation: the tasks that were
// created, in input order, and the entries that were skipped.
type BatchResult struct {
	Created []models.Task
	Skipped []SkippedTask
}

// CreateTasks creates several tasks sequentially. Every entry is validated
// up front; any malformed entry fails the whole batch with a validation
// error before a single request is issued. Once validation passes, an
// individual creation failure does not abort the batch: the entry is
// recorded in Skipped and the remaining entries are still attempted. There
// is no rollback of already-created tasks.
func (c *Client) CreateTasks(ctx context.Context, reqs []models.TaskCreateRequest) (*BatchResult, error) {
	for i := range reqs {
		applyCreateDefaults(&reqs[i])
		if err := reqs[i].Validate(); err != nil {
			return nil, NewValidationError(fmt.Sprintf("invalid task data at index %d: %s", i, err))
		}
	}

	result := &BatchResult{}
	for i, req := range reqs {
		task, err := c.CreateTask(ctx, req)
		if err != nil {
			c.log.WithField("task", req.Name).WithError(err).Warn("batch create: task skipped")
			result.Skipped = append(result.Skipped, SkippedTask{Index: i, Name: req.Name, Err: err})
			continue
		}
		result.Created = append(result.Created, *task)
	}
	return result, nil
}

// WaitForCompletion polls the task every 2 seconds until it reaches a
// terminal status (Completed, Failed or Cancelled) or timeout elapses. A
// non-positive timeout falls back to the 300 second default. The poll
// interval is fixed; only the overall deadline bounds total work.
func (c *Client) WaitForCompletion(ctx context.Context, taskID string, timeout time.Duration) (*models.Task, error) {
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}

	start := time.Now()
	for time.Since(start) < timeout {
		task, err := c.GetTask(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if task.Status.IsTerminal() {
			return task, nil
		}
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}

	return nil, &TimeoutError{
		Message: fmt.Sprintf("task %s did not complete within %s", taskID, timeout),
	}
}

func applyCreateDefaults(req *models.TaskCreateRequest) {
	if req.Priority == "" {
		req.Priority = models.PriorityNormal
	}
	if req.RetryAttempts == 0 {
		req.RetryAttempts = models.DefaultRetryAttempts
	}
	if req.RetryDelay == 0 {
		req.RetryDelay = models.DefaultRetryDelay
	}
	if req.AcceptanceCriteria == nil {
		req.AcceptanceCriteria = []string{}
	}
	if req.Environment == nil {
		req.Environment = map[string]string{}
	}
}

func decodeTask(raw json.RawMessage) (*models.Task, error) {
	var task models.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, &RequestError{Message: "decode task response", Err: err}
	}
	return &task, nil
}

// taskNotFoundOn404 upgrades a generic 404 into a TaskNotFoundError naming
// the id. Errors the executor already disambiguated pass through unchanged.
func taskNotFoundOn404(taskID string, err error) error {
	var tnf *TaskNotFoundError
	var pnf *ProjectNotFoundError
	if errors.As(err, &tnf) || errors.As(err, &pnf) {
		return err
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return &TaskNotFoundError{APIError{
			Message:    fmt.Sprintf("Task %s not found", taskID),
			StatusCode: http.StatusNotFound,
			Body:       apiErr.Body,
		}}
	}
	return err
}
