package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/taskqueue/taskqueue-go/models"
)

const projectsEndpoint = "/api/projects"

// CreateProject validates req and creates a project.
func (c *Client) CreateProject(ctx context.Context, req models.ProjectCreateRequest) (*models.Project, error) {
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	raw, err := c.doRequest(ctx, http.MethodPost, projectsEndpoint, req, nil)
	if err != nil {
		return nil, err
	}
	return decodeProject(raw)
}

// GetProject fetches a project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	raw, err := c.doRequest(ctx, http.MethodGet, projectsEndpoint+"/"+projectID, nil, nil)
	if err != nil {
		return nil, projectNotFoundOn404(projectID, err)
	}
	return decodeProject(raw)
}

// ListProjects fetches all projects. Both list response shapes are
// accepted: a bare array or an envelope with a "projects" field.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	raw, err := c.doRequest(ctx, http.MethodGet, projectsEndpoint, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Project](raw, "projects")
}

// UpdateProject sends the supplied fields of req as a partial update.
func (c *Client) UpdateProject(ctx context.Context, projectID string, req models.ProjectUpdateRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, NewValidationError(err.Error())
	}

	raw, err := c.doRequest(ctx, http.MethodPut, projectsEndpoint+"/"+projectID, req.Payload(), nil)
	if err != nil {
		return nil, projectNotFoundOn404(projectID, err)
	}
	return decodeProject(raw)
}

// DeleteProject deletes a project by id.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, projectsEndpoint+"/"+projectID, nil, nil)
	if err != nil {
		return projectNotFoundOn404(projectID, err)
	}
	return nil
}

func decodeProject(raw json.RawMessage) (*models.Project, error) {
	var project models.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return nil, &RequestError{Message: "decode project response", Err: err}
	}
	return &project, nil
}

// projectNotFoundOn404 upgrades a generic 404 into a ProjectNotFoundError
// naming the id. Errors the executor already disambiguated pass through
// unchanged.
func projectNotFoundOn404(projectID string, err error) error {
	var tnf *TaskNotFoundError
	var pnf *ProjectNotFoundError
	if errors.As(err, &tnf) || errors.As(err, &pnf) {
		return err
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return &ProjectNotFoundError{APIError{
			Message:    fmt.Sprintf("Project %s not found", projectID),
			StatusCode: http.StatusNotFound,
			Body:       apiErr.Body,
		}}
	}
	return err
}
