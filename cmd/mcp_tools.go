/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taskqueue/taskqueue-go/client"
	"github.com/taskqueue/taskqueue-go/models"
)

// CreateTaskParams holds the arguments for the create-task tool.
type CreateTaskParams struct {
	Name          string `json:"name" jsonschema:"the task name"`
	Command       string `json:"command" jsonschema:"the shell command to execute"`
	ProjectID     string `json:"project_id" jsonschema:"UUID of the project the task belongs to"`
	Description   string `json:"description,omitempty" jsonschema:"optional task description"`
	Priority      string `json:"priority,omitempty" jsonschema:"Low, Normal, High or Critical"`
	Timeout       int    `json:"timeout,omitempty" jsonschema:"execution timeout in seconds"`
	RetryAttempts *int   `json:"retry_attempts,omitempty" jsonschema:"number of retry attempts"`
}

// GetTaskParams holds the arguments for the get-task tool.
type GetTaskParams struct {
	ID string `json:"id" jsonschema:"the task ID"`
}

// ListTasksParams holds the arguments for the list-tasks tool.
type ListTasksParams struct {
	Status    string `json:"status,omitempty" jsonschema:"filter by task status"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"filter by project UUID"`
	Priority  string `json:"priority,omitempty" jsonschema:"filter by priority"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of tasks to return"`
	Offset    int    `json:"offset,omitempty" jsonschema:"number of tasks to skip"`
}

// UpdateTaskParams holds the arguments for the update-task tool.
type UpdateTaskParams struct {
	ID          string `json:"id" jsonschema:"the task ID"`
	Name        string `json:"name,omitempty" jsonschema:"new task name"`
	Command     string `json:"command,omitempty" jsonschema:"new command"`
	Description string `json:"description,omitempty" jsonschema:"new description"`
	Priority    string `json:"priority,omitempty" jsonschema:"new priority"`
}

// CancelTaskParams holds the arguments for the cancel-task tool.
type CancelTaskParams struct {
	ID string `json:"id" jsonschema:"the task ID"`
}

// DeleteTaskParams holds the arguments for the delete-task tool.
type DeleteTaskParams struct {
	ID string `json:"id" jsonschema:"the task ID"`
}

// WaitTaskParams holds the arguments for the wait-task tool.
type WaitTaskParams struct {
	ID      string `json:"id" jsonschema:"the task ID"`
	Timeout int    `json:"timeout,omitempty" jsonschema:"timeout in seconds, defaults to 300"`
}

// CreateProjectParams holds the arguments for the create-project tool.
type CreateProjectParams struct {
	Name        string `json:"name" jsonschema:"the project name"`
	Description string `json:"description,omitempty" jsonschema:"optional project description"`
}

// ListProjectsParams holds the arguments for the list-projects tool.
type ListProjectsParams struct{}

// TaskResponse is the structured result for task tools.
type TaskResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Command   string `json:"command"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	ProjectID string `json:"project_id,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TaskListResponse is the structured result for list-tasks.
type TaskListResponse struct {
	Count int            `json:"count"`
	Tasks []TaskResponse `json:"tasks"`
}

// ProjectResponse is the structured result for project tools.
type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ProjectListResponse is the structured result for list-projects.
type ProjectListResponse struct {
	Count    int               `json:"count"`
	Projects []ProjectResponse `json:"projects"`
}

// DeleteResponse is the structured result for delete-task.
type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func taskToResponse(task *models.Task) TaskResponse {
	resp := TaskResponse{
		ID:        task.ID.String(),
		Name:      task.Name,
		Command:   task.Command,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}
	if task.ProjectID != nil {
		resp.ProjectID = task.ProjectID.String()
	}
	return resp
}

func projectToResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:        project.ID.String(),
		Name:      project.Name,
		Status:    string(project.Status),
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
	}
}

func textResult[T any](text string, structured T) *mcpsdk.CallToolResultFor[T] {
	return &mcpsdk.CallToolResultFor[T]{
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		StructuredContent: structured,
	}
}

func registerMCPTools(server *mcpsdk.Server, apiClient *client.Client) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "create-task",
		Description: "Create a new task on the TaskQueue server. Requires a name, a command and the UUID of an existing project. Returns the created task with its server-assigned ID.",
	}, createTaskHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-task",
		Description: "Retrieve full details about a task by ID, including its status, priority and timestamps.",
	}, getTaskHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list-tasks",
		Description: "List tasks with optional filtering by status, project, and priority. Supports limit and offset for paging.",
	}, listTasksHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "update-task",
		Description: "Update properties of an existing task. Supports partial updates - only provide fields you want to change.",
	}, updateTaskHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "cancel-task",
		Description: "Request cancellation of a running task. Cancellation is asynchronous; the returned status reflects the server's view at response time.",
	}, cancelTaskHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "delete-task",
		Description: "Permanently delete a task by ID.",
	}, deleteTaskHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "wait-task",
		Description: "Block until a task reaches a terminal status (Completed, Failed or Cancelled) or the timeout elapses.",
	}, waitTaskHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "create-project",
		Description: "Create a new project to group tasks under.",
	}, createProjectHandler(apiClient))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list-projects",
		Description: "List all projects with their task counts.",
	}, listProjectsHandler(apiClient))
}

func createTaskHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[CreateTaskParams, TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[CreateTaskParams]) (*mcpsdk.CallToolResultFor[TaskResponse], error) {
		args := params.Arguments
		logToolCall("create-task", args)

		req := models.NewTaskCreateRequest(args.Name, args.Command, args.ProjectID)
		if args.Description != "" {
			req.Description = &args.Description
		}
		if args.Priority != "" {
			priority, err := models.ParseTaskPriority(args.Priority)
			if err != nil {
				return nil, err
			}
			req.Priority = priority
		}
		if args.Timeout > 0 {
			req.Timeout = &args.Timeout
		}
		if args.RetryAttempts != nil {
			req.RetryAttempts = *args.RetryAttempts
		}

		task, err := apiClient.CreateTask(ctx, req)
		if err != nil {
			return nil, err
		}
		return textResult(fmt.Sprintf("Created task %q with ID: %s", task.Name, task.ID), taskToResponse(task)), nil
	}
}

func getTaskHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[GetTaskParams, TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[GetTaskParams]) (*mcpsdk.CallToolResultFor[TaskResponse], error) {
		logToolCall("get-task", params.Arguments)

		task, err := apiClient.GetTask(ctx, params.Arguments.ID)
		if err != nil {
			return nil, err
		}
		return textResult(fmt.Sprintf("Task %q is %s", task.Name, task.Status), taskToResponse(task)), nil
	}
}

func listTasksHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[ListTasksParams, TaskListResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[ListTasksParams]) (*mcpsdk.CallToolResultFor[TaskListResponse], error) {
		args := params.Arguments
		logToolCall("list-tasks", args)

		filters := models.TaskFilters{Limit: args.Limit, Offset: args.Offset}
		if args.Status != "" {
			status, err := models.ParseTaskStatus(args.Status)
			if err != nil {
				return nil, err
			}
			filters.Status = &status
		}
		if args.ProjectID != "" {
			filters.ProjectID = &args.ProjectID
		}
		if args.Priority != "" {
			priority, err := models.ParseTaskPriority(args.Priority)
			if err != nil {
				return nil, err
			}
			filters.Priority = &priority
		}

		tasks, err := apiClient.ListTasks(ctx, filters)
		if err != nil {
			return nil, err
		}

		resp := TaskListResponse{Count: len(tasks), Tasks: make([]TaskResponse, 0, len(tasks))}
		for i := range tasks {
			resp.Tasks = append(resp.Tasks, taskToResponse(&tasks[i]))
		}
		return textResult(fmt.Sprintf("Found %d tasks", resp.Count), resp), nil
	}
}

func updateTaskHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[UpdateTaskParams, TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[UpdateTaskParams]) (*mcpsdk.CallToolResultFor[TaskResponse], error) {
		args := params.Arguments
		logToolCall("update-task", args)

		var req models.TaskUpdateRequest
		if args.Name != "" {
			req.Name = &args.Name
		}
		if args.Command != "" {
			req.Command = &args.Command
		}
		if args.Description != "" {
			req.Description = &args.Description
		}
		if args.Priority != "" {
			priority, err := models.ParseTaskPriority(args.Priority)
			if err != nil {
				return nil, err
			}
			req.Priority = &priority
		}

		task, err := apiClient.UpdateTask(ctx, args.ID, req)
		if err != nil {
			return nil, err
		}
		return textResult(fmt.Sprintf("Updated task %q", task.Name), taskToResponse(task)), nil
	}
}

func cancelTaskHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[CancelTaskParams, TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[CancelTaskParams]) (*mcpsdk.CallToolResultFor[TaskResponse], error) {
		logToolCall("cancel-task", params.Arguments)

		task, err := apiClient.CancelTask(ctx, params.Arguments.ID)
		if err != nil {
			return nil, err
		}
		return textResult(fmt.Sprintf("Cancelled task %q. Status: %s", task.Name, task.Status), taskToResponse(task)), nil
	}
}

func deleteTaskHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[DeleteTaskParams, DeleteResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[DeleteTaskParams]) (*mcpsdk.CallToolResultFor[DeleteResponse], error) {
		logToolCall("delete-task", params.Arguments)

		if err := apiClient.DeleteTask(ctx, params.Arguments.ID); err != nil {
			return nil, err
		}
		resp := DeleteResponse{ID: params.Arguments.ID, Deleted: true}
		return textResult(fmt.Sprintf("Deleted task %s", params.Arguments.ID), resp), nil
	}
}

func waitTaskHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[WaitTaskParams, TaskResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[WaitTaskParams]) (*mcpsdk.CallToolResultFor[TaskResponse], error) {
		args := params.Arguments
		logToolCall("wait-task", args)

		timeout := 300 * time.Second
		if args.Timeout > 0 {
			timeout = time.Duration(args.Timeout) * time.Second
		}
		task, err := apiClient.WaitForCompletion(ctx, args.ID, timeout)
		if err != nil {
			return nil, err
		}
		return textResult(fmt.Sprintf("Task %q finished with status %s", task.Name, task.Status), taskToResponse(task)), nil
	}
}

func createProjectHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[CreateProjectParams, ProjectResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[CreateProjectParams]) (*mcpsdk.CallToolResultFor[ProjectResponse], error) {
		args := params.Arguments
		logToolCall("create-project", args)

		req := models.NewProjectCreateRequest(args.Name)
		if args.Description != "" {
			req.Description = &args.Description
		}
		project, err := apiClient.CreateProject(ctx, req)
		if err != nil {
			return nil, err
		}
		return textResult(fmt.Sprintf("Created project %q with ID: %s", project.Name, project.ID), projectToResponse(project)), nil
	}
}

func listProjectsHandler(apiClient *client.Client) mcpsdk.ToolHandlerFor[ListProjectsParams, ProjectListResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[ListProjectsParams]) (*mcpsdk.CallToolResultFor[ProjectListResponse], error) {
		logToolCall("list-projects", params.Arguments)

		projects, err := apiClient.ListProjects(ctx)
		if err != nil {
			return nil, err
		}

		resp := ProjectListResponse{Count: len(projects), Projects: make([]ProjectResponse, 0, len(projects))}
		for i := range projects {
			resp.Projects = append(resp.Projects, projectToResponse(&projects[i]))
		}
		return textResult(fmt.Sprintf("Found %d projects", resp.Count), resp), nil
	}
}
