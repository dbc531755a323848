/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taskqueue/taskqueue-go/internal/ui"
	"github.com/taskqueue/taskqueue-go/models"
)

var (
	createName        string
	createCommand     string
	createProjectID   string
	createDescription string
	createPriority    string
	createTimeout     int
	createFile        string
)

// createFs is swappable so batch file loading can be tested with an
// in-memory filesystem.
var createFs = afero.NewOsFs()

// tasksCreateCmd creates one task from flags, or several from a file.
var tasksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	Long: `Create a new task in a project.

With --file, creates several tasks from a YAML or JSON list of task
definitions instead. Every entry is validated before any task is created;
a malformed entry fails the whole batch. Entries whose creation call fails
afterwards are skipped and reported, and the rest are still created.

Examples:
  taskqueue tasks create --name "Build" --command "make" --project-id <uuid>
  taskqueue tasks create --file tasks.yaml`,
	RunE: runTasksCreate,
}

func init() {
	tasksCreateCmd.Flags().StringVar(&createName, "name", "", "task name")
	tasksCreateCmd.Flags().StringVar(&createCommand, "command", "", "command to execute")
	tasksCreateCmd.Flags().StringVar(&createProjectID, "project-id", "", "project ID")
	tasksCreateCmd.Flags().StringVar(&createDescription, "description", "", "task description")
	tasksCreateCmd.Flags().StringVar(&createPriority, "priority", "", "task priority (Low, Normal, High, Critical)")
	tasksCreateCmd.Flags().IntVar(&createTimeout, "timeout", 0, "task timeout in seconds")
	tasksCreateCmd.Flags().StringVar(&createFile, "file", "", "create tasks in batch from a YAML or JSON file")
	tasksCmd.AddCommand(tasksCreateCmd)
}

func runTasksCreate(cmd *cobra.Command, args []string) error {
	if createFile != "" {
		return runBatchCreate(cmd)
	}

	req := models.NewTaskCreateRequest(createName, createCommand, createProjectID)
	if createDescription != "" {
		req.Description = &createDescription
	}
	if createPriority != "" {
		priority, err := models.ParseTaskPriority(createPriority)
		if err != nil {
			return err
		}
		req.Priority = priority
	}
	if cmd.Flags().Changed("timeout") {
		req.Timeout = &createTimeout
	}

	task, err := newAPIClient().CreateTask(cmd.Context(), req)
	if err != nil {
		PrintError(fmt.Sprintf("Failed to create task: %v", err), err)
		return err
	}

	if isVerbose() {
		fmt.Println(ui.RenderSuccessPanel("Task created", ui.TaskDetails(task)))
	} else {
		fmt.Printf("Task %q created with ID: %s\n", task.Name, task.ID)
	}
	return nil
}

func runBatchCreate(cmd *cobra.Command) error {
	reqs, err := loadTaskFile(createFs, createFile)
	if err != nil {
		PrintError(fmt.Sprintf("Failed to read task file: %v", err), err)
		return err
	}

	result, err := newAPIClient().CreateTasks(cmd.Context(), reqs)
	if err != nil {
		PrintError(fmt.Sprintf("Batch creation failed: %v", err), err)
		return err
	}

	for _, task := range result.Created {
		fmt.Printf("Task %q created with ID: %s\n", task.Name, task.ID)
	}
	for _, skipped := range result.Skipped {
		PrintError(fmt.Sprintf("Skipped task %q: %v", skipped.Name, skipped.Err), skipped.Err)
	}
	fmt.Printf("%d of %d tasks created.\n", len(result.Created), len(reqs))

	if len(result.Skipped) > 0 {
		return fmt.Errorf("%d of %d tasks skipped", len(result.Skipped), len(reqs))
	}
	return nil
}

// loadTaskFile parses a YAML or JSON list of task creation requests.
func loadTaskFile(fs afero.Fs, path string) ([]models.TaskCreateRequest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	// YAML is a superset of JSON, so a single parse handles both formats.
	// The entries go through an intermediate JSON encode so the models'
	// snake_case field tags and strict enum decoding apply.
	var entries []map[string]any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	encoded, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var reqs []models.TaskCreateRequest
	if err := json.Unmarshal(encoded, &reqs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return reqs, nil
}
