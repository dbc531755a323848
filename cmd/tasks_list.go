/*
Copyright © 2025 TaskQueue Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskqueue/taskqueue-go/internal/ui"
	"github.com/taskqueue/taskqueue-go/models"
)

var (
	listStatus    string
	listProjectID string
	listPriority  string
	listType      string
	listLimit     int
	listOffset    int
	listFormat    string
)

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, optionally filtered by status, project, priority or type.

Examples:
  taskqueue tasks list
  taskqueue tasks list --status Running --limit 10
  taskqueue tasks list --project-id <uuid> --format json`,
	RunE: runTasksList,
}

func init() {
	tasksListCmd.Flags().StringVar(&listStatus, "status", "", "filter by status")
	tasksListCmd.Flags().StringVar(&listProjectID, "project-id", "", "filter by project ID")
	tasksListCmd.Flags().StringVar(&listPriority, "priority", "", "filter by priority")
	tasksListCmd.Flags().StringVar(&listType, "type", "", "filter by task type (Simple, Workflow, Scheduled)")
	tasksListCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum number of tasks to show")
	tasksListCmd.Flags().IntVar(&listOffset, "offset", 0, "number of tasks to skip")
	tasksListCmd.Flags().StringVar(&listFormat, "format", "table", "output format (table or json)")
	tasksCmd.AddCommand(tasksListCmd)
}

func runTasksList(cmd *cobra.Command, args []string) error {
	filters := models.TaskFilters{Limit: listLimit, Offset: listOffset}

	status, err := parseStatusFlag(listStatus)
	if err != nil {
		return err
	}
	filters.Status = status

	priority, err := parsePriorityFlag(listPriority)
	if err != nil {
		return err
	}
	filters.Priority = priority

	if listProjectID != "" {
		filters.ProjectID = &listProjectID
	}
	if listType != "" {
		taskType, err := models.ParseTaskType(listType)
		if err != nil {
			return err
		}
		filters.TaskType = &taskType
	}

	tasks, err := newAPIClient().ListTasks(cmd.Context(), filters)
	if err != nil {
		PrintError(fmt.Sprintf("Failed to list tasks: %v", err), err)
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	if listFormat == "json" {
		return printJSON(tasks)
	}
	fmt.Print(ui.RenderTaskTable(tasks))
	return nil
}
